// Package extract defines the contract shared by the data extraction
// pipelines.
package extract

import "context"

// Extractor downloads a data source, transforms it and saves the result
// to the configured output directory.
type Extractor interface {
	// Extract runs the whole pipeline. It stops at the first error and
	// leaves previously written outputs untouched.
	Extract(ctx context.Context) error
}
