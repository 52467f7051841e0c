// Package fishfeat builds species feature tables from IUCN and FishBase
// data.
package fishfeat

var (
	// Version of the application. Set during build.
	Version = "v0.1.0"
	// Build timestamp. Set during build.
	Build = "n/a"
)
