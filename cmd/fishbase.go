/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/fishfeat/internal/iofishbase"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getFishBaseCmd returns the fishbase command.
func getFishBaseCmd() *cobra.Command {
	fishBaseCmd := &cobra.Command{
		Use:   "fishbase",
		Short: "Build the FishBase species feature matrix",
		Long: `Read FishBase tables and build one row of features per species.

This command:
  1. Reads taxa, species, ecology, ecosystem and maturity tables
     page by page from the FishBase API
  2. Encodes categorical columns as indicator columns
  3. Aggregates ecology, ecosystem and maturity records per species
  4. Joins everything to the taxonomy table on SpecCode
  5. Saves the result to <output-dir>/fishbase_features.csv

Examples:
  fishfeat fishbase
  fishfeat fishbase --page-size 1000
  fishfeat fishbase --fishbase-url http://localhost:8080 -q`,
		Aliases: []string{"fb"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := iofishbase.New(cfg, nil).Extract(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFishBaseFlags(fishBaseCmd)
	return fishBaseCmd
}

func addFishBaseFlags(cmd *cobra.Command) {
	cmd.Flags().String("fishbase-url", "", "FishBase API URL")
	cmd.Flags().Int("page-size", 0, "rows requested per FishBase page")
}
