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
	"github.com/gnames/fishfeat/internal/ioiucn"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getIUCNCmd returns the iucn command.
func getIUCNCmd() *cobra.Command {
	iucnCmd := &cobra.Command{
		Use:   "iucn",
		Short: "Save the fish subset of the IUCN Red List",
		Long: `Download the IUCN Red List snapshot and keep fish classes.

This command:
  1. Downloads the CSV snapshot to <output-dir>/IUCN_full.csv
  2. Keeps Class, Order, Family, Genus, Species and Red List status
  3. Keeps rows of Actinopterygii, Chondrichthyes, Sarcopterygii
     and Cephalaspidomorphi
  4. Saves them to <output-dir>/IUCN_subset.csv with original row numbers

Examples:
  fishfeat iucn
  fishfeat iucn --output-dir /tmp/fish
  fishfeat iucn --iucn-url https://example.org/iucn.csv --sqlite fish.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := ioiucn.New(cfg).Extract(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	iucnCmd.Flags().String("iucn-url", "", "URL of the IUCN CSV snapshot")
	return iucnCmd
}
