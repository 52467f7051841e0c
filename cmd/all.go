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
	"github.com/gnames/fishfeat/internal/ioiucn"
	"github.com/gnames/fishfeat/pkg/extract"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getAllCmd returns the all command.
func getAllCmd() *cobra.Command {
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Run IUCN and FishBase pipelines",
		Long: `Run the iucn pipeline and then the fishbase pipeline.

The second pipeline starts only if the first one succeeded.

Examples:
  fishfeat all
  fishfeat all --output-dir /tmp/fish --sqlite /tmp/fish/fish.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range []extract.Extractor{
				ioiucn.New(cfg),
				iofishbase.New(cfg, nil),
			} {
				if err := e.Extract(cmd.Context()); err != nil {
					gn.PrintErrorMessage(err)
					return err
				}
			}
			return nil
		},
	}

	allCmd.Flags().String("iucn-url", "", "URL of the IUCN CSV snapshot")
	addFishBaseFlags(allCmd)
	return allCmd
}
