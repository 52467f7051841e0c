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
	"github.com/gnames/fishfeat/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag converts an explicitly set flag to config options.
type funcFlag func(cmd *cobra.Command) []config.Option

// flagOptions collects options from all flags the user set. Flags that
// a command does not define are skipped.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, f := range []funcFlag{
		outputDirFlag,
		sqliteFlag,
		quietFlag,
		iucnURLFlag,
		fishBaseURLFlag,
		pageSizeFlag,
	} {
		res = append(res, f(cmd)...)
	}
	return res
}

func stringFlag(
	cmd *cobra.Command,
	name string,
	opt func(string) config.Option,
) []config.Option {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return []config.Option{opt(s)}
}

func outputDirFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "output-dir", config.OptOutputDir)
}

func sqliteFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "sqlite", config.OptSQLitePath)
}

func iucnURLFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "iucn-url", config.OptIUCNURL)
}

func fishBaseURLFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "fishbase-url", config.OptFishBaseURL)
}

func quietFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("quiet") {
		return nil
	}
	b, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil
	}
	return []config.Option{config.OptQuiet(b)}
}

func pageSizeFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("page-size") {
		return nil
	}
	i, err := cmd.Flags().GetInt("page-size")
	if err != nil {
		return nil
	}
	return []config.Option{config.OptFishBasePageSize(i)}
}
