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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gnames/fishfeat/internal/iofs"
	"github.com/gnames/fishfeat/internal/iologger"
	app "github.com/gnames/fishfeat/pkg"
	"github.com/gnames/fishfeat/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "fishfeat",
		Short:   "fishfeat builds fish feature tables from IUCN and FishBase",
		Long: `fishfeat downloads biological and ecological data about fishes and
turns it into flat CSV tables ready for analysis.

The tool provides two pipelines:
  - iucn: downloads the IUCN Red List snapshot and keeps fish classes
  - fishbase: reads FishBase tables and builds a per-species feature matrix

Results are saved to the output directory (default "data") and can be
exported to a SQLite database as well.

Configuration precedence (highest to lowest):
  1. CLI flags (--output-dir, --fishbase-url, etc.)
  2. Environment variables (FISHFEAT_*)
  3. Config file (~/.config/fishfeat/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (fishbase.page_size becomes
  FISHFEAT_FISHBASE_PAGE_SIZE).

  Examples:
    FISHFEAT_OUTPUT_DIR          Directory for CSV files
    FISHFEAT_SQLITE_PATH         SQLite database for exports
    FISHFEAT_IUCN_URL            IUCN snapshot URL
    FISHFEAT_FISHBASE_URL        FishBase API URL
    FISHFEAT_LOG_LEVEL           Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "fishfeat version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for fishfeat")

	pf := rootCmd.PersistentFlags()
	pf.StringP("output-dir", "o", "", "directory for produced CSV files")
	pf.StringP("sqlite", "s", "", "also export tables to this SQLite file")
	pf.BoolP("quiet", "q", false, "no progress bars or info messages")

	rootCmd.AddCommand(
		getIUCNCmd(),
		getFishBaseCmd(),
		getAllCmd(),
		getConfigCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// flags win over config file and environment
	cfg.Update(flagOptions(cmd))

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if !cfg.Quiet {
		gn.Info(
			"Configuration files are available at <em>%s</em>",
			config.ConfigDir(homeDir),
		)
	}

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"output_dir", cfg.OutputDir,
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). An interrupt cancels
// the running pipeline.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := getRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one, so it is clear which
	// of them are allowed. They match the fields of config.ToOptions().
	v.SetEnvPrefix("FISHFEAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Output
	v.BindEnv("output_dir", "FISHFEAT_OUTPUT_DIR")
	v.BindEnv("sqlite_path", "FISHFEAT_SQLITE_PATH")

	// IUCN
	v.BindEnv("iucn.url", "FISHFEAT_IUCN_URL")
	v.BindEnv("iucn.raw_file", "FISHFEAT_IUCN_RAW_FILE")
	v.BindEnv("iucn.subset_file", "FISHFEAT_IUCN_SUBSET_FILE")

	// FishBase
	v.BindEnv("fishbase.url", "FISHFEAT_FISHBASE_URL")
	v.BindEnv("fishbase.page_size", "FISHFEAT_FISHBASE_PAGE_SIZE")
	v.BindEnv("fishbase.features_file", "FISHFEAT_FISHBASE_FEATURES_FILE")

	// Log configuration
	v.BindEnv("log.level", "FISHFEAT_LOG_LEVEL")
	v.BindEnv("log.format", "FISHFEAT_LOG_FORMAT")
	v.BindEnv("log.destination", "FISHFEAT_LOG_DESTINATION")

	v.AutomaticEnv()
}
