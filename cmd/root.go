package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	envCfg  envConfig
)

var rootCmd = &cobra.Command{
	Use:   "appicon",
	Short: "Procedural app icon generator for iOS asset catalogs",
	Long: `appicon draws square app icons from simple primitives (circles, rings,
triangles) and writes every size an iOS AppIcon.appiconset needs,
together with its Contents.json.

Styles:
  rings  concentric white rings on blue ("network rings")
  grid   seeded 3x3 grid of circles, rings and triangles

Environment (flags take precedence):
  APPICON_OUT_DIR   output directory for generate
  APPICON_STYLE     icon style
  APPICON_SET       icon set
  APPICON_SEED      grid seed
  APPICON_WORKERS   concurrent renders
  APPICON_VERBOSE   verbose output when true`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// loadConfig reads environment overrides before any command runs.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEnv()
	if err != nil {
		return err
	}
	envCfg = cfg
	if !cmd.Flags().Changed("verbose") && envCfg.Verbose {
		verbose = true
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"appicon %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[appicon] "+format+"\n", args...)
	}
}
