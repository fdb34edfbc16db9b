package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/fretemap/fretemap-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "fretemap",
	Short: "Fretemap CLI: normalize carrier rate tables and quote payloads",
	Long: `Fretemap ingests loosely structured shipping-rate data — delimited text
tables exported by logistics carriers and nested quote payloads from
third-party quoting services — infers which columns or keys carry which
semantic field, and emits normalized rate records and reusable field
mappings.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.fretemap/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig never returns nil; commands fall back to defaults when the
// config failed to load.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		DecimalSeparator:  ",",
		WeightMaxSentinel: 9999,
		PreviewLimit:      10,
		SampleLimit:       500,
	}
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
