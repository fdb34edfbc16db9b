package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/fretemap/fretemap-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit fretemap configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := yaml.Marshal(activeConfig())
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Print(string(b))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration key and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		key, val := args[0], args[1]
		switch key {
		case "decimal_separator":
			if val != "," && val != "." {
				return fmt.Errorf("decimal_separator must be ',' or '.'")
			}
			c.DecimalSeparator = val
		case "weight_max_sentinel":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("weight_max_sentinel must be numeric: %w", err)
			}
			c.WeightMaxSentinel = f
		case "preview_limit":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("preview_limit must be a positive integer")
			}
			c.PreviewLimit = n
		case "sample_limit":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("sample_limit must be a positive integer")
			}
			c.SampleLimit = n
		case "data_dir":
			c.DataDir = val
		case "sqlite_path":
			c.SQLitePath = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s = %s\n", key, val)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
