package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fretemap/fretemap-cli/internal/fields"
	"github.com/fretemap/fretemap-cli/internal/store"
	"github.com/fretemap/fretemap-cli/internal/tabular"
	"github.com/fretemap/fretemap-cli/internal/utils"
)

var (
	anaDelimiter string
	anaDecimal   string
	anaSheetName string
	anaSQLite    string
	anaJSON      bool
	anaShowRows  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Ingest a carrier rate table (CSV/TSV/XLSX) and normalize its rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c := activeConfig()

		table, err := readTable(path)
		if err != nil {
			return err
		}
		debugf("tokenized %d data rows, delimiter %q", len(table.Rows), string(table.Delimiter))

		mapping := fields.DetectColumns(table.Headers)
		opt := fields.RowOptions{
			DecimalSeparator:  c.DecimalRune(),
			WeightMaxSentinel: c.WeightMaxSentinel,
		}
		switch strings.ToLower(strings.TrimSpace(anaDecimal)) {
		case ",", "comma":
			opt.DecimalSeparator = ','
		case ".", "dot":
			opt.DecimalSeparator = '.'
		case "":
		default:
			return fmt.Errorf("unsupported --decimal: %s (use ','|'.')", anaDecimal)
		}
		rows := fields.BuildRows(table, mapping, opt)

		if anaJSON {
			b, err := utils.PrettyJSON(map[string]any{
				"headers": table.Headers,
				"mapping": mapping,
				"rows":    rows,
			})
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		} else {
			printTableAnalysis(table, mapping, rows)
		}

		if anaSQLite != "" {
			if err := store.ExportRateRows(anaSQLite, filepath.Base(path), rows); err != nil {
				return err
			}
			fmt.Printf("✓ Exported %d rows to %s\n", len(rows), anaSQLite)
		}
		return nil
	},
}

func readTable(path string) (*tabular.RawTable, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return tabular.ParseXLSXFile(path, anaSheetName)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text := string(b)
	switch anaDelimiter {
	case "":
		return tabular.ParseAuto(text)
	case ",":
		return tabular.Parse(text, ',')
	case ";":
		return tabular.Parse(text, ';')
	case "\t", "tab":
		return tabular.Parse(text, '\t')
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s", anaDelimiter)
	}
}

func printTableAnalysis(table *tabular.RawTable, mapping fields.ColumnMapping, rows []fields.RateRow) {
	fmt.Printf("Headers (%d):\n", len(table.Headers))
	for i, h := range table.Headers {
		bound := ""
		for _, f := range fields.Semantics {
			if idx, ok := mapping[f]; ok && idx == i {
				bound = fmt.Sprintf("  → %s", f)
				break
			}
		}
		fmt.Printf("  [%d] %s%s\n", i, h, bound)
	}
	for _, f := range fields.Semantics {
		if _, ok := mapping[f]; !ok {
			fmt.Printf("  ⚠ unbound: %s\n", f)
		}
	}
	fmt.Printf("Normalized %d of %d rows\n", len(rows), len(table.Rows))
	limit := anaShowRows
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}
	for _, r := range rows[:limit] {
		fmt.Printf("  %s–%s  weight %g–%g  price %.2f  lead %dd\n",
			r.CEPStart, r.CEPEnd, r.WeightMin, r.WeightMax, r.Price, r.LeadTimeDays)
	}
	if limit < len(rows) {
		fmt.Printf("  … %d more\n", len(rows)-limit)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "field delimiter: ','|';'|'tab' (default: auto-detect)")
	analyzeCmd.Flags().StringVar(&anaDecimal, "decimal", "", "decimal separator: ','|'.' (default: from config)")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX sheet to read (default: first sheet)")
	analyzeCmd.Flags().StringVar(&anaSQLite, "sqlite", "", "append normalized rows to this SQLite database")
	analyzeCmd.Flags().BoolVar(&anaJSON, "json", false, "emit analysis as JSON")
	analyzeCmd.Flags().IntVar(&anaShowRows, "show-rows", 10, "max normalized rows to print")
}
