package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fretemap/fretemap-cli/internal/discovery"
	"github.com/fretemap/fretemap-cli/internal/document"
	"github.com/fretemap/fretemap-cli/internal/preview"
	"github.com/fretemap/fretemap-cli/internal/store"
	"github.com/fretemap/fretemap-cli/internal/utils"
)

var (
	disSaveName string
	disSQLite   string
	disJSON     bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover <file>",
	Short: "Analyze a quote payload (JSON/YAML) and suggest a field mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c := activeConfig()

		doc, err := readDocument(path)
		if err != nil {
			return err
		}

		analysis, err := discovery.Analyze(doc)
		if errors.Is(err, discovery.ErrNoCandidate) {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
			return nil
		}
		if err != nil {
			return err
		}

		pv := preview.Build(doc, analysis.Mapping, c.PreviewLimit)
		if disJSON {
			b, err := utils.PrettyJSON(map[string]any{
				"mapping": analysis.Mapping,
				"preview": pv,
			})
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		} else {
			printAnalysis(analysis, pv)
		}

		if disSaveName != "" {
			st, err := store.Open(c.DataDir)
			if err != nil {
				return err
			}
			rec, err := st.Save(disSaveName, analysis.Mapping)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Saved mapping %q (%s)\n", rec.Name, rec.ID)
		}
		if disSQLite != "" {
			opts := preview.Build(doc, analysis.Mapping, c.SampleLimit)
			if err := store.ExportOptions(disSQLite, filepath.Base(path), opts); err != nil {
				return err
			}
			fmt.Printf("✓ Exported %d options to %s\n", len(opts), disSQLite)
		}
		return nil
	},
}

func readDocument(path string) (document.Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return document.Null(), fmt.Errorf("read file: %w", err)
	}
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return document.DecodeYAML(b)
	}
	return document.DecodeJSON(b)
}

func printAnalysis(a discovery.Analysis, pv []preview.Option) {
	fmt.Printf("Candidates (%d):\n", len(a.Candidates))
	for _, cand := range a.Candidates {
		marker := " "
		if a.Best != nil && cand.Path == a.Best.Path {
			marker = "*"
		}
		path := cand.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Printf(" %s %s  records=%d score=%d\n", marker, path, cand.Length, cand.Score)
	}
	if a.Best == nil {
		return
	}
	fmt.Println("Detected fields:")
	for _, f := range a.Best.Fields {
		if f.Role == discovery.RoleNone {
			fmt.Printf("    %-20s %-8s sample=%s\n", f.Key, f.Kind, f.Sample.Render())
			continue
		}
		fmt.Printf("    %-20s %-8s sample=%-14s → %s (%.2f)\n",
			f.Key, f.Kind, f.Sample.Render(), f.Role, f.Confidence)
	}
	printMapping(a.Mapping)
	printPreview(pv)
}

func printMapping(m discovery.FieldMapping) {
	fmt.Println("Suggested mapping:")
	path := m.OptionsPath
	if path == "" {
		path = "(root)"
	}
	fmt.Printf("    optionsPath:  %s\n", path)
	fmt.Printf("    carrierName:  %s\n", orDash(m.CarrierName))
	fmt.Printf("    price:        %s\n", orDash(m.Price))
	fmt.Printf("    deliveryDays: %s\n", orDash(m.DeliveryDays))
	fmt.Printf("    carrierId:    %s\n", orDash(m.CarrierID))
	fmt.Printf("    errorField:   %s\n", orDash(m.ErrorField))
}

func printPreview(pv []preview.Option) {
	fmt.Printf("Preview (%d options):\n", len(pv))
	for _, o := range pv {
		fmt.Printf("    %-24s R$ %8.2f  %2dd  id=%s\n", o.CarrierName, o.Price, o.DeliveryDays, o.CarrierID)
	}
}

func orDash(s string) string {
	if s == "" {
		return preview.Placeholder
	}
	return s
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringVar(&disSaveName, "save", "", "persist the suggested mapping under this name")
	discoverCmd.Flags().StringVar(&disSQLite, "sqlite", "", "append extracted options to this SQLite database")
	discoverCmd.Flags().BoolVar(&disJSON, "json", false, "emit mapping and preview as JSON")
}
