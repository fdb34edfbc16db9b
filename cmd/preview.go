package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fretemap/fretemap-cli/internal/discovery"
	"github.com/fretemap/fretemap-cli/internal/preview"
	"github.com/fretemap/fretemap-cli/internal/store"
)

var (
	prevMappingID   string
	prevMappingFile string
	prevSets        []string
	prevSaveBack    bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <sample-file>",
	Short: "Apply a stored or file-based mapping to a sample payload",
	Long: `Loads a field mapping (by stored id or from a config file), optionally
reassigns role slots with --set role=key, and re-derives the option preview
from the sample document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()

		var m discovery.FieldMapping
		var rec *store.Record
		switch {
		case prevMappingID != "":
			st, err := store.Open(c.DataDir)
			if err != nil {
				return err
			}
			rec, err = st.Load(prevMappingID)
			if err != nil {
				return err
			}
			m = rec.Mapping
		case prevMappingFile != "":
			b, err := os.ReadFile(prevMappingFile)
			if err != nil {
				return fmt.Errorf("read mapping file: %w", err)
			}
			m, err = store.ValidateMappingConfig(b)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("one of --mapping or --mapping-file is required")
		}

		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		for _, set := range prevSets {
			role, key, err := parseRoleSet(set)
			if err != nil {
				return err
			}
			m = m.WithField(role, key)
		}

		pv := preview.Build(doc, m, c.PreviewLimit)
		printMapping(m)
		printPreview(pv)

		if prevSaveBack {
			if rec == nil {
				return fmt.Errorf("--save requires --mapping <id>")
			}
			st, err := store.Open(c.DataDir)
			if err != nil {
				return err
			}
			rec.Mapping = m
			if err := st.Update(rec); err != nil {
				return err
			}
			fmt.Printf("✓ Updated mapping %q (%s)\n", rec.Name, rec.ID)
		}
		return nil
	},
}

// parseRoleSet splits a --set argument of the form role=key.
func parseRoleSet(s string) (discovery.Role, string, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 || parts[1] == "" {
		return discovery.RoleNone, "", fmt.Errorf("invalid --set %q (want role=key)", s)
	}
	switch parts[0] {
	case "carrierName", "carrier_name":
		return discovery.RoleCarrierName, parts[1], nil
	case "price":
		return discovery.RolePrice, parts[1], nil
	case "deliveryDays", "delivery_days":
		return discovery.RoleLeadTime, parts[1], nil
	case "carrierId", "carrier_id":
		return discovery.RoleCarrierID, parts[1], nil
	case "errorField", "error":
		return discovery.RoleErrorFlag, parts[1], nil
	}
	return discovery.RoleNone, "", fmt.Errorf("unknown role %q in --set", parts[0])
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&prevMappingID, "mapping", "", "id of a stored mapping")
	previewCmd.Flags().StringVar(&prevMappingFile, "mapping-file", "", "path to a mapping config file (JSON)")
	previewCmd.Flags().StringArrayVar(&prevSets, "set", nil, "override one role slot, e.g. --set price=valor_total")
	previewCmd.Flags().BoolVar(&prevSaveBack, "save", false, "persist overrides back to the stored mapping")
}
