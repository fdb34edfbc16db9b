package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fretemap/fretemap-cli/internal/store"
	"github.com/fretemap/fretemap-cli/internal/utils"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Manage persisted field mappings",
}

var mappingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored mappings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(activeConfig().DataDir)
		if err != nil {
			return err
		}
		recs, err := st.List()
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No mappings stored.")
			return nil
		}
		for _, r := range recs {
			path := r.Mapping.OptionsPath
			if path == "" {
				path = "(root)"
			}
			fmt.Printf("%s  %-24s optionsPath=%s  %s\n",
				r.ID, r.Name, path, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var mappingsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one stored mapping as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(activeConfig().DataDir)
		if err != nil {
			return err
		}
		rec, err := st.Load(args[0])
		if err != nil {
			return err
		}
		b, err := utils.PrettyJSON(rec)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

var mappingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(activeConfig().DataDir)
		if err != nil {
			return err
		}
		if err := st.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted %s\n", args[0])
		return nil
	},
}

var mappingsImportName string

var mappingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and store a mapping config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(activeConfig().DataDir)
		if err != nil {
			return err
		}
		name := mappingsImportName
		if name == "" {
			name = args[0]
		}
		rec, err := st.Import(name, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Imported mapping %q (%s)\n", rec.Name, rec.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingsCmd)
	mappingsCmd.AddCommand(mappingsListCmd, mappingsShowCmd, mappingsDeleteCmd, mappingsImportCmd)
	mappingsImportCmd.Flags().StringVar(&mappingsImportName, "name", "", "name for the imported mapping (default: file path)")
}
