package cli

import (
	"biomeready/internal/catalog"
	"biomeready/internal/flags"
	"biomeready/internal/output"

	"github.com/spf13/cobra"
)

var (
	catalogJSON    bool
	catalogSources []string
)

// catalogView is the structured form of the fetched catalog.
type catalogView struct {
	Mappings  []catalog.Entry `json:"mappings"`
	Exclusive []string        `json:"exclusiveRules"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch and list the Biome rule catalog",
	Long: `Fetch the Biome rule catalog and list every documented ESLint equivalence,
followed by the Biome-exclusive rules that have no ESLint counterpart.

Examples:
	# List the catalog from the default source
	biomeready catalog

	# Machine-readable
	biomeready catalog --json
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := catalog.NewHTTPClient(cfg.Runtime.Verbose, cmd.ErrOrStderr())
		table, err := catalog.Load(cmd.Context(), client, catalogSources, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		if catalogJSON {
			return output.WriteJSON(cmd.OutOrStdout(), catalogView{
				Mappings:  table.Entries(),
				Exclusive: table.Exclusive(),
			})
		}
		return output.RenderCatalog(cmd.OutOrStdout(), table)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogJSON, flags.FlagJSON, false, "Emit the catalog as JSON")
	catalogCmd.Flags().StringSliceVar(&catalogSources, flags.FlagSource, nil, "Catalog source URL (repeatable; comma-separated accepted; default: Biome's rules metadata)")
}
