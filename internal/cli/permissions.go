package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/crxgen-labs/crxgen/internal/permissions"
	"github.com/spf13/cobra"
)

var (
	permissionsChannel string
	permissionsType    string
)

func init() {
	permissionsCmd.Flags().StringVar(&permissionsChannel, "channel", permissions.ChannelStable, "Chrome channel: stable, beta or dev")
	permissionsCmd.Flags().StringVar(&permissionsType, "type", permissions.TypeExtension, "Extension type: extension or platform_app (empty for all)")
	rootCmd.AddCommand(permissionsCmd)
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List the permissions offered by create",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := permissions.Default()
		if err != nil {
			return err
		}
		catalog, err := all.Query(permissionsChannel, permissionsType)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tCHANNEL\tDESCRIPTION")
		for _, e := range catalog.Entries() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Channel, catalog.Label(e.Name))
		}
		return w.Flush()
	},
}
