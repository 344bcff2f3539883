package cli

import (
	"fmt"

	"github.com/crxgen-labs/crxgen/internal/config"
	"github.com/crxgen-labs/crxgen/internal/installer"
	"github.com/crxgen-labs/crxgen/internal/permissions"
	"github.com/crxgen-labs/crxgen/internal/templates"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the toolchain generated projects depend on",
	Long: `Report whether node, npm, bower and grunt are on PATH, and verify the
bundled templates and permission catalog load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		inst := installer.New(out, cmd.ErrOrStderr(), logger)
		inst.Check(out)

		fmt.Fprintln(out, "Generator check:")
		if keys, err := templates.Embedded().Keys(); err != nil {
			fmt.Fprintf(out, "  [FAIL] templates: %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] %d templates bundled\n", len(keys))
		}
		if c, err := permissions.Default(); err != nil {
			fmt.Fprintf(out, "  [FAIL] permission catalog: %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] %d permissions in catalog\n", c.Len())
		}
		fmt.Fprintf(out, "  [INFO] config file: %s\n", config.FilePath())
		return nil
	},
}
