package cli

import (
	"fmt"
	"strings"

	"github.com/crxgen-labs/crxgen/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest.json>",
	Short: "Validate an extension manifest against the bundled schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		result, err := manifest.ValidateFile(args[0])
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(out, "[ OK ] %s is valid\n", args[0])
			doc, err := manifest.ParseFile(args[0])
			if err != nil {
				return err
			}
			if a := doc.Action(); a != nil && a.DefaultPopup != "" {
				fmt.Fprintf(out, "  popup: %s\n", a.DefaultPopup)
			}
			if len(doc.Permissions) > 0 {
				fmt.Fprintf(out, "  permissions: %s\n", strings.Join(doc.Permissions, ", "))
			}
			return nil
		}

		fmt.Fprintf(out, "[FAIL] %s has %d issue(s):\n", args[0], len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return fmt.Errorf("manifest validation failed")
	},
}
