package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <name|slot>",
	Short: "Delete a group",
	Long: `Delete a group from the collection.

The deleted state is snapshotted into the built-in "<undo>" group, so an
accidental delete is recoverable with 'tabgroups restore "<undo>"'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		g, err := lookupGroup(app.reg, args[0])
		if err != nil {
			return err
		}

		confirm := app.cfg.Confirm.Delete && !rmForce
		name := g.Name
		app.reg.RemoveGroup(g, confirm)

		if app.reg.Store().Lookup(name) != nil {
			return fmt.Errorf("deletion cancelled by user")
		}

		if jsonOutput {
			return outputJSON(map[string]any{"deleted": name})
		}
		PrintSuccess(fmt.Sprintf("Deleted group %q", name))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Delete without confirmation")
}
