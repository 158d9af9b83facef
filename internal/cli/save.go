package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tabgroups/internal/group"
	"github.com/danieljhkim/tabgroups/internal/registry"
)

var saveSlot int

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current session as a named group",
	Long: `Capture the current open documents and window layout into a named group.

Saving over an existing group first copies its previous state into the
built-in "<undo>" group, so the last save is always one step reversible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if kind := group.KindOf(name); kind != group.Named {
			return fmt.Errorf("%w: %q is reserved (use 'tabgroups stash save')", registry.ErrBuiltIn, name)
		}
		if saveSlot != 0 && (saveSlot < group.MinSlot || saveSlot > group.MaxSlot) {
			return fmt.Errorf("slot must be between %d and %d", group.MinSlot, group.MaxSlot)
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.fs.ValidateIdentifier(name); err != nil {
			return fmt.Errorf("invalid group name: %w", err)
		}

		var slot *int
		if saveSlot != 0 {
			slot = &saveSlot
		}
		app.reg.SaveGroup(name, slot)

		g := app.reg.Store().Lookup(name)
		if g == nil {
			return fmt.Errorf("failed to capture the current session")
		}

		if jsonOutput {
			return outputJSON(g)
		}
		msg := fmt.Sprintf("Saved group %q (%s)", g.Name, PrintCount(len(g.Files), "file", "files"))
		if n, ok := g.SlotValue(); ok {
			msg += fmt.Sprintf(" to slot %d", n)
		}
		PrintSuccess(msg)
		return nil
	},
}

func init() {
	saveCmd.Flags().IntVar(&saveSlot, "slot", 0, "Assign the group to a numeric slot (1-9)")
}
