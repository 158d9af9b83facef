package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tabgroups/internal/group"
	"github.com/danieljhkim/tabgroups/internal/registry"
)

var slotCmd = &cobra.Command{
	Use:   "slot <name> <1-9|auto|none>",
	Short: "Assign or clear a group's numeric slot",
	Long: `Assign a group to a numeric slot for quick access. "auto" picks the lowest
free slot; "none" clears the group's slot.

Slots are unique: assigning an occupied slot evicts its previous holder,
which becomes slot-less.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		g := app.reg.Store().Lookup(args[0])
		if g == nil {
			return fmt.Errorf("no group named %q", args[0])
		}
		if g.IsBuiltIn() {
			return fmt.Errorf("%w: %q cannot hold a slot", registry.ErrBuiltIn, g.Name)
		}

		if args[1] == "none" {
			app.reg.SetGroupSlot(g, nil)
			if jsonOutput {
				return outputJSON(g)
			}
			PrintSuccess(fmt.Sprintf("Cleared slot for group %q", g.Name))
			return nil
		}

		var n int
		if args[1] == "auto" {
			free, ok := app.reg.Store().FindFreeSlot()
			if !ok {
				return fmt.Errorf("all %d slots are occupied", group.MaxSlot)
			}
			n = free
		} else {
			n, err = strconv.Atoi(args[1])
			if err != nil || n < group.MinSlot || n > group.MaxSlot {
				return fmt.Errorf("slot must be between %d and %d, \"auto\", or \"none\"", group.MinSlot, group.MaxSlot)
			}
		}

		evicted := app.reg.Store().BySlot(n)
		app.reg.SetGroupSlot(g, &n)

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Assigned group %q to slot %d", g.Name, n))
		if evicted != nil && evicted != g {
			PrintWarning(fmt.Sprintf("Group %q lost slot %d", evicted.Name, n))
		}
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <name> <delta>",
	Short: "Reorder a group within the collection",
	Long: `Move a group up (negative delta) or down (positive delta) in display order.

Built-in groups are pinned at the head of the collection and are never
moved or displaced.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		g := app.reg.Store().Lookup(args[0])
		if g == nil {
			return fmt.Errorf("no group named %q", args[0])
		}

		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer, got %q", args[1])
		}

		before := app.reg.Store().IndexOf(g)
		app.reg.MoveGroup(g, delta)
		after := app.reg.Store().IndexOf(g)

		if jsonOutput {
			return outputJSON(map[string]any{"name": g.Name, "position": after})
		}
		if before == after {
			PrintWarning(fmt.Sprintf("Group %q was not moved", g.Name))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Moved group %q to position %d", g.Name, after))
		return nil
	},
}
