package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tabgroups/internal/group"
)

var stashCmd = &cobra.Command{
	Use:   "stash",
	Short: "Quick-save and recall the current session",
	Long: `Work with the built-in "<stash>" group: a single slot-less scratch group
for parking the current session without naming it.`,
}

var stashSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current session into the stash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		app.reg.SaveStash()
		g := app.reg.Store().Lookup(group.StashName)
		if g == nil {
			return fmt.Errorf("failed to capture the current session")
		}

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Stashed %s", PrintCount(len(g.Files), "file", "files")))
		return nil
	},
}

var stashOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the stashed files on top of the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		g := app.reg.Store().Lookup(group.StashName)
		if g == nil {
			return fmt.Errorf("nothing stashed in this workspace")
		}
		app.reg.OpenStash()

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Opened stash (%s)", PrintCount(len(g.Files), "file", "files")))
		return nil
	},
}

var stashRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the current session with the stash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		g := app.reg.Store().Lookup(group.StashName)
		if g == nil {
			return fmt.Errorf("nothing stashed in this workspace")
		}
		app.reg.RestoreStash()

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Restored stash (%s)", PrintCount(len(g.Files), "file", "files")))
		return nil
	},
}

func init() {
	stashCmd.AddCommand(stashSaveCmd)
	stashCmd.AddCommand(stashOpenCmd)
	stashCmd.AddCommand(stashRestoreCmd)
}
