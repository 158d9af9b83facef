package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <name|slot>",
	Short: "Open a group's files on top of the current session",
	Long: `Open every file in the group that is not already open, without closing
anything. The argument is a group name, or a slot number 1-9.`,
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
		app.reg.OpenGroup(g)

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Opened group %q (%s)", g.Name, PrintCount(len(g.Files), "file", "files")))
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <name|slot>",
	Short: "Replace the current session with a group",
	Long: `Close the current session and replay the group in its place.

The pre-restore session is snapshotted into the built-in "<undo>" group, so
'tabgroups restore "<undo>"' brings it back.`,
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
		app.reg.RestoreGroup(g)

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Restored group %q (%s)", g.Name, PrintCount(len(g.Files), "file", "files")))
		return nil
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <name|slot>",
	Short: "Close a group's open files",
	Args:  cobra.ExactArgs(1),
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
		app.reg.CloseGroup(g)

		if jsonOutput {
			return outputJSON(g)
		}
		PrintSuccess(fmt.Sprintf("Closed group %q", g.Name))
		return nil
	},
}
