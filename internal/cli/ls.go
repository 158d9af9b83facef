package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all groups in the workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		groups := app.reg.Store().Groups()
		if jsonOutput {
			return outputJSON(groups)
		}

		if len(groups) == 0 {
			PrintEmptyState("No groups saved for this workspace")
			return nil
		}

		headers := []string{"", "NAME", "SLOT", "FILES", "DESCRIPTION"}
		rows := make([][]string, 0, len(groups))
		for _, g := range groups {
			slot := "-"
			if n, ok := g.SlotValue(); ok {
				slot = strconv.Itoa(n)
			}
			marker := " "
			if g.Selected {
				marker = "*"
			}
			rows = append(rows, []string{marker, g.Name, slot, strconv.Itoa(len(g.Files)), g.Description})
		}
		PrintTable(headers, rows)
		fmt.Println()
		PrintInfo(fmt.Sprintf("%s in %s (%s backend)",
			PrintCount(len(groups), "group", "groups"),
			app.reg.WorkspaceKey(),
			app.reg.BackendKind()))
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <name|slot>",
	Short: "Show a group's files and metadata",
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

		if jsonOutput {
			return outputJSON(g)
		}

		PrintSection(fmt.Sprintf("Group: %s", g.Name))
		if n, ok := g.SlotValue(); ok {
			PrintLabelValue("Slot", strconv.Itoa(n))
		}
		if g.IsBuiltIn() {
			PrintLabelValue("Kind", "built-in")
		}
		PrintLabelValue("Files", strconv.Itoa(len(g.Files)))
		PrintLabelValue("Layout", map[bool]string{true: "captured", false: "none"}[g.Positions != nil])
		fmt.Println()
		PrintList(g.Files, 1)
		return nil
	},
}
