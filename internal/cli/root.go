package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput    bool
	workspaceFlag string

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for tabgroups.
var rootCmd = &cobra.Command{
	Use:     "tabgroups",
	Version: "dev",
	Short:   "Save and restore named groups of open documents",
	Long: `tabgroups saves the current arrangement of open documents and windows as a
named, optionally slot-numbered group, and restores, reopens, or closes that
arrangement later.

Groups are persisted per workspace, either in the shared settings store or in
a sidecar JSON file next to the workspace. Collections can be exported and
imported across workspaces with automatic path translation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", "", "Workspace file to operate on (default: discovered from the working directory)")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "group-ops",
		Title: "Group Operations:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "organization",
		Title: "Organization:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "stash",
		Title: "Stash:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "transfer",
		Title: "Transfer:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "persistence",
		Title: "Persistence:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the tabgroups CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for tabgroups for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(os.Stdout, true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Group Operations commands
	saveCmd.GroupID = "group-ops"
	openCmd.GroupID = "group-ops"
	restoreCmd.GroupID = "group-ops"
	closeCmd.GroupID = "group-ops"
	rmCmd.GroupID = "group-ops"
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(rmCmd)

	// Organization commands
	lsCmd.GroupID = "organization"
	describeCmd.GroupID = "organization"
	slotCmd.GroupID = "organization"
	moveCmd.GroupID = "organization"
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(slotCmd)
	rootCmd.AddCommand(moveCmd)

	// Stash commands
	stashCmd.GroupID = "stash"
	rootCmd.AddCommand(stashCmd)

	// Transfer commands
	exportCmd.GroupID = "transfer"
	importCmd.GroupID = "transfer"
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	// Persistence commands
	backendCmd.GroupID = "persistence"
	watchCmd.GroupID = "persistence"
	rootCmd.AddCommand(backendCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute executes the root command. Errors are rendered here (cobra's own
// printing is silenced) so every command fails through the same format.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		PrintError(err.Error())
	}
	return err
}
