package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	importTranslate bool
	importKeepPaths bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the workspace's groups to a file",
	Long: `Write the workspace's full group collection to a portable JSON file,
tagged with the workspace it came from so imports elsewhere can translate
file paths.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		out, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if err := app.reg.Export(out); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"file": out, "groups": app.reg.Store().Len()})
		}
		PrintSuccess(fmt.Sprintf("Exported %s to %s", PrintCount(app.reg.Store().Len(), "group", "groups"), out))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import groups from an export file",
	Long: `Replace the workspace's group collection with the contents of an export
file.

When the file was exported from a different workspace, file paths under the
original workspace's directory are rewritten onto this one (after a
confirmation prompt; --translate or --keep-paths skips the prompt). Paths
outside the original workspace are always kept as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if importTranslate && importKeepPaths {
			return fmt.Errorf("--translate and --keep-paths are mutually exclusive")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		switch {
		case importTranslate:
			yes := true
			forcedConfirm = &yes
		case importKeepPaths:
			no := false
			forcedConfirm = &no
		case !app.cfg.Confirm.Translate:
			yes := true
			forcedConfirm = &yes
		}
		defer func() { forcedConfirm = nil }()

		in, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if err := app.reg.Import(in, ""); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"file": in, "groups": app.reg.Store().Len()})
		}
		PrintSuccess(fmt.Sprintf("Imported %s from %s", PrintCount(app.reg.Store().Len(), "group", "groups"), in))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importTranslate, "translate", false, "Rewrite file paths onto this workspace without prompting")
	importCmd.Flags().BoolVar(&importKeepPaths, "keep-paths", false, "Keep file paths exactly as exported without prompting")
}
