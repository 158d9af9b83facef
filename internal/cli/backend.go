package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tabgroups/internal/backend"
)

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Inspect or switch the workspace's persistence backend",
	Long: `Groups are persisted either in the shared settings database or in a
sidecar JSON file next to the workspace. A workspace uses the sidecar
backend exactly when its sidecar file exists; 'backend toggle' migrates
between the two.`,
}

var backendStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which backend the workspace uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		kind := app.reg.BackendKind()
		location := app.paths.SettingsDB
		if kind == backend.KindSidecar {
			location = backend.SidecarPath(app.reg.WorkspaceKey())
		}

		if jsonOutput {
			return outputJSON(map[string]any{
				"workspace": app.reg.WorkspaceKey(),
				"backend":   kind.String(),
				"location":  location,
				"groups":    app.reg.Store().Len(),
			})
		}

		PrintSection("Persistence Backend")
		PrintLabelValue("Workspace", app.reg.WorkspaceKey())
		PrintLabelValue("Backend", kind.String())
		PrintLabelValue("Location", location)
		PrintLabelValue("Groups", fmt.Sprintf("%d", app.reg.Store().Len()))
		return nil
	},
}

var backendToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Migrate the workspace to the other backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		kind, err := app.reg.ToggleBackend()
		if err != nil {
			return fmt.Errorf("failed to switch backend: %w", err)
		}

		if jsonOutput {
			return outputJSON(map[string]any{"backend": kind.String()})
		}
		PrintSuccess(fmt.Sprintf("Workspace now uses the %s backend", kind))
		return nil
	},
}

func init() {
	backendCmd.AddCommand(backendStatusCmd)
	backendCmd.AddCommand(backendToggleCmd)
}
