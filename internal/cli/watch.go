package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the collection when the sidecar file changes",
	Long: `Watch the workspace's sidecar file and reload the group collection
whenever another process rewrites it. Only sidecar-backed workspaces can be
watched; runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w, err := app.reg.Watch(func() {
			PrintInfo(fmt.Sprintf("Reloaded %s", PrintCount(app.reg.Store().Len(), "group", "groups")))
		})
		if err != nil {
			return err
		}
		defer w.Stop()

		PrintInfo(fmt.Sprintf("Watching %s (Ctrl-C to stop)", app.reg.WorkspaceKey()))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}
