package registry

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/tabgroups/internal/backend"
	"github.com/danieljhkim/tabgroups/internal/codec"
	"github.com/danieljhkim/tabgroups/internal/translate"
)

// Export writes the active workspace's collection as an envelope to a
// user-chosen file.
func (r *Registry) Export(filePath string) error {
	if r.workspaceKey == "" {
		return ErrNoWorkspace
	}

	data, err := codec.EncodeEnvelope(&codec.Envelope{
		WorkspaceKey: r.workspaceKey,
		Groups:       r.store.Groups(),
	})
	if err != nil {
		return err
	}
	if err := r.fs.AtomicWrite(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// Import loads an envelope from a user-chosen file into targetKey's
// workspace, replacing whatever that workspace had stored. When the
// envelope's recorded workspace differs from the target, the confirmation
// port decides whether file paths are translated onto the target workspace's
// directory; declining imports the paths untouched. If the target is the
// active workspace, the in-memory collection is reloaded wholesale
// afterwards.
//
// Unlike backend loads, a malformed import file surfaces as an error: the
// user pointed at a specific file and should hear that it is not an export.
func (r *Registry) Import(filePath, targetKey string) error {
	if targetKey == "" {
		targetKey = r.workspaceKey
	}
	if targetKey == "" {
		return ErrNoWorkspace
	}

	data, err := r.fs.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	env, err := codec.DecodeEnvelope(data)
	if err != nil {
		return err
	}

	if !strings.EqualFold(env.WorkspaceKey, targetKey) {
		prompt := fmt.Sprintf("Groups were exported from %q. Rewrite file paths for %q?", env.WorkspaceKey, targetKey)
		if r.confirm.Confirm(prompt) {
			translate.Groups(env.Groups, env.WorkspaceKey, targetKey)
		}
	}

	kind := backend.ResolveKind(r.fs, targetKey)
	b := backend.For(kind, r.fs, r.settings, targetKey)
	if err := r.writeTo(b, targetKey, env.Groups); err != nil {
		return fmt.Errorf("failed to store imported groups: %w", err)
	}

	if strings.EqualFold(targetKey, r.workspaceKey) {
		r.Reload()
	}
	return nil
}
