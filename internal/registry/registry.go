// Package registry composes the group store, codec, backends, and host
// ports into the public operations of tabgroups: save, restore, open, close,
// remove, reslot, export, import, and workspace lifecycle.
//
// The registry is the single owner of the live collection. All entry points
// are expected on one control-flow context (the host serializes them); the
// debounced persistence write fires back through the same registry, so
// writes never race foreground mutation. Host and backend faults are logged
// and absorbed: no operation throws across this boundary for normal misuse.
package registry

import (
	"time"

	"github.com/danieljhkim/tabgroups/internal/backend"
	"github.com/danieljhkim/tabgroups/internal/clock"
	"github.com/danieljhkim/tabgroups/internal/codec"
	"github.com/danieljhkim/tabgroups/internal/fsops"
	"github.com/danieljhkim/tabgroups/internal/group"
	"github.com/danieljhkim/tabgroups/internal/host"
	"github.com/danieljhkim/tabgroups/internal/logging"
)

// DefaultDebounce is the quiescence window before item edits are persisted.
const DefaultDebounce = time.Second

// Options carries the optional dependencies of a Registry.
type Options struct {
	// Debounce overrides the item-edit persistence window.
	Debounce time.Duration

	// Logger receives the silent-failure trail. Defaults to a no-op logger.
	Logger *logging.Logger

	// Clock drives the debounce timer. Defaults to the system clock.
	Clock clock.Clock
}

// Registry owns the in-memory group collection for the active workspace and
// checkpoints it through the resolved persistence backend.
type Registry struct {
	fs       fsops.FS
	settings backend.SettingsStore
	layout   host.LayoutPort
	docs     host.DocumentPort
	confirm  host.ConfirmPort
	clk      clock.Clock
	log      *logging.Logger

	store        *group.Store
	workspaceKey string
	kind         backend.Kind

	debounce time.Duration
	timer    clock.Timer
	dirty    bool

	// loading suppresses write-back while the store is being replaced
	// from the backend.
	loading bool
}

// New creates a Registry over the given ports. No workspace is active until
// SetWorkspace is called; until then all persistence is a no-op.
func New(fs fsops.FS, settings backend.SettingsStore, layout host.LayoutPort, docs host.DocumentPort, confirm host.ConfirmPort, opts Options) *Registry {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Clock == nil {
		opts.Clock = &clock.RealClock{}
	}

	r := &Registry{
		fs:       fs,
		settings: settings,
		layout:   layout,
		docs:     docs,
		confirm:  confirm,
		clk:      opts.Clock,
		log:      opts.Logger,
		store:    group.NewStore(),
		debounce: opts.Debounce,
	}

	r.store.Subscribe(r.onChange)
	return r
}

// Store exposes the live collection for lookups and subscriptions.
func (r *Registry) Store() *group.Store {
	return r.store
}

// WorkspaceKey returns the active workspace key, empty if none.
func (r *Registry) WorkspaceKey() string {
	return r.workspaceKey
}

// BackendKind returns the backend resolved for the active workspace.
func (r *Registry) BackendKind() backend.Kind {
	return r.kind
}

// onChange routes store notifications into persistence: structural changes
// persist immediately, item edits coalesce through the debounce window.
func (r *Registry) onChange(c group.Change) {
	if r.loading {
		return
	}
	if c.Structural() {
		r.persist()
		return
	}
	r.scheduleWrite()
}

// scheduleWrite arms (or re-arms) the debounce timer. Bursts of item edits
// within the window collapse into a single durable write.
func (r *Registry) scheduleWrite() {
	r.dirty = true
	if r.timer == nil {
		r.timer = r.clk.AfterFunc(r.debounce, r.flushTimer)
		return
	}
	r.timer.Reset(r.debounce)
}

func (r *Registry) flushTimer() {
	if !r.dirty {
		return
	}
	r.persist()
}

// Flush forces any pending debounced write to disk now.
func (r *Registry) Flush() {
	if !r.dirty {
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.persist()
}

// persist checkpoints the collection into the active backend. With no active
// workspace it is a no-op; backend faults are logged and absorbed.
func (r *Registry) persist() {
	r.dirty = false
	if r.workspaceKey == "" {
		return
	}

	b := backend.For(r.kind, r.fs, r.settings, r.workspaceKey)
	if err := r.writeTo(b, r.workspaceKey, r.store.Groups()); err != nil {
		r.log.Error("failed to persist groups", "backend", r.kind.String(), "error", err)
	}
}

// writeTo serializes groups in the shape the backend expects: the settings
// store holds the bare collection, the sidecar holds the full envelope. An
// empty collection is stored as nothing at all on the settings backend.
func (r *Registry) writeTo(b backend.Backend, workspaceKey string, groups []*group.Group) error {
	if b.Kind() == backend.KindSettings && len(groups) == 0 {
		return b.Clear()
	}

	var data []byte
	var err error
	if b.Kind() == backend.KindSidecar {
		data, err = codec.EncodeEnvelope(&codec.Envelope{WorkspaceKey: workspaceKey, Groups: groups})
	} else {
		data, err = codec.EncodeGroups(groups)
	}
	if err != nil {
		return err
	}
	return b.Write(data)
}

// readFrom loads and decodes the collection from a backend. Unreadable or
// unparseable data degrades to an empty collection, never an error to the
// caller; the fault is logged.
func (r *Registry) readFrom(b backend.Backend) []*group.Group {
	data, err := b.Read()
	if err != nil {
		r.log.Warn("failed to read stored groups", "backend", b.Kind().String(), "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var groups []*group.Group
	if b.Kind() == backend.KindSidecar {
		env, err := codec.DecodeEnvelope(data)
		if err != nil {
			r.log.Warn("stored groups unreadable", "backend", b.Kind().String(), "error", err)
			return nil
		}
		groups = env.Groups
	} else {
		groups, err = codec.DecodeGroups(data)
		if err != nil {
			r.log.Warn("stored groups unreadable", "backend", b.Kind().String(), "error", err)
			return nil
		}
	}
	return groups
}

// SetWorkspace switches the registry to a new workspace key: any pending
// write for the old workspace is flushed, the backend for the new key is
// resolved once, and the collection is reloaded wholesale.
func (r *Registry) SetWorkspace(key string) {
	r.Flush()
	r.workspaceKey = key
	r.Reload()
}

// Reload replaces the in-memory collection from the active workspace's
// backend. A missing or unreadable store yields an empty collection.
func (r *Registry) Reload() {
	if r.workspaceKey == "" {
		r.loading = true
		r.store.Replace(nil)
		r.loading = false
		return
	}

	r.kind = backend.ResolveKind(r.fs, r.workspaceKey)
	b := backend.For(r.kind, r.fs, r.settings, r.workspaceKey)
	groups := r.readFrom(b)

	r.loading = true
	r.store.Replace(groups)
	r.loading = false

	r.log.Debug("loaded workspace groups",
		"workspace", r.workspaceKey,
		"backend", r.kind.String(),
		"groups", len(groups))
}

// ToggleBackend migrates the active workspace to the other backend: the
// sidecar file is created or deleted and the in-memory collection is
// immediately re-persisted into the newly selected backend. This is a
// deliberate user-triggered migration, never automatic.
func (r *Registry) ToggleBackend() (backend.Kind, error) {
	if r.workspaceKey == "" {
		return r.kind, ErrNoWorkspace
	}

	if r.kind == backend.KindSidecar {
		sidecar := backend.NewSidecar(r.fs, r.workspaceKey)
		if err := sidecar.Clear(); err != nil {
			return r.kind, err
		}
		r.kind = backend.KindSettings
	} else {
		// Dropping the stale settings value keeps the two stores from
		// diverging silently.
		settings := backend.NewSettings(r.settings, r.workspaceKey)
		if err := settings.Clear(); err != nil {
			return r.kind, err
		}
		r.kind = backend.KindSidecar
	}

	b := backend.For(r.kind, r.fs, r.settings, r.workspaceKey)
	if err := r.writeTo(b, r.workspaceKey, r.store.Groups()); err != nil {
		return r.kind, err
	}
	return r.kind, nil
}
