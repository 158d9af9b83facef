package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/danieljhkim/tabgroups/internal/backend"
	"github.com/danieljhkim/tabgroups/internal/config"
	"github.com/danieljhkim/tabgroups/internal/fsops"
	"github.com/danieljhkim/tabgroups/internal/group"
	"github.com/danieljhkim/tabgroups/internal/host"
	"github.com/danieljhkim/tabgroups/internal/logging"
	"github.com/danieljhkim/tabgroups/internal/registry"
)

// app bundles the wired registry with the resources that need closing after
// a command runs.
type app struct {
	reg   *registry.Registry
	cfg   *config.Config
	paths *config.Paths
	fs    fsops.FS

	db  *backend.SQLiteStore
	log *logging.Logger
}

// newApp wires a registry over real implementations: the sqlite settings
// store under ~/.tabgroups, a file-backed session host next to the
// workspace, and an interactive stdin confirmation prompt.
func newApp() (*app, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = filepath.Join(paths.Logs, "tabgroups.log")
	}
	logger, err := logging.NewLogger(logFile, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	workspace, err := resolveWorkspace()
	if err != nil {
		logger.Close()
		return nil, err
	}

	db, err := backend.OpenSQLite(paths.SettingsDB)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	fs := fsops.NewRealFS()
	session := host.NewSessionHost(fs, workspace)

	reg := registry.New(fs, db, session, session, host.ConfirmFunc(promptConfirm), registry.Options{
		Debounce: time.Duration(cfg.Persist.DebounceMs) * time.Millisecond,
		Logger:   logger.WithWorkspace(workspace),
	})
	reg.SetWorkspace(workspace)

	return &app{reg: reg, cfg: cfg, paths: paths, fs: fs, db: db, log: logger}, nil
}

// Close flushes any pending write and releases the app's resources.
func (a *app) Close() {
	a.reg.Flush()
	_ = a.db.Close()
	_ = a.log.Close()
}

// resolveWorkspace returns the workspace key for this invocation: the
// --workspace flag when given, otherwise discovered by walking up from the
// working directory.
func resolveWorkspace() (string, error) {
	if workspaceFlag != "" {
		abs, err := filepath.Abs(workspaceFlag)
		if err != nil {
			return "", fmt.Errorf("failed to resolve workspace path: %w", err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	ws, err := host.DiscoverWorkspace(cwd)
	if err != nil {
		return "", fmt.Errorf("no workspace found from %s (use --workspace): %w", cwd, err)
	}
	return ws, nil
}

// lookupGroup finds a group by name, or by slot number when the argument is
// a single digit and no group carries that exact name.
func lookupGroup(reg *registry.Registry, arg string) (*group.Group, error) {
	if g := reg.Store().Lookup(arg); g != nil {
		return g, nil
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= group.MinSlot && n <= group.MaxSlot {
		if g := reg.Store().BySlot(n); g != nil {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", registry.ErrNotFound, arg)
}

// forcedConfirm, when set, answers confirmation prompts without asking.
// Commands with an explicit yes/no flag (import --translate/--keep-paths)
// set it before invoking the registry.
var forcedConfirm *bool

// promptConfirm prompts the user for a yes/no confirmation.
func promptConfirm(prompt string) bool {
	if forcedConfirm != nil {
		return *forcedConfirm
	}
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
