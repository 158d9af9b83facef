// Package translate rewrites document paths when a group collection moves
// between workspaces, as on cross-workspace import. Paths under the original
// workspace's directory are re-rooted onto the new workspace's directory;
// paths outside it are left alone. Both separator styles are accepted so
// collections exported on one platform import on another.
package translate

import (
	"strings"

	"github.com/danieljhkim/tabgroups/internal/group"
)

// workspaceDir returns the directory portion of a workspace key, accepting
// both separator styles.
func workspaceDir(key string) string {
	if i := strings.LastIndexAny(key, `/\`); i >= 0 {
		return key[:i]
	}
	return ""
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// Rewrite re-roots path from oldDir onto newDir when path lies inside oldDir
// (case-insensitive prefix match on a separator boundary). The second return
// reports whether a rewrite happened.
func Rewrite(path, oldDir, newDir string) (string, bool) {
	if oldDir == "" || len(path) <= len(oldDir) {
		return path, false
	}
	if !strings.EqualFold(path[:len(oldDir)], oldDir) {
		return path, false
	}
	// Reject sibling directories sharing the prefix text (proj1 vs proj10).
	if !isSeparator(oldDir[len(oldDir)-1]) && !isSeparator(path[len(oldDir)]) {
		return path, false
	}
	return newDir + path[len(oldDir):], true
}

// Groups rewrites every file path in every group from the original workspace
// key's directory to the new one. Each group's layout blob is discarded (it
// is meaningless under a different workspace) and its description is
// regenerated from the rewritten file list. Groups are mutated in place.
func Groups(groups []*group.Group, oldKey, newKey string) {
	oldDir := workspaceDir(oldKey)
	newDir := workspaceDir(newKey)

	for _, g := range groups {
		for i, f := range g.Files {
			if rewritten, ok := Rewrite(f, oldDir, newDir); ok {
				g.Files[i] = rewritten
			}
		}
		g.Positions = nil
		g.Description = group.DescribeFiles(g.Files)
	}
}
