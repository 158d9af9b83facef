package translate

import (
	"testing"

	"github.com/danieljhkim/tabgroups/internal/group"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		oldDir string
		newDir string
		want   string
		wantOK bool
	}{
		{
			name:   "inside workspace",
			path:   `C:\proj1\src\a.cs`,
			oldDir: `C:\proj1`,
			newDir: `C:\proj2`,
			want:   `C:\proj2\src\a.cs`,
			wantOK: true,
		},
		{
			name:   "case-insensitive prefix",
			path:   `c:\Proj1\src\a.cs`,
			oldDir: `C:\proj1`,
			newDir: `C:\proj2`,
			want:   `C:\proj2\src\a.cs`,
			wantOK: true,
		},
		{
			name:   "outside workspace",
			path:   `D:\other\b.cs`,
			oldDir: `C:\proj1`,
			newDir: `C:\proj2`,
			want:   `D:\other\b.cs`,
			wantOK: false,
		},
		{
			name:   "sibling directory sharing prefix text",
			path:   `C:\proj10\a.cs`,
			oldDir: `C:\proj1`,
			newDir: `C:\proj2`,
			want:   `C:\proj10\a.cs`,
			wantOK: false,
		},
		{
			name:   "unix style",
			path:   "/home/dev/proj1/src/a.go",
			oldDir: "/home/dev/proj1",
			newDir: "/home/dev/proj2",
			want:   "/home/dev/proj2/src/a.go",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Rewrite(tt.path, tt.oldDir, tt.newDir)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Rewrite() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGroups(t *testing.T) {
	g := group.New("A")
	g.Files = []string{`C:\proj1\src\a.cs`, `D:\shared\lib.cs`}
	g.Positions = []byte{0x01, 0x02}
	g.Description = "stale"

	Groups([]*group.Group{g}, `C:\proj1\app.sln`, `C:\proj2\app.sln`)

	if g.Files[0] != `C:\proj2\src\a.cs` {
		t.Errorf("expected rewritten path, got %q", g.Files[0])
	}
	if g.Files[1] != `D:\shared\lib.cs` {
		t.Errorf("path outside workspace changed: %q", g.Files[1])
	}
	if g.Positions != nil {
		t.Error("expected positions discarded after translation")
	}
	if g.Description != "a.cs, lib.cs" {
		t.Errorf("expected regenerated description, got %q", g.Description)
	}
}
