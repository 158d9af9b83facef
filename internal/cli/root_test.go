package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() {
		// The help flag stays set on the shared rootCmd after Execute;
		// reset it so later tests parse their own flags cleanly.
		if f := rootCmd.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("expected help output, got empty string")
	}
	if !strings.Contains(output, "tabgroups") {
		t.Error("expected help to contain 'tabgroups'")
	}
	for _, title := range []string{"Group Operations:", "Organization:", "Stash:", "Transfer:", "Persistence:"} {
		if !strings.Contains(output, title) {
			t.Errorf("expected help to contain group title %q", title)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	rootCmd.SetArgs([]string{"--version"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "1.2.3") {
		t.Errorf("expected version output to contain version, got %q", buf.String())
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"invalid-command"})
	var buf bytes.Buffer
	rootCmd.SetErr(&buf)

	err := rootCmd.Execute()
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestExecute_RendersErrorToStderr(t *testing.T) {
	rootCmd.SetArgs([]string{"no-such-command"})

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	execErr := Execute()

	w.Close()
	os.Stderr = oldStderr
	captured, _ := io.ReadAll(r)

	if execErr == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(string(captured), "unknown command") {
		t.Errorf("expected rendered error on stderr, got %q", captured)
	}
}

func TestSetVersion_EmptyKeepsCurrent(t *testing.T) {
	SetVersion("2.0.0")
	SetVersion("")
	if rootCmd.Version != "2.0.0" {
		t.Errorf("empty SetVersion changed version to %q", rootCmd.Version)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	subcommands := []string{
		"save", "open", "restore", "close", "rm",
		"ls", "describe", "slot", "move",
		"stash", "export", "import", "backend", "watch",
	}

	for _, cmd := range subcommands {
		t.Run(cmd, func(t *testing.T) {
			subCmd, _, err := rootCmd.Find([]string{cmd})
			if err != nil {
				t.Errorf("Find(%q) error = %v", cmd, err)
			}
			if subCmd == nil {
				t.Errorf("Find(%q) returned nil command", cmd)
			}
		})
	}
}
