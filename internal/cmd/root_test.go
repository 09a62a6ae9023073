package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate keeps the suite independent from any config file on the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("LSGO_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestRootCommandHelp(t *testing.T) {
	isolate(t)
	cmd := NewRootCommand(nil)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "lsgo") {
		t.Errorf("help text should mention lsgo, got: %s", output)
	}
	for _, flag := range []string{"--tree", "--recursive", "--group-dirs", "--classic"} {
		if !strings.Contains(output, flag) {
			t.Errorf("help text missing %s", flag)
		}
	}
}

func TestDepthWithoutRecursiveIsConfigError(t *testing.T) {
	isolate(t)
	exitCode := ExitOK
	cmd := NewRootCommand(&exitCode)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--depth", "5", t.TempDir()})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected --depth without --recursive/--tree to fail")
	}
	if !strings.Contains(err.Error(), "--tree or --recursive") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnknownEnumValueIsConfigError(t *testing.T) {
	isolate(t)
	cmd := NewRootCommand(nil)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--sort", "bogus", t.TempDir()})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected invalid --sort value to fail")
	}
}

func TestMalformedConfigFileIsConfigError(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sort: [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCommand(nil)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config", path, t.TempDir()})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected malformed config file to fail")
	}
}

func TestRunOnTempDirExitsZero(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	exitCode := -1
	cmd := NewRootCommand(&exitCode)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{dir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if exitCode != ExitOK {
		t.Errorf("exit code = %d, want %d", exitCode, ExitOK)
	}
}

func TestMissingPathExitsOne(t *testing.T) {
	isolate(t)
	exitCode := -1
	cmd := NewRootCommand(&exitCode)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "no-such-entry")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("missing path must not be a command error: %v", err)
	}
	if exitCode != ExitDiagnostics {
		t.Errorf("exit code = %d, want %d", exitCode, ExitDiagnostics)
	}
}
