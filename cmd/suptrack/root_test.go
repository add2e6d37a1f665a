package suptrack

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suptrack.db")
	for i := 0; i < 2; i++ {
		out := runCommand(t, path, "init")
		if !strings.Contains(out, "Store ready") {
			t.Fatalf("init run %d output: %q", i+1, out)
		}
	}
}

func TestAddListLogFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suptrack.db")

	out := runCommand(t, path, "supplement", "add", "Creatine Monohydrate", "--servings", "60")
	if !strings.Contains(out, "Added Creatine Monohydrate") {
		t.Fatalf("add output: %q", out)
	}

	out = runCommand(t, path, "supplement", "list")
	if !strings.Contains(out, "Creatine Monohydrate") || !strings.Contains(out, "60/60") {
		t.Fatalf("list output: %q", out)
	}

	out = runCommand(t, path, "log", "Creatine Monohydrate", "--date", "2024-06-01", "--time", "18:00")
	if !strings.Contains(out, "Logged Creatine Monohydrate") || !strings.Contains(out, "Servings left: 59") {
		t.Fatalf("log output: %q", out)
	}

	out = runCommand(t, path, "log", "show", "--date", "2024-06-01")
	if !strings.Contains(out, "18:00") {
		t.Fatalf("log show output: %q", out)
	}
}

func TestInfoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suptrack.db")

	out := runCommand(t, path, "info")
	if !strings.Contains(out, "Vitamin D3") {
		t.Fatalf("info list output: %q", out)
	}
	out = runCommand(t, path, "info", "fish oil")
	if !strings.Contains(out, "Omega 3") {
		t.Fatalf("info lookup output: %q", out)
	}
}

func TestExportImportCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suptrack.db")
	file := filepath.Join(dir, "snapshot.json")

	runCommand(t, path, "supplement", "add", "Zinc")
	runCommand(t, path, "export", "--out", file)

	otherPath := filepath.Join(dir, "other.db")
	out := runCommand(t, otherPath, "import", file)
	if !strings.Contains(out, "Imported 1 supplements") {
		t.Fatalf("import output: %q", out)
	}
}

func TestUpdateRejectsNegativeServings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suptrack.db")
	runCommand(t, path, "supplement", "add", "Magnesium", "--servings=30")

	for _, args := range [][]string{
		{"supplement", "update", "Magnesium", "--servings=-5"},
		{"supplement", "update", "Magnesium", "--left=-1"},
	} {
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs(append([]string{"--db", path}, args...))
		if err := rootCmd.Execute(); err == nil {
			t.Fatalf("%v should be rejected", args)
		}
	}

	out := runCommand(t, path, "supplement", "show", "Magnesium")
	if !strings.Contains(out, "Container size: 30") {
		t.Fatalf("container size mutated by rejected update: %q", out)
	}
}
