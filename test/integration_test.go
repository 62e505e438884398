// ABOUTME: Integration tests for notepad CLI commands.
// ABOUTME: Builds the binary and drives list, show, export and run.

package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/notepad/internal/models"
	"gopkg.in/yaml.v3"
)

var notepadBin string

func TestMain(m *testing.M) {
	// Build notepad binary
	cmd := exec.Command("go", "build", "-o", "bin/notepad", "./cmd/notepad")
	cmd.Dir = ".."
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	wd, _ := os.Getwd()
	notepadBin = filepath.Join(wd, "..", "bin", "notepad")

	os.Exit(m.Run())
}

func TestListShow(t *testing.T) {
	out, err := runNotepad(t, nil, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	for _, title := range []string{"Note 1", "Note 2", "Note 3"} {
		if !strings.Contains(out, title) {
			t.Errorf("expected %q in list: %s", title, out)
		}
	}
	if strings.Index(out, "Note 1") > strings.Index(out, "Note 3") {
		t.Errorf("expected most recent note first: %s", out)
	}

	// Extract ID prefix from list output
	var idPrefix string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Note 2") {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				idPrefix = fields[0]
				break
			}
		}
	}
	if idPrefix == "" {
		t.Fatal("could not extract ID prefix")
	}

	out, err = runNotepad(t, nil, "show", idPrefix, "--raw")
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Note 2") || !strings.Contains(out, "Lorem ipsum dolor") {
		t.Errorf("expected note 2 in show: %s", out)
	}

	out, err = runNotepad(t, nil, "show", "zz")
	if err == nil {
		t.Errorf("expected short prefix to fail: %s", out)
	}
}

func TestExportJSON(t *testing.T) {
	out, err := runNotepad(t, nil, "export", "--format", "json")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}

	var data struct {
		Notes []struct {
			Title string `json:"title"`
		} `json:"notes"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(data.Notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(data.Notes))
	}
	if data.Notes[0].Title != "Note 1" {
		t.Errorf("expected Note 1 first, got %q", data.Notes[0].Title)
	}
}

func TestExportMarkdown(t *testing.T) {
	out, err := runNotepad(t, nil, "export", "-f", "md")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "---\nid: ") {
		t.Errorf("expected frontmatter: %s", out)
	}
	if n := strings.Count(out, "title: Note"); n != 3 {
		t.Errorf("expected 3 frontmatter titles, got %d", n)
	}
}

func TestRunScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.yaml")
	body := `steps:
  - op: new
  - op: title
    text: Groceries
  - op: content
    text: eggs, milk
  - op: clear
  - op: select
    note: $2
  - op: bold
  - op: delete
    note: $selected
`
	if err := os.WriteFile(script, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runNotepad(t, nil, "run", script, "--format", "yaml")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}

	var state models.State
	if err := yaml.Unmarshal([]byte(out), &state); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if len(state.Notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(state.Notes))
	}
	if state.Notes[0].Title != "Groceries" || state.Notes[0].Content != "eggs, milk" {
		t.Errorf("expected committed note first, got %+v", state.Notes[0])
	}
	if state.Editor.HasSelection() {
		t.Errorf("expected no selection after delete, got %s", state.Editor.SelectedID)
	}
	if !state.Editor.Bold {
		t.Error("style should survive clear and delete")
	}
}

func TestRunScriptRejectsUnknownOp(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(script, []byte("steps:\n  - op: explode\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runNotepad(t, nil, "run", script)
	if err == nil {
		t.Fatalf("expected failure: %s", out)
	}
	if !strings.Contains(out, "invalid script") {
		t.Errorf("expected validation error: %s", out)
	}
}

func TestSamplesDisabledByEnv(t *testing.T) {
	out, err := runNotepad(t, []string{"NOTEPAD_SAMPLES=false"}, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No notes yet.") {
		t.Errorf("expected empty list: %s", out)
	}
}

func TestConfigInitOverwritesInvalidConfig(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "notepad", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	env := []string{"XDG_CONFIG_HOME=" + home}

	out, err := runNotepad(t, env, "list")
	if err == nil {
		t.Fatalf("expected invalid config to fail: %s", out)
	}

	out, err = runNotepad(t, env, "version")
	if err != nil {
		t.Fatalf("version failed: %v\n%s", err, out)
	}

	out, err = runNotepad(t, env, "config", "init", "--force")
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "log_level: info") {
		t.Errorf("expected default config, got: %s", data)
	}

	out, err = runNotepad(t, env, "list")
	if err != nil {
		t.Fatalf("list failed after repair: %v\n%s", err, out)
	}
}

func runNotepad(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cmd := exec.Command(notepadBin, args...) //nolint:gosec // Running our own test binary is expected in integration tests
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+dir, "NOTEPAD_LOG_LEVEL=warn")
	cmd.Env = append(cmd.Env, env...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
