package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	textSheet = `
styles:
  text:
    color: black
    size: 16
`
	formSpec = `
name: Form
child:
  Column:
    classes: [form, dense]
    children:
      - Text:
          id: title
          text: Hello
          flex: 2
      - Row:
          id: actions
          children:
            - Button:
                id: ok
                child:
                  Text: OK
`
	labelSpec = `
name: Label
child:
  Text: hi
`
)

func newProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// capture runs the CLI with args and returns what it printed.
func capture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	defer func() { stdout, stderr = oldOut, oldErr }()
	err := run(args)
	return out.String(), err
}

func TestHelpAndVersion(t *testing.T) {
	out, err := capture(t)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, name := range []string{"check", "dump", "preview", "version"} {
		if !strings.Contains(out, "  "+name) {
			t.Errorf("help does not list %s:\n%s", name, out)
		}
	}

	for _, args := range [][]string{{"--version"}, {"version"}} {
		out, err := capture(t, args...)
		if err != nil {
			t.Fatalf("run(%v) error = %v", args, err)
		}
		if !strings.HasPrefix(out, "duit version "+Version) {
			t.Errorf("run(%v) = %q", args, out)
		}
	}
}

func TestCommandHelp(t *testing.T) {
	out, err := capture(t, "dump", "--help")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out, "duit dump [spec...]") {
		t.Errorf("help = %q", out)
	}
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"frobnicate"}, "unknown command: frobnicate"},
		{[]string{"check", "--dir"}, "--dir requires a directory path"},
		{[]string{"preview", "a", "b"}, "at most one spec"},
	}
	for _, tt := range tests {
		_, err := capture(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("run(%v) error = %v, want %q", tt.args, err, tt.wantErr)
		}
	}
}

func TestCheck(t *testing.T) {
	dir := newProject(t, map[string]string{
		"go.mod":           "module example.com/form\n",
		"style.yaml":       textSheet + "  button:\n    padding: 4\n    border_radius: 2\n    border_width: 1\n    border_color: black\n    background_color: white\n",
		"specs/form.yaml":  formSpec,
		"specs/label.yaml": labelSpec,
	})
	out, err := capture(t, "--dir", dir, "check")
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, out)
	}
	for _, want := range []string{
		"form " + dir,
		"ok   stylesheet style.yaml",
		"ok   spec       " + filepath.Join("specs", "form.yaml"),
		"ok   Form",
		"ok   Label",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestCheckReportsProblems(t *testing.T) {
	dir := newProject(t, map[string]string{
		// no button style, so laying out Form is fatal
		"style.yaml":       textSheet,
		"specs/form.yaml":  formSpec,
		"specs/label.yaml": labelSpec,
		"specs/bad.yaml":   "name: 1bad\nchild:\n  Text: x\n",
	})
	out, err := capture(t, "--dir="+dir, "check")
	if err == nil || err.Error() != "2 problem(s) found" {
		t.Fatalf("check error = %v, want 2 problems\n%s", err, out)
	}
	for _, want := range []string{
		"FAIL spec       " + filepath.Join("specs", "bad.yaml"),
		"FAIL Form",
		"ok   Label",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestDump(t *testing.T) {
	dir := newProject(t, map[string]string{
		"specs/form.yaml": formSpec,
	})
	out, err := capture(t, "--dir", dir, "dump", "Form")
	if err != nil {
		t.Fatalf("dump error = %v", err)
	}
	want := `Form (specs/form.yaml)
Column .form .dense
├── Text #title flex=2 "Hello"
└── Row #actions
    └── Button #ok
        └── Text "OK"
`
	if diff := cmp.Diff(want, filepath.ToSlash(out)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}

	if _, err := capture(t, "--dir", dir, "dump", "Missing"); err == nil {
		t.Error("dump of an unknown spec succeeded")
	}
}

func TestRootSpec(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		want    string
		wantErr bool
	}{
		{name: "first by name", want: "Form"},
		{name: "configured", config: "root: Label\n", want: "Label"},
		{name: "unknown", config: "root: Nope\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{
				"specs/form.yaml":  formSpec,
				"specs/label.yaml": labelSpec,
			}
			if tt.config != "" {
				files["duit.yaml"] = tt.config
			}
			projectDir = newProject(t, files)
			defer func() { projectDir = "" }()

			cfg, err := resolveProject()
			if err != nil {
				t.Fatalf("resolveProject() error = %v", err)
			}
			p, _ := openProject(cfg)
			got, err := p.rootSpec()
			if (err != nil) != tt.wantErr {
				t.Fatalf("rootSpec() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("rootSpec() = %q, want %q", got, tt.want)
			}
		})
	}
}
