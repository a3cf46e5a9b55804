package testing

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-duit/duit/pkg/widget"
)

// UpdateSnapshotsEnv names the environment variable that, when set to 1,
// makes MatchesFile rewrite golden files instead of comparing.
const UpdateSnapshotsEnv = "DUIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the laid-out pod trees of every window and the display
// operations of the last frame.
type Snapshot struct {
	Windows    []*PodNode  `yaml:"windows"`
	DisplayOps []DisplayOp `yaml:"display_ops,omitempty"`
}

// PodNode is one pod in a serialized tree.
type PodNode struct {
	ID       string     `yaml:"id"`
	Type     string     `yaml:"type"`
	Size     [2]float64 `yaml:"size,flow"`
	Origin   [2]float64 `yaml:"origin,flow"`
	Classes  []string   `yaml:"classes,flow,omitempty"`
	Hidden   bool       `yaml:"hidden,omitempty"`
	Flex     *float64   `yaml:"flex,omitempty"`
	Children []*PodNode `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the current trees and the operations recorded by
// the last Pump.
func (t *UITester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{DisplayOps: t.canvas.Ops()}
	counter := &typeCounter{}
	for _, w := range t.ui.Windows() {
		snap.Windows = append(snap.Windows, capturePod(w.Root(), counter))
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When DUIT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff from other to this snapshot, or the empty string if
// they are equal. Both are compared in their serialized form, so values
// that survive a round trip through the golden file compare equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, errA := normalize(s)
	b, errB := normalize(other)
	if errA != nil || errB != nil {
		return fmt.Sprintf("cannot compare snapshots: %v", errors.Join(errA, errB))
	}
	return cmp.Diff(b, a)
}

// typeCounter assigns stable IDs like "Flex#0", "Flex#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func capturePod(pod *widget.Pod, counter *typeCounter) *PodNode {
	data := pod.Data()
	typeName := shortTypeName(pod.Widget())
	size, origin := data.Size(), data.Origin()
	node := &PodNode{
		ID:      counter.next(typeName),
		Type:    typeName,
		Size:    [2]float64{round2(size.Width), round2(size.Height)},
		Origin:  [2]float64{round2(origin.X), round2(origin.Y)},
		Classes: data.Classes(),
		Hidden:  data.Hidden(),
	}
	if flex, ok := data.Flex(); ok {
		node.Flex = &flex
	}
	for _, child := range data.Children() {
		node.Children = append(node.Children, capturePod(child, counter))
	}
	return node
}

// shortTypeName strips the pointer and the package path: "*widgets.Flex"
// becomes "Flex".
func shortTypeName(w any) string {
	name := strings.TrimPrefix(widget.TypeName(w), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize round-trips s through YAML into generic values.
func normalize(s *Snapshot) (any, error) {
	data, err := marshalSnapshot(s)
	if err != nil {
		return nil, err
	}
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
