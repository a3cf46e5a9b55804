package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-duit/duit/cmd/duit/internal/config"
	duiterrors "github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/ui"
)

// project is a resolved configuration and a UI with everything it names
// loaded.
type project struct {
	cfg *config.Resolved
	ui  *ui.UI
	// file each spec was loaded from
	sources map[string]string
}

// loadResult is the outcome of loading one stylesheet, spec file or
// texture.
type loadResult struct {
	What  string
	Path  string
	Specs []string
	Err   error
}

func resolveProject() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if dir, err = config.FindProjectRoot(wd); err != nil {
			return nil, err
		}
	}
	return config.Resolve(dir)
}

// openProject loads every stylesheet, spec file and texture cfg names into
// a new UI. Failures are collected per file rather than stopping the load.
func openProject(cfg *config.Resolved, opts ...ui.Option) (*project, []loadResult) {
	opts = append([]ui.Option{ui.WithDoubleClick(cfg.DoubleClickWindow, cfg.DoubleClickMinSpacing)}, opts...)
	p := &project{cfg: cfg, ui: ui.New(opts...), sources: make(map[string]string)}

	var results []loadResult
	for _, path := range cfg.Stylesheets {
		results = append(results, loadResult{
			What: "stylesheet",
			Path: path,
			Err:  p.ui.AddStylesheetFile(path),
		})
	}
	for _, path := range cfg.Specs {
		r := loadResult{What: "spec", Path: path}
		specs, err := spec.ParseFile(path)
		if err != nil {
			r.Err = err
		}
		for _, s := range specs {
			if prev, dup := p.sources[s.Name]; dup && r.Err == nil {
				r.Err = fmt.Errorf("spec %s already defined in %s", s.Name, p.rel(prev))
				continue
			}
			p.ui.AddSpec(s)
			p.sources[s.Name] = path
			r.Specs = append(r.Specs, s.Name)
		}
		results = append(results, r)
	}
	names := make([]string, 0, len(cfg.Textures))
	for name := range cfg.Textures {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		path := cfg.Textures[name]
		results = append(results, loadResult{
			What: "texture " + name,
			Path: path,
			Err:  p.ui.Textures().LoadFile(name, path),
		})
	}
	return p, results
}

// rel returns path relative to the project root when possible.
func (p *project) rel(path string) string {
	if r, err := filepath.Rel(p.cfg.Root, path); err == nil {
		return r
	}
	return path
}

// rootSpec returns the spec to show when none is named: the configured
// root, or else the first spec in name order.
func (p *project) rootSpec() (string, error) {
	if p.cfg.RootSpec != "" {
		if _, ok := p.ui.Spec(p.cfg.RootSpec); !ok {
			return "", &ui.UnknownSpecError{Name: p.cfg.RootSpec}
		}
		return p.cfg.RootSpec, nil
	}
	names := p.ui.SpecNames()
	if len(names) == 0 {
		return "", fmt.Errorf("no specs found in %s", p.cfg.Root)
	}
	return names[0], nil
}

// layOut instantiates the named spec and renders one frame of it off
// screen. Fatal errors raised while laying out or painting are returned
// instead of crashing the CLI.
func (p *project) layOut(name string, size rendering.Size) (err error) {
	old := duiterrors.DefaultHandler
	duiterrors.SetHandler(&duiterrors.LogHandler{Output: io.Discard})
	defer duiterrors.SetHandler(old)
	defer duiterrors.CatchFatal(&err)

	_, root, err := p.ui.CreateInstance(name)
	if err != nil {
		return err
	}
	id := p.ui.CreateWindow(root, ui.FillPositioner{}, 0)
	defer p.ui.CloseWindow(id)

	var recorder rendering.PictureRecorder
	p.ui.Render(recorder.BeginRecording(size), size)
	recorder.EndRecording()
	p.ui.ClearMessages()
	return nil
}
