// Package main provides the duit demo application. It runs in the terminal
// and demonstrates binding widgets from specs and reacting to their
// messages.
package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/go-duit/duit/pkg/ui"
)

//go:embed style.yaml specs/*.yaml
var assets embed.FS

// newUI returns a UI with the showcase stylesheet and every demo spec
// loaded.
func newUI(opts ...ui.Option) (*ui.UI, error) {
	u := ui.New(opts...)
	sheet, err := assets.ReadFile("style.yaml")
	if err != nil {
		return nil, err
	}
	if err := u.AddStylesheet(sheet); err != nil {
		return nil, err
	}
	paths, err := fs.Glob(assets, "specs/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		data, err := assets.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := u.AddSpecYAML(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return u, nil
}

// start builds demo and shows it in a window filling the UI. It returns the
// demo's frame hook.
func start(u *ui.UI, demo Demo) (func(*ui.UI), error) {
	root, update, err := demo.Build(u)
	if err != nil {
		return nil, fmt.Errorf("demo %s: %w", demo.Name, err)
	}
	u.CreateWindow(root, ui.FillPositioner{}, 0)
	return update, nil
}
