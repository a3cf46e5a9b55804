// Package config loads the optional duit.yaml or duit.toml project file and
// resolves it against the project directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	duiterrors "github.com/go-duit/duit/pkg/errors"
)

// File names tried by Load, in order.
const (
	YAMLFile = "duit.yaml"
	TOMLFile = "duit.toml"
)

// Defaults applied by Resolve.
const (
	DefaultStylesheet    = "style.yaml"
	DefaultSpecs         = "specs/*.yaml"
	DefaultWindowWidth   = 800
	DefaultWindowHeight  = 600
	DefaultDoubleClickMS = 500
	DefaultMinSpacingMS  = 30
	defaultAppName       = "duit_app"
)

// Config mirrors the project file. Every field is optional.
type Config struct {
	App         AppConfig         `yaml:"app" toml:"app"`
	Stylesheets []string          `yaml:"stylesheets,omitempty" toml:"stylesheets,omitempty"`
	Specs       []string          `yaml:"specs,omitempty" toml:"specs,omitempty"`
	Textures    map[string]string `yaml:"textures,omitempty" toml:"textures,omitempty"`
	Root        string            `yaml:"root,omitempty" toml:"root,omitempty"`
	Window      WindowConfig      `yaml:"window" toml:"window"`
	DoubleClick DoubleClickConfig `yaml:"double_click" toml:"double_click"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
}

// WindowConfig is the logical size used when laying specs out off screen.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty" toml:"width,omitempty"`
	Height int `yaml:"height,omitempty" toml:"height,omitempty"`
}

// DoubleClickConfig holds the double-click timing in milliseconds.
type DoubleClickConfig struct {
	WindowMS     int `yaml:"window_ms,omitempty" toml:"window_ms,omitempty"`
	MinSpacingMS int `yaml:"min_spacing_ms,omitempty" toml:"min_spacing_ms,omitempty"`
}

// Resolved contains resolved configuration values. Paths are absolute.
type Resolved struct {
	Root       string
	ConfigFile string
	ModulePath string
	AppName    string

	Stylesheets []string
	Specs       []string
	Textures    map[string]string
	RootSpec    string

	WindowWidth  int
	WindowHeight int

	DoubleClickWindow     time.Duration
	DoubleClickMinSpacing time.Duration
}

// Load reads duit.yaml or duit.toml from dir. It returns an empty config
// and no path when neither exists. Unknown keys are errors. Errors are
// *errors.DuitError of kind KindConfig.
func Load(dir string) (*Config, string, error) {
	cfg, path, err := load(dir)
	if err != nil {
		return nil, "", configError("config.Load", err)
	}
	return cfg, path, nil
}

func configError(op string, err error) error {
	return &duiterrors.DuitError{Op: op, Kind: duiterrors.KindConfig, Err: err}
}

func load(dir string) (*Config, string, error) {
	yamlPath := filepath.Join(dir, YAMLFile)
	tomlPath := filepath.Join(dir, TOMLFile)
	yamlData, yamlErr := readOptional(yamlPath)
	tomlData, tomlErr := readOptional(tomlPath)
	if err := errors.Join(yamlErr, tomlErr); err != nil {
		return nil, "", err
	}

	var cfg Config
	switch {
	case yamlData != nil && tomlData != nil:
		return nil, "", fmt.Errorf("both %s and %s found in %s", YAMLFile, TOMLFile, dir)
	case yamlData != nil:
		dec := yaml.NewDecoder(bytes.NewReader(yamlData))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, "", fmt.Errorf("failed to parse %s: %w", YAMLFile, err)
		}
		return &cfg, yamlPath, nil
	case tomlData != nil:
		dec := toml.NewDecoder(bytes.NewReader(tomlData)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", TOMLFile, err)
		}
		return &cfg, tomlPath, nil
	}
	return &cfg, "", nil
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

// Resolve loads the project file in dir (if present) and resolves defaults.
// Stylesheet and spec entries are glob patterns relative to dir. A pattern
// given explicitly must match at least one file; the defaults may match
// nothing. Errors are *errors.DuitError of kind KindConfig.
func Resolve(dir string) (*Resolved, error) {
	r, err := resolve(dir)
	if err != nil {
		return nil, configError("config.Resolve", err)
	}
	return r, nil
}

func resolve(dir string) (*Resolved, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	cfg, path, err := load(dir)
	if err != nil {
		return nil, err
	}
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       dir,
		ConfigFile: path,
		ModulePath: modulePath,
		AppName:    strings.TrimSpace(cfg.App.Name),
		RootSpec:   strings.TrimSpace(cfg.Root),
	}
	if r.AppName == "" {
		r.AppName = appNameFor(modulePath, dir)
	}

	if r.Stylesheets, err = expand(dir, cfg.Stylesheets, DefaultStylesheet); err != nil {
		return nil, fmt.Errorf("stylesheets: %w", err)
	}
	if r.Specs, err = expand(dir, cfg.Specs, DefaultSpecs); err != nil {
		return nil, fmt.Errorf("specs: %w", err)
	}

	if len(cfg.Textures) > 0 {
		r.Textures = make(map[string]string, len(cfg.Textures))
		for name, path := range cfg.Textures {
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			r.Textures[name] = path
		}
	}

	r.WindowWidth = orDefault(cfg.Window.Width, DefaultWindowWidth)
	r.WindowHeight = orDefault(cfg.Window.Height, DefaultWindowHeight)
	r.DoubleClickWindow = time.Duration(orDefault(cfg.DoubleClick.WindowMS, DefaultDoubleClickMS)) * time.Millisecond
	r.DoubleClickMinSpacing = time.Duration(orDefault(cfg.DoubleClick.MinSpacingMS, DefaultMinSpacingMS)) * time.Millisecond

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolved) validate() error {
	if r.WindowWidth < 0 || r.WindowHeight < 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", r.WindowWidth, r.WindowHeight)
	}
	if r.DoubleClickWindow < 0 || r.DoubleClickMinSpacing < 0 {
		return fmt.Errorf("double_click timings cannot be negative")
	}
	if r.DoubleClickMinSpacing > r.DoubleClickWindow {
		return fmt.Errorf("double_click.min_spacing_ms (%v) exceeds window_ms (%v)",
			r.DoubleClickMinSpacing, r.DoubleClickWindow)
	}
	return nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func expand(dir string, patterns []string, def string) ([]string, error) {
	explicit := len(patterns) > 0
	if !explicit {
		patterns = []string{def}
	}
	var out []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 && explicit {
			return nil, fmt.Errorf("%q matches no files", p)
		}
		slices.Sort(matches)
		for _, m := range matches {
			if !slices.Contains(out, m) {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// FindProjectRoot walks up from start to the first directory containing a
// duit.yaml, duit.toml or go.mod.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range []string{YAMLFile, TOMLFile, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a duit project (no %s, %s or go.mod found)", YAMLFile, TOMLFile)
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir's go.mod, or "" when
// dir has no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func appNameFor(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return defaultAppName
	}
	return base
}
