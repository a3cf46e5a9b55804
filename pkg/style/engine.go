package style

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoStyle is the style type of widgets that take no style values.
type NoStyle struct{}

type rule struct {
	query Query
	value *yaml.Node
}

// Engine stores variables and style rules and resolves styles for class
// lists. An Engine is not safe for concurrent use.
type Engine struct {
	variables map[string]*yaml.Node
	rules     []rule
	cache     map[string]map[reflect.Type]any
}

// NewEngine returns an empty style engine.
func NewEngine() *Engine {
	return &Engine{
		variables: make(map[string]*yaml.Node),
		cache:     make(map[string]map[reflect.Type]any),
	}
}

// AppendSheet parses a stylesheet and adds it to the engine.
//
// Variables defined by the sheet override existing variables of the same
// name; its rules are appended after all existing rules. Variable references
// are resolved now, against the variables known after this sheet's own
// variables are added. The sheet is applied atomically: on error the engine
// is left unchanged.
func (e *Engine) AppendSheet(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse stylesheet: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if isNull(root) {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return &SheetError{Line: root.Line, Reason: "stylesheet must be a mapping"}
	}

	vars := make(map[string]*yaml.Node, len(e.variables))
	for k, v := range e.variables {
		vars[k] = v
	}
	var styles *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "variables":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.MappingNode {
				return &SheetError{Line: value.Line, Reason: "variables must be a mapping"}
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				vars[value.Content[j].Value] = clone(value.Content[j+1])
			}
		case "styles":
			styles = value
		default:
			return &SheetError{Line: key.Line, Reason: fmt.Sprintf("unknown key %q, expected variables or styles", key.Value)}
		}
	}

	var added []rule
	if styles != nil && !isNull(styles) {
		if styles.Kind != yaml.MappingNode {
			return &SheetError{Line: styles.Line, Reason: "styles must be a mapping of class queries"}
		}
		for i := 0; i+1 < len(styles.Content); i += 2 {
			key, value := styles.Content[i], styles.Content[i+1]
			q, err := ParseQuery(key.Value)
			if err != nil {
				return err
			}
			resolved, err := applyVariables(clone(value), vars)
			if err != nil {
				return err
			}
			added = append(added, rule{query: q, value: resolved})
		}
	}

	e.variables = vars
	e.rules = append(e.rules, added...)
	clear(e.cache)
	return nil
}

// AppendSheetFile reads the stylesheet at path and appends it.
func (e *Engine) AppendSheetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := e.AppendSheet(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Variable returns the value of a variable.
func (e *Engine) Variable(name string) (*yaml.Node, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// NumRules returns the number of style rules appended so far.
func (e *Engine) NumRules() int {
	return len(e.rules)
}

// CacheSize returns the number of class lists with a cached style.
func (e *Engine) CacheSize() int {
	return len(e.cache)
}

// Resolve returns the merged style value for classes, before decoding.
// It returns an empty mapping when no rule matches.
func (e *Engine) Resolve(classes []string) *yaml.Node {
	var merged *yaml.Node
	for _, r := range e.rules {
		if r.query.Matches(classes) {
			merged = merge(merged, r.value)
		}
	}
	if merged == nil {
		merged = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	return merged
}

// Matching returns the source text of every rule matching classes, in the
// order they are applied.
func (e *Engine) Matching(classes []string) []string {
	var out []string
	for _, r := range e.rules {
		if r.query.Matches(classes) {
			out = append(out, r.query.Source)
		}
	}
	return out
}

// Get returns the style of type S for the ordered class list classes.
//
// Results are cached per exact class list and style type until the next
// sheet is appended. The returned value is shared and must not be modified.
func Get[S any](e *Engine, classes []string) (*S, error) {
	key := cacheKey(classes)
	typ := reflect.TypeFor[S]()
	if byType, ok := e.cache[key]; ok {
		if v, ok := byType[typ]; ok {
			return v.(*S), nil
		}
	}

	node := e.Resolve(classes)
	if field := missingField(typ, node, ""); field != "" {
		return nil, &SchemaError{Type: typ.String(), Classes: slices.Clone(classes), Field: field}
	}
	s := new(S)
	if err := node.Decode(s); err != nil {
		return nil, &SchemaError{Type: typ.String(), Classes: slices.Clone(classes), Err: err}
	}

	byType := e.cache[key]
	if byType == nil {
		byType = make(map[reflect.Type]any, 1)
		e.cache[key] = byType
	}
	byType[typ] = s
	return s, nil
}

func cacheKey(classes []string) string {
	return strings.Join(classes, "\x1f")
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
