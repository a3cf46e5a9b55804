package style

import "gopkg.in/yaml.v3"

// variablePrefix marks a string value as a variable reference.
const variablePrefix = '$'

// clone deep-copies n, expanding aliases so the copy is self-contained.
func clone(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return clone(n.Alias)
	}
	c := *n
	c.Anchor = ""
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = clone(child)
		}
	}
	return &c
}

// merge deep-merges top into bottom and returns the result. Two mappings
// merge key by key; in every other case top replaces bottom. bottom may be
// modified in place; top is never retained.
func merge(bottom, top *yaml.Node) *yaml.Node {
	if bottom == nil || bottom.Kind != yaml.MappingNode || top.Kind != yaml.MappingNode {
		return clone(top)
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if j := mappingIndex(bottom, key.Value); j >= 0 {
			bottom.Content[j+1] = merge(bottom.Content[j+1], value)
			continue
		}
		bottom.Content = append(bottom.Content, clone(key), clone(value))
	}
	return bottom
}

// mappingIndex returns the index of key's node in the mapping m, or -1.
func mappingIndex(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// mappingValue returns the value stored under key in m, if any.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	if i := mappingIndex(m, key); i >= 0 {
		return m.Content[i+1]
	}
	return nil
}

// applyVariables replaces every string scalar beginning with '$' by a copy
// of the named variable, descending into mappings and sequences. Mapping keys
// are left untouched. A replaced value is not resolved again.
func applyVariables(n *yaml.Node, vars map[string]*yaml.Node) (*yaml.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!str" && len(n.Value) > 0 && n.Value[0] == variablePrefix {
			name := n.Value[1:]
			v, ok := vars[name]
			if !ok {
				return nil, &MissingVariableError{Name: name, Line: n.Line}
			}
			return clone(v), nil
		}
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			v, err := applyVariables(n.Content[i], vars)
			if err != nil {
				return nil, err
			}
			n.Content[i] = v
		}
	case yaml.SequenceNode:
		for i, child := range n.Content {
			v, err := applyVariables(child, vars)
			if err != nil {
				return nil, err
			}
			n.Content[i] = v
		}
	case yaml.AliasNode:
		return applyVariables(clone(n), vars)
	}
	return n, nil
}
