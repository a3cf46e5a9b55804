package style

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

var unmarshalerType = reflect.TypeFor[yaml.Unmarshaler]()

// missingField returns the dotted path of the first required field of typ
// that node does not provide, or "" if none is missing.
//
// Every field is required unless it is a pointer or its yaml tag carries
// omitempty. Nested structs are checked when present.
func missingField(typ reflect.Type, node *yaml.Node, prefix string) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct || reflect.PointerTo(typ).Implements(unmarshalerType) {
		return ""
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if strings.Contains(opts, "inline") {
			if m := missingField(f.Type, node, prefix); m != "" {
				return m
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		value := mappingValue(node, name)
		if value == nil {
			if strings.Contains(opts, "omitempty") || f.Type.Kind() == reflect.Pointer {
				continue
			}
			return prefix + name
		}
		if value.Kind == yaml.MappingNode {
			if m := missingField(f.Type, value, prefix+name+"."); m != "" {
				return m
			}
		}
	}
	return ""
}
