// Package style implements the cascading style engine.
//
// A stylesheet is a YAML document with two optional top-level keys:
//
//	variables:
//	  accent: rgb(60, 120, 220)
//	styles:
//	  button:
//	    padding: 8
//	    background_color: $accent
//	  button & hovered:
//	    background_color: rgb(80, 140, 240)
//
// Each key under styles is a class query. A widget's resolved style is the
// deep merge, in stylesheet order, of every rule whose query matches the
// widget's class list. Later rules override earlier ones; mappings merge key
// by key and anything else is replaced wholesale.
//
// String values beginning with '$' are replaced by the named variable when
// the sheet is appended. Variables are global across sheets and the last
// writer wins.
//
// Resolved styles are decoded into the widget's Go style struct with
// gopkg.in/yaml.v3 and cached per class list. The class list is treated as an
// ordered key, so ["a", "b"] and ["b", "a"] are cached separately even though
// they resolve to the same style.
package style
