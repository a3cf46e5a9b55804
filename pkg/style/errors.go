package style

import (
	"fmt"
	"strings"
)

// QueryError reports a malformed class query.
type QueryError struct {
	Query  string
	Pos    int
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("class query %q at %d: %s", e.Query, e.Pos, e.Reason)
}

// MissingVariableError reports a reference to an undefined variable.
type MissingVariableError struct {
	Name string
	Line int
}

func (e *MissingVariableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("missing variable '%s' (line %d)", e.Name, e.Line)
	}
	return fmt.Sprintf("missing variable '%s'", e.Name)
}

// SheetError reports a stylesheet whose structure is invalid.
type SheetError struct {
	Line   int
	Reason string
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("stylesheet line %d: %s", e.Line, e.Reason)
}

// SchemaError reports a resolved style that does not fit the requested Go
// style type: a required field is absent or a value has the wrong shape.
type SchemaError struct {
	Type    string
	Classes []string
	Field   string
	Err     error
}

func (e *SchemaError) Error() string {
	classes := "[" + strings.Join(e.Classes, ", ") + "]"
	if e.Field != "" {
		return fmt.Sprintf("style %s for classes %s: missing field %q", e.Type, classes, e.Field)
	}
	return fmt.Sprintf("style %s for classes %s: %v", e.Type, classes, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
