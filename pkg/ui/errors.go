package ui

import "fmt"

// UnknownSpecError is returned when no spec with the requested name was
// added.
type UnknownSpecError struct {
	Name string
}

func (e *UnknownSpecError) Error() string {
	return fmt.Sprintf("unknown spec '%s'", e.Name)
}

// UnknownKindError is returned when a spec uses a widget kind with no
// registered constructor.
type UnknownKindError struct {
	Kind string
	Line int
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("line %d: unknown widget kind '%s'", e.Line, e.Kind)
}

// PropsError is returned when a node's props do not have the type its
// kind's constructor expects.
type PropsError struct {
	Kind string
	Line int
}

func (e *PropsError) Error() string {
	return fmt.Sprintf("line %d: unexpected properties for widget kind '%s'", e.Line, e.Kind)
}

// MissingIDError is returned by Bind when an instance has no widget with a
// requested ID.
type MissingIDError struct {
	Spec string
	ID   string
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("spec %s has no widget with ID '%s'", e.Spec, e.ID)
}
