package ui

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// Instance records the pods created from one spec, indexed by widget ID.
type Instance struct {
	name string
	ids  map[string]*widget.Pod
	// order of first appearance, depth first
	order []string
}

// Name returns the name of the spec the instance was created from.
func (i *Instance) Name() string { return i.name }

// Pod returns the pod created for the node with the given ID.
func (i *Instance) Pod(id string) (*widget.Pod, bool) {
	p, ok := i.ids[id]
	return p, ok
}

// IDs returns every widget ID in the instance, depth first.
func (i *Instance) IDs() []string {
	return slices.Clone(i.order)
}

// CreateInstance builds the widget tree of the named spec. It returns the
// instance for looking up widgets by ID and the mounted root pod, ready to be
// placed in a window or inserted into another tree.
func (u *UI) CreateInstance(name string) (*Instance, *widget.Pod, error) {
	s, ok := u.specs[name]
	if !ok {
		return nil, nil, &UnknownSpecError{Name: name}
	}
	inst := &Instance{name: name, ids: make(map[string]*widget.Pod)}
	root, err := u.instantiate(inst, s.Child)
	if err != nil {
		return nil, nil, fmt.Errorf("spec %s: %w", name, err)
	}
	root.Mount()
	return inst, root, nil
}

func (u *UI) instantiate(inst *Instance, node *spec.Node) (*widget.Pod, error) {
	build, ok := u.kinds[node.Kind]
	if !ok {
		return nil, &UnknownKindError{Kind: node.Kind, Line: node.Line}
	}
	w, err := build(node)
	if err != nil {
		return nil, err
	}
	pod := widget.NewDyn(w)

	base := node.Base()
	data := pod.Data()
	if base.Flex != nil {
		data.SetFlex(*base.Flex)
	}
	for _, class := range base.Classes {
		data.AddClass(class)
	}
	data.MarkClassesClean()

	for _, child := range node.Children() {
		childPod, err := u.instantiate(inst, child)
		if err != nil {
			return nil, err
		}
		data.AddChild(childPod)
	}

	if base.ID != "" {
		if _, dup := inst.ids[base.ID]; dup {
			return nil, &spec.DuplicateIDError{ID: base.ID}
		}
		inst.ids[base.ID] = pod
		inst.order = append(inst.order, base.ID)
	}
	return pod, nil
}

// HandleByID returns a typed handle to the widget with the given ID. A
// missing ID or a widget of another type is a programming error and panics.
func HandleByID[T any](inst *Instance, id string) widget.Handle[T] {
	pod, ok := inst.ids[id]
	if !ok {
		errors.Fatal("ui.HandleByID", errors.KindSpec,
			fmt.Errorf("spec %s has no widget with ID '%s'", inst.name, id))
	}
	var h widget.Handle[T]
	if err := h.Bind(pod); err != nil {
		errors.Fatal("ui.HandleByID", errors.KindTypeMismatch, fmt.Errorf("widget '%s': %w", id, err))
	}
	return h
}

// binder is implemented by *widget.Handle[T] for every T.
type binder interface {
	Bind(pod *widget.Pod) error
}

// Bind fills the handle fields of the struct pointed to by dst. Every field
// of type widget.Handle[T] tagged `duit:"id"` is bound to the widget with
// that ID:
//
//	var w struct {
//		Counter widget.Handle[*widgets.Text]   `duit:"counter"`
//		Plus    widget.Handle[*widgets.Button] `duit:"increment"`
//	}
//	err := ui.Bind(inst, &w)
//
// Untagged fields are ignored. An unknown ID or a type mismatch is returned
// as an error and leaves the remaining fields unbound.
func Bind(inst *Instance, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: destination must be a pointer to a struct, got %T", dst)
	}
	v = v.Elem()
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		id, ok := field.Tag.Lookup("duit")
		if !ok || id == "" || id == "-" {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("bind: field %s is not exported", field.Name)
		}
		b, ok := v.Field(i).Addr().Interface().(binder)
		if !ok {
			return fmt.Errorf("bind: field %s has type %s, not a widget handle", field.Name, field.Type)
		}
		pod, ok := inst.ids[id]
		if !ok {
			return &MissingIDError{Spec: inst.name, ID: id}
		}
		if err := b.Bind(pod); err != nil {
			return fmt.Errorf("bind: field %s: %w", field.Name, err)
		}
	}
	return nil
}
