package widget

import (
	"reflect"

	"github.com/go-duit/duit/pkg/errors"
)

// Handle is a typed reference to a pod whose widget is known to be a T.
// Accessing a pod whose widget is of another type panics.
type Handle[T any] struct {
	pod *Pod
}

// NewHandle returns a typed handle to pod. The type is checked on access.
func NewHandle[T any](pod *Pod) Handle[T] {
	return Handle[T]{pod: pod}
}

// Pod returns the underlying pod.
func (h Handle[T]) Pod() *Pod {
	return h.pod
}

// Get returns the widget.
func (h Handle[T]) Get() T {
	if h.pod.borrowed {
		errors.Fatal("widget.Handle.Get", errors.KindBorrow,
			&errors.BorrowError{Widget: TypeName(h.pod.Widget()), Op: "widget.Handle.Get"})
	}
	return h.widget()
}

func (h Handle[T]) widget() T {
	w, ok := h.pod.Widget().(T)
	if !ok {
		errors.Fatal("widget.Handle.Get", errors.KindTypeMismatch, &errors.TypeMismatchError{
			Want: reflect.TypeFor[T]().String(),
			Got:  TypeName(h.pod.Widget()),
		})
	}
	return w
}

// Update calls fn with the widget and its data while holding the pod.
func (h Handle[T]) Update(fn func(w T, data *Data)) {
	w := h.widget()
	defer h.pod.borrow("widget.Handle.Update")()
	fn(w, &h.pod.data)
}

// Hide hides the widget.
func (h Handle[T]) Hide() {
	h.withData(func(d *Data) { d.SetHidden(true) })
}

// Unhide shows the widget again.
func (h Handle[T]) Unhide() {
	h.withData(func(d *Data) { d.SetHidden(false) })
}

// AddClass adds a style class.
func (h Handle[T]) AddClass(class string) {
	h.withData(func(d *Data) { d.AddClass(class) })
}

// RemoveClass removes a style class.
func (h Handle[T]) RemoveClass(class string) {
	h.withData(func(d *Data) { d.RemoveClass(class) })
}

func (h Handle[T]) withData(fn func(*Data)) {
	defer h.pod.borrow("widget.Handle")()
	fn(&h.pod.data)
}

// Bind points h at pod after checking that pod holds a T.
func (h *Handle[T]) Bind(pod *Pod) error {
	if _, ok := pod.Widget().(T); !ok {
		return &errors.TypeMismatchError{
			Want: reflect.TypeFor[T]().String(),
			Got:  TypeName(pod.Widget()),
		}
	}
	h.pod = pod
	return nil
}
