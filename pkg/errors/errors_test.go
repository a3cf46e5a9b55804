package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestDuitErrorString(t *testing.T) {
	err := &DuitError{
		Op:   "style.Get",
		Kind: KindStyle,
		Err:  stderrors.New("missing field"),
	}
	want := "style.Get [style]: missing field"
	if got := err.Error(); got != want {
		t.Errorf("DuitError.Error() = %q, want %q", got, want)
	}
}

func TestDuitErrorUnwrap(t *testing.T) {
	inner := &TypeMismatchError{Want: "*widgets.Text", Got: "*widgets.Flex"}
	err := &DuitError{Op: "widget.Handle.Get", Kind: KindTypeMismatch, Err: inner}

	var tm *TypeMismatchError
	if !stderrors.As(err, &tm) {
		t.Fatal("expected errors.As to find TypeMismatchError")
	}
	if tm.Got != "*widgets.Flex" {
		t.Errorf("Got = %q, want %q", tm.Got, "*widgets.Flex")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStyle, "style"},
		{KindTypeMismatch, "type_mismatch"},
		{KindResource, "resource"},
		{KindBorrow, "borrow"},
		{KindSpec, "spec"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "ui.Render"
	if got, want := err.Error(), "panic in ui.Render: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBorrowErrorString(t *testing.T) {
	err := &BorrowError{Widget: "*widgets.Flex", Op: "widget.Pod.HandleEvent"}
	want := "widget.Pod.HandleEvent: *widgets.Flex is already borrowed"
	if got := err.Error(); got != want {
		t.Errorf("BorrowError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *DuitError
	handler := &testHandler{onError: func(err *DuitError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&DuitError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestFatal(t *testing.T) {
	var reported *DuitError
	handler := &testHandler{onError: func(err *DuitError) { reported = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Fatal("widget.Pod.Layout", KindStyle, stderrors.New("no style"))
	}()

	de, ok := AsDuitError(recovered)
	if !ok {
		t.Fatalf("recovered %T, want *DuitError", recovered)
	}
	if de.Kind != KindStyle {
		t.Errorf("Kind = %v, want %v", de.Kind, KindStyle)
	}
	if reported != de {
		t.Error("Fatal should report the same error it panics with")
	}
	if de.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	run := func() (err error) {
		defer Recover("test.recover", &err)
		panic("intentional test panic")
	}
	err := run()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	var de *DuitError
	if !stderrors.As(err, &de) || de.Kind != KindPanic {
		t.Fatalf("err = %v, want a panic *DuitError", err)
	}
	var pe *PanicError
	if !stderrors.As(err, &pe) || pe != captured {
		t.Error("err should wrap the reported *PanicError")
	}
}

func TestRecoverFatalReportedOnce(t *testing.T) {
	var errs, panics int
	handler := &testHandler{
		onError: func(*DuitError) { errs++ },
		onPanic: func(*PanicError) { panics++ },
	}
	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	run := func() (err error) {
		defer Recover("test.fatal", &err)
		Fatal("widget.Pod.Paint", KindStyle, stderrors.New("no style"))
		return nil
	}
	err := run()
	var de *DuitError
	if !stderrors.As(err, &de) || de.Kind != KindStyle {
		t.Fatalf("err = %v, want the style *DuitError", err)
	}
	if errs != 1 || panics != 0 {
		t.Errorf("reported %d errors and %d panics, want 1 and 0", errs, panics)
	}

	func() {
		defer Recover("test.nil", nil)
		panic(42)
	}()
	if panics != 1 {
		t.Errorf("panics = %d after a nil destination, want 1", panics)
	}
}

func TestCatchFatal(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	run := func() (err error) {
		defer CatchFatal(&err)
		Fatal("widgets.Image.Paint", KindResource, stderrors.New("no texture 'logo'"))
		return nil
	}
	err := run()
	var de *DuitError
	if !stderrors.As(err, &de) || de.Kind != KindResource {
		t.Fatalf("err = %v, want a resource *DuitError", err)
	}

	defer func() {
		if r := recover(); r != "other" {
			t.Errorf("recovered %v, want the original panic value", r)
		}
	}()
	func() (err error) {
		defer CatchFatal(&err)
		panic("other")
	}()
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Output: &buf}
	h.HandleError(&DuitError{Op: "style.AppendSheet", Kind: KindStyle, Err: stderrors.New("oops")})
	if got, want := buf.String(), "[duit error] style.AppendSheet: oops\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "ui.Render", Value: "boom", StackTrace: "frame"})
	out := buf.String()
	if !strings.Contains(out, "[duit panic] ui.Render: boom") || !strings.Contains(out, "Stack trace:\nframe") {
		t.Errorf("unexpected verbose output %q", out)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError func(*DuitError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DuitError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
