package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error. Replace it with
	// SetHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler. A nil h restores a plain
// LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report passes err to the global handler, stamping it with the current
// time if it has none.
func Report(err *DuitError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic passes a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// Fatal reports err and then panics with the resulting *DuitError. Layout,
// paint and typed handles call it for failures discovered mid-frame, which
// leave the tree in a state that cannot be continued.
func Fatal(op string, kind ErrorKind, err error) {
	de := &DuitError{Op: op, Kind: kind, Err: err, StackTrace: CaptureStack()}
	Report(de)
	panic(de)
}

// CatchFatal turns a panic raised by Fatal back into an error stored in
// *errp. Any other panic keeps unwinding. It must be deferred directly:
//
//	defer errors.CatchFatal(&err)
func CatchFatal(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	de, ok := AsDuitError(r)
	if !ok {
		panic(r)
	}
	*errp = de
}

// Recover stops a panic and, when errp is not nil, stores it in *errp. A
// *DuitError raised by Fatal was already reported and is stored as is. Any
// other value is reported as a *PanicError and stored wrapped in a
// *DuitError of kind KindPanic. It must be deferred directly:
//
//	defer errors.Recover("term.App.Run", &err)
func Recover(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	de, ok := AsDuitError(r)
	if !ok {
		pe := &PanicError{Op: op, Value: r, StackTrace: CaptureStack(), Timestamp: time.Now()}
		ReportPanic(pe)
		de = &DuitError{Op: op, Kind: KindPanic, Err: pe, Timestamp: pe.Timestamp}
	}
	if errp != nil {
		*errp = de
	}
}

// AsDuitError extracts the *DuitError from a recovered panic value.
func AsDuitError(r any) (*DuitError, bool) {
	de, ok := r.(*DuitError)
	return de, ok
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame. Frames of this package are left out.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, "github.com/go-duit/duit/pkg/errors.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
