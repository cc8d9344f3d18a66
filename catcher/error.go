package catcher

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
)

// ErrPanicked is matched by every *Error via errors.Is.
var ErrPanicked = errors.New("panic recovered")

// Code categorizes the value a guarded callable panicked with.
type Code int

const (
	CodeUnknown Code = iota
	CodeException
	CodeRuntime
	CodeError
	CodeValue
)

func (c Code) String() string {
	switch c {
	case CodeException:
		return "exception"
	case CodeRuntime:
		return "runtime"
	case CodeError:
		return "error"
	case CodeValue:
		return "value"
	}
	return "unknown"
}

// Error is the structured form of a recovered panic.
type Error struct {
	Domain string
	Code   Code
	Name   string
	Reason string

	cause error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// newError must be called from the deferred recover so the captured stack
// still contains the panicking frames. Text is taken through fmt, which
// survives Error and String methods that panic or have nil receivers.
func newError(domain string, v any) *Error {
	e := &Error{Domain: domain, Name: fmt.Sprintf("%T", v)}
	switch x := v.(type) {
	case *Exception:
		e.Code = CodeException
		if x == nil {
			e.Reason = "<nil>"
		} else {
			e.Name, e.Reason = x.Name, x.Reason
		}
		e.cause = errors.WithStack(x)
	case Exception:
		e.Code, e.Name, e.Reason = CodeException, x.Name, x.Reason
		e.cause = errors.WithStack(&x)
	case runtime.Error:
		e.Code, e.Reason = CodeRuntime, fmt.Sprint(x)
		e.cause = errors.WithStack(x)
	case error:
		e.Code, e.Reason = CodeError, fmt.Sprint(x)
		e.cause = errors.WithStack(x)
	default:
		e.Code, e.Reason = CodeValue, fmt.Sprint(x)
		e.cause = errors.New(e.Reason)
	}
	return e
}

func (e *Error) Error() string {
	if e.Name == "" {
		return e.Domain + ": " + e.Reason
	}
	return e.Domain + ": " + e.Name + ": " + e.Reason
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Cause() error { return e.cause }

func (e *Error) Is(target error) bool { return target == ErrPanicked }

// StackTrace returns the stack recorded when the panic was recovered.
func (e *Error) StackTrace() errors.StackTrace {
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			e.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// UserInfo is the dictionary handed across to the bridge layer.
func (e *Error) UserInfo() map[string]any {
	return map[string]any{
		"domain":   e.Domain,
		"code":     int(e.Code),
		"codeName": e.Code.String(),
		"name":     e.Name,
		"reason":   e.Reason,
		"stack":    fmt.Sprintf("%+v", e.StackTrace()),
	}
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.UserInfo())
}
