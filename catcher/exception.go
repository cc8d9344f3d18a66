package catcher

import "fmt"

// Exception is a named panic value. Native code panics with it through Throw
// so the recovered Error keeps a meaningful Name.
type Exception struct {
	Name   string
	Reason string
}

func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Name == "" {
		return e.Reason
	}
	return e.Name + ": " + e.Reason
}

// Throw panics with an *Exception.
func Throw(name, format string, args ...any) {
	panic(&Exception{
		Name:   name,
		Reason: fmt.Sprintf(format, args...),
	})
}
