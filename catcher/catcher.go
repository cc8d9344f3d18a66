// Package catcher runs a function behind a recover boundary and turns any
// panic it raises into a structured *Error instead of crashing the process.
package catcher

import (
	"fmt"
	"runtime"
	"time"
)

const DefaultDomain = "nativeguard.catcher"

// Catcher guards calls into code that may panic. The zero value is usable.
//
// Domain and ClearOnSuccess are read on every call and must be set before the
// catcher is shared between goroutines.
type Catcher struct {
	// Domain is stamped on every Error. Empty means DefaultDomain.
	Domain string
	// ClearOnSuccess makes Try store nil into the error slot when the call
	// succeeds. Otherwise the slot is left as it was.
	ClearOnSuccess bool

	stat   Statistics
	logger Logger
}

var std = NewCatcher()

func NewCatcher() *Catcher {
	return &Catcher{Domain: DefaultDomain}
}

// Default returns the catcher used by the package level Try and Catch.
func Default() *Catcher {
	return std
}

// Try calls fn exactly once on the calling goroutine. It returns true if fn
// returned normally. If fn panicked, the panic is recovered, converted into an
// *Error, stored into *errp when errp is non-nil, and Try returns false.
//
// fn is not retained after Try returns. A nil fn panics.
func Try(fn func(), errp *error) bool {
	return std.Try(fn, errp)
}

// Catch is like Try but returns the *Error directly, or nil on success.
func Catch(fn func()) error {
	return std.Catch(fn)
}

func (c *Catcher) Try(fn func(), errp *error) bool {
	if fn == nil {
		panic("catcher: nil callable")
	}
	if err := c.run(fn); err != nil {
		if errp != nil {
			*errp = err
		}
		return false
	}
	if c.ClearOnSuccess && errp != nil {
		*errp = nil
	}
	return true
}

// Catch returns nil for a nil fn.
func (c *Catcher) Catch(fn func()) error {
	if fn == nil {
		c.debug("catch called with nil callable")
		return nil
	}
	if err := c.run(fn); err != nil {
		return err
	}
	return nil
}

// run treats any exit of fn other than a normal return as a panic. This
// covers panic(nil) under GODEBUG=panicnil=1, where recover returns nil.
// runtime.Goexit takes the same path, but the goroutine still exits and the
// caller never sees the result.
func (c *Catcher) run(fn func()) (err *Error) {
	c.stat.Calls.Inc()
	returned := false
	defer func() {
		pan := recover()
		if returned {
			return
		}
		if pan == nil {
			pan = new(runtime.PanicNilError)
		}
		err = newError(c.domain(), pan)
		c.stat.Recovered.Inc()
		c.stat.LastRecoveredTime.Store(time.Now().Unix())
		c.error("panic recovered in %s: %v", err.Domain, err)
		c.dump("panic stack of %v", []byte(fmt.Sprintf("%+v", err.StackTrace())), err.Name)
	}()
	fn()
	returned = true
	c.stat.Succeeded.Inc()
	return nil
}

func (c *Catcher) domain() string {
	if c.Domain == "" {
		return DefaultDomain
	}
	return c.Domain
}
