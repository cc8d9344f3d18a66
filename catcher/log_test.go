package catcher

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordLogger struct {
	mu     sync.Mutex
	levels []string
	lines  []string
	dumps  [][]byte
}

func (l *recordLogger) log(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, level)
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Info(format string, args ...any)    { l.log("INFO", format, args...) }
func (l *recordLogger) Warning(format string, args ...any) { l.log("WARNING", format, args...) }
func (l *recordLogger) Error(format string, args ...any)   { l.log("ERROR", format, args...) }
func (l *recordLogger) Debug(format string, args ...any)   { l.log("DEBUG", format, args...) }

func (l *recordLogger) Dump(dumped []byte, format string, args ...any) {
	l.log("DUMP", format, args...)
	l.mu.Lock()
	l.dumps = append(l.dumps, dumped)
	l.mu.Unlock()
}

func TestLoggerOnRecover(t *testing.T) {
	l := new(recordLogger)
	c := NewCatcher()
	c.SetLogger(l)

	c.Try(func() {}, nil)
	assert.Empty(t, l.levels)

	c.Try(func() { Throw("Foo", "bad index") }, nil)
	assert.Equal(t, []string{"ERROR", "DUMP"}, l.levels)
	assert.Equal(t, "panic recovered in "+DefaultDomain+": "+DefaultDomain+": Foo: bad index", l.lines[0])
	assert.Equal(t, "panic stack of Foo", l.lines[1])
	assert.Len(t, l.dumps, 1)
	assert.Contains(t, string(l.dumps[0]), "log_test.go")
}

func TestLoggerNilCallable(t *testing.T) {
	l := new(recordLogger)
	c := NewCatcher()
	c.SetLogger(l)
	assert.NoError(t, c.Catch(nil))
	assert.Equal(t, []string{"DEBUG"}, l.levels)

	c.SetLogger(nil)
	assert.NoError(t, c.Catch(nil))
	assert.NotPanics(t, func() { c.Catch(func() { panic("quiet") }) })
	assert.Len(t, l.levels, 1)
}
