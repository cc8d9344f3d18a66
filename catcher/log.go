package catcher

// Logger receives a Catcher's diagnostics. Every recovered panic produces one
// Error line followed by a Dump of its stack.
type Logger interface {
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Debug(format string, args ...any)
	Dump(dumped []byte, format string, args ...any)
}

// SetLogger installs logger. It must not be called concurrently with Try.
func (c *Catcher) SetLogger(logger Logger) {
	c.logger = logger
}

func (c *Catcher) error(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}

func (c *Catcher) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Catcher) dump(msg string, data []byte, args ...any) {
	if c.logger != nil {
		c.logger.Dump(data, msg, args...)
	}
}
