package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"
)

// MessageCapacity bounds both the interpolated message and the final record.
// Content beyond the capacity is silently truncated, never rejected. The cut
// is made at the byte level, so a multi-byte rune straddling the boundary
// loses its tail.
const MessageCapacity = 2048

// Log validates, filters, formats, and delivers one message. The severity
// must lie within the eight defined ranks and file and format must be
// non-empty; violations are reported on the diagnostics writer and the call
// returns without side effects. Messages ranked numerically above the
// threshold, or arriving while the Context is inactive, are dropped silently.
func (c *Context) Log(severity Severity, file string, line int, format string, args ...any) {
	if !severity.Valid() || file == "" || format == "" {
		c.reportf("could not log message: empty arguments or severity outside ranks")
		return
	}

	c.mu.Lock()
	// Capabilities are checked directly rather than via the full setup
	// invariant: SetLevel accepts thresholds beyond Debug, and those must
	// pass every rank, not disable dispatch.
	deliver := c.active && severity <= c.level && c.sink != nil && c.transform != nil
	sink := c.sink
	transform := c.transform
	c.mu.Unlock()
	if !deliver {
		return
	}

	message := fmt.Sprintf(format, args...)
	if len(message) > MessageCapacity {
		message = message[:MessageCapacity]
	}

	record, err := transform.Transform(time.Now(), severity, file, line, message)
	if err != nil {
		c.reportf("could not log message: %v", err)
		return
	}
	if len(record) > MessageCapacity {
		record = record[:MessageCapacity]
	}

	if err := sink.Push(record); err != nil {
		c.reportf("could not log message: %v", err)
	}
}

// Shorthand call sites, one per rank. Each captures the calling source
// location and forwards to Log.

func (c *Context) Emergency(format string, args ...any) {
	file, line := caller()
	c.Log(Emergency, file, line, format, args...)
}

func (c *Context) Alert(format string, args ...any) {
	file, line := caller()
	c.Log(Alert, file, line, format, args...)
}

func (c *Context) Critical(format string, args ...any) {
	file, line := caller()
	c.Log(Critical, file, line, format, args...)
}

func (c *Context) Error(format string, args ...any) {
	file, line := caller()
	c.Log(Error, file, line, format, args...)
}

func (c *Context) Warning(format string, args ...any) {
	file, line := caller()
	c.Log(Warning, file, line, format, args...)
}

func (c *Context) Notice(format string, args ...any) {
	file, line := caller()
	c.Log(Notice, file, line, format, args...)
}

func (c *Context) Info(format string, args ...any) {
	file, line := caller()
	c.Log(Info, file, line, format, args...)
}

func (c *Context) Debug(format string, args ...any) {
	file, line := caller()
	c.Log(Debug, file, line, format, args...)
}

func caller() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
