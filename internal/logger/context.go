package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Context is the logging engine. It holds the active severity threshold, the
// on/off switch, and the sink/transformer pair every dispatched record flows
// through.
//
// A zero Context is invalid and drops every message; Setup is the only
// transition to a usable state. All methods are safe for concurrent use: a
// single mutex guards every read and mutation so dispatch always observes a
// consistent threshold/active/sink/transformer tuple.
type Context struct {
	mu        sync.Mutex
	level     Severity
	active    bool
	sink      Sink
	transform Transformer
	diag      io.Writer
}

// New constructs an active Context via Setup.
func New(level Severity, sink Sink, transform Transformer) (*Context, error) {
	ctx := &Context{}
	if err := ctx.Setup(level, sink, transform, true); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Setup replaces the threshold, both capabilities, and the active flag as one
// unit. It rejects an out-of-range threshold or a missing capability before
// touching any field, so a failed call leaves the Context exactly as it was.
func (c *Context) Setup(level Severity, sink Sink, transform Transformer, active bool) error {
	if !level.Valid() {
		return fmt.Errorf("%w: severity %d outside %d..%d", ErrConfig, int(level), int(Emergency), int(Debug))
	}
	if sink == nil || transform == nil {
		return fmt.Errorf("%w: sink and transformer are required", ErrConfig)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
	c.sink = sink
	c.transform = transform
	c.active = active
	return nil
}

// SetSink replaces the delivery capability on an already configured Context.
func (c *Context) SetSink(sink Sink) error {
	if sink == nil {
		return fmt.Errorf("%w: nil sink", ErrConfig)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initializedLocked() {
		return fmt.Errorf("%w: context not set up", ErrConfig)
	}
	c.sink = sink
	return nil
}

// SetTransform replaces the record-shaping capability on an already
// configured Context.
func (c *Context) SetTransform(transform Transformer) error {
	if transform == nil {
		return fmt.Errorf("%w: nil transformer", ErrConfig)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initializedLocked() {
		return fmt.Errorf("%w: context not set up", ErrConfig)
	}
	c.transform = transform
	return nil
}

// SetLevel replaces the severity threshold and reports whether it changed.
// Only negative values are rejected; thresholds beyond Debug are accepted and
// simply let every rank through.
func (c *Context) SetLevel(level Severity) (bool, error) {
	if level < Emergency {
		return false, fmt.Errorf("%w: negative severity %d", ErrConfig, int(level))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if level == c.level {
		return false, nil
	}
	c.level = level
	return true, nil
}

// Level returns the current severity threshold.
func (c *Context) Level() Severity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// Toggle switches dispatch on or off. Setting the current value is a no-op;
// there is no failure mode.
func (c *Context) Toggle(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = active
}

// Active reports whether dispatch currently delivers messages.
func (c *Context) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Initialized re-checks the setup invariant: both capabilities present and
// the threshold within range. It never mutates state.
func (c *Context) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initializedLocked()
}

func (c *Context) initializedLocked() bool {
	return c.sink != nil && c.transform != nil && c.level.Valid()
}

// SetDiagnostics redirects dispatch-failure reporting, which defaults to
// stderr. Passing nil restores the default.
func (c *Context) SetDiagnostics(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diag = w
}

// reportf writes a best-effort diagnostic line. Dispatch failures are never
// surfaced to the calling application.
func (c *Context) reportf(format string, args ...any) {
	c.mu.Lock()
	diag := c.diag
	c.mu.Unlock()
	if diag == nil {
		diag = os.Stderr
	}
	fmt.Fprintf(diag, "logbook: "+format+"\n", args...)
}
