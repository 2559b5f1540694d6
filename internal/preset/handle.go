package preset

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"logbook/internal/logger"
)

// Handle owns a file-backed logging destination. It is the sink its Context
// delivers into and the explicit shutdown hook for the open file: Close
// flushes buffered records, closes the file, and releases the advisory lock.
type Handle struct {
	ctx  *logger.Context
	path string
	lock *flock.Flock

	mu     sync.Mutex
	file   *os.File
	buf    *bufio.Writer
	closed bool
}

func openHandle(level logger.Severity, path string, transform logger.Transformer) (*Handle, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty log path", logger.ErrSinkOpen)
	}

	lock := flock.New(trimmed + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: lock %s: %v", logger.ErrSinkOpen, trimmed, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s is held by another process", logger.ErrSinkOpen, trimmed)
	}

	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o664)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: open %s: %v", logger.ErrSinkOpen, trimmed, err)
	}

	handle := &Handle{
		path: trimmed,
		lock: lock,
		file: file,
		buf:  bufio.NewWriter(file),
	}
	ctx, err := logger.New(level, handle, transform)
	if err != nil {
		_ = handle.Close()
		return nil, err
	}
	handle.ctx = ctx
	return handle, nil
}

// Context returns the configured logging context.
func (h *Handle) Context() *logger.Context {
	return h.ctx
}

// Path returns the destination file location.
func (h *Handle) Path() string {
	return h.path
}

// Push writes one formatted record to the buffered destination, satisfying
// the sink contract.
func (h *Handle) Push(message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return fmt.Errorf("%w: destination %s is closed", logger.ErrDelivery, h.path)
	}
	if _, err := h.buf.WriteString(message); err != nil {
		return fmt.Errorf("%w: %v", logger.ErrDelivery, err)
	}
	return nil
}

// Close flushes buffered records, closes the file, and releases the lock.
// It is safe to call more than once.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	var firstErr error
	if err := h.buf.Flush(); err != nil {
		firstErr = fmt.Errorf("flush %s: %w", h.path, err)
	}
	if err := h.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close %s: %w", h.path, err)
	}
	if err := h.lock.Unlock(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("unlock %s: %w", h.path, err)
	}
	return firstErr
}
