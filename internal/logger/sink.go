package logger

import (
	"fmt"
	"io"
)

// Sink delivers a fully formatted record to its destination. A nil error
// means the record was delivered; anything else counts as a delivery failure
// and the record is considered lost.
type Sink interface {
	Push(message string) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(message string) error

func (f SinkFunc) Push(message string) error { return f(message) }

// WriterSink adapts an io.Writer to the Sink contract. It performs no
// buffering of its own; the wrapped writer decides when bytes hit the
// destination.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Push(message string) error {
	if s == nil || s.w == nil {
		return fmt.Errorf("%w: writer sink has no destination", ErrDelivery)
	}
	if _, err := io.WriteString(s.w, message); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}
