package logger

import "errors"

// Sentinel errors tag the failure classes callers can branch on with
// errors.Is. Configuration failures are returned to the caller; transform and
// delivery failures stay inside dispatch and only surface on the diagnostics
// writer.
var (
	ErrConfig    = errors.New("logger configuration error")
	ErrSinkOpen  = errors.New("sink open error")
	ErrTransform = errors.New("transform failure")
	ErrDelivery  = errors.New("delivery failure")
)
