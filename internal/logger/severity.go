package logger

import (
	"fmt"
	"strings"
)

// Severity ranks the importance of a log message. Lower values are more
// severe, matching the syslog ordering: Emergency is rank 0, Debug rank 7.
type Severity int

const (
	Emergency Severity = iota
	Alert
	Critical
	Error
	Warning
	Notice
	Info
	Debug
)

var severityLabels = [...]string{
	"EMERGENCY",
	"ALERT",
	"CRITICAL",
	"ERROR",
	"WARNING",
	"NOTICE",
	"INFO",
	"DEBUG",
}

var severityNames = [...]string{
	"emergency",
	"alert",
	"critical",
	"error",
	"warning",
	"notice",
	"info",
	"debug",
}

// Valid reports whether s lies within the eight defined ranks.
func (s Severity) Valid() bool {
	return s >= Emergency && s <= Debug
}

// Label returns the uppercase severity name used by human-readable records.
func (s Severity) Label() string {
	if !s.Valid() {
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
	return severityLabels[s]
}

func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity maps a severity name to its rank. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseSeverity(value string) (Severity, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for rank, name := range severityNames {
		if name == needle {
			return Severity(rank), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown severity %q", ErrConfig, value)
}
