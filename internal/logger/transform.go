package logger

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// Transformer converts a raw interpolated message plus its call metadata into
// the final record handed to the sink.
type Transformer interface {
	Transform(ts time.Time, severity Severity, file string, line int, message string) (string, error)
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(ts time.Time, severity Severity, file string, line int, message string) (string, error)

func (f TransformerFunc) Transform(ts time.Time, severity Severity, file string, line int, message string) (string, error) {
	return f(ts, severity, file, line, message)
}

// HumanReadable renders records as
//
//	<locale timestamp> <SEVERITY padded to 10> <file>:<line> - <message>\n
//
// The timestamp uses the strftime %c representation of the local time.
type HumanReadable struct{}

func (HumanReadable) Transform(ts time.Time, severity Severity, file string, line int, message string) (string, error) {
	if err := checkTransformInput(severity, file, message); err != nil {
		return "", err
	}
	stamp := strftime.Format("%c", ts.Local())
	if stamp == "" {
		return "", fmt.Errorf("%w: could not format timestamp", ErrTransform)
	}
	return fmt.Sprintf("%s %-10s %s:%d - %s\n", stamp, severity.Label(), file, line, message), nil
}

// TabularHeader is the column header a tabular destination carries exactly
// once, written when the destination is created rather than per record.
const TabularHeader = "timestamp,priority,filename,linenumber,message\n"

// Tabular renders one comma-separated record per message:
//
//	<unix timestamp>,<severity>,<file>,<line>,<message>\n
type Tabular struct{}

func (Tabular) Transform(ts time.Time, severity Severity, file string, line int, message string) (string, error) {
	if err := checkTransformInput(severity, file, message); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d,%s,%s,%d,%s\n", ts.Unix(), severity, file, line, message), nil
}

func checkTransformInput(severity Severity, file, message string) error {
	if !severity.Valid() {
		return fmt.Errorf("%w: severity %d outside %d..%d", ErrTransform, int(severity), int(Emergency), int(Debug))
	}
	if file == "" || message == "" {
		return fmt.Errorf("%w: missing source file or message", ErrTransform)
	}
	return nil
}
