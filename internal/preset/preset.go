package preset

import (
	"os"

	"logbook/internal/logger"
)

// Console configures a context that writes human-readable records to the
// process's standard output.
func Console(level logger.Severity) (*logger.Context, error) {
	return logger.New(level, logger.NewWriterSink(os.Stdout), logger.HumanReadable{})
}

// File configures a context that writes human-readable records to path,
// truncating any existing content. The returned Handle owns the destination;
// close it to flush and release the file.
func File(level logger.Severity, path string) (*Handle, error) {
	return openHandle(level, path, logger.HumanReadable{})
}

// Tabular is built atop File: same destination handling, but records are
// comma-separated and the column header is written exactly once, here.
func Tabular(level logger.Severity, path string) (*Handle, error) {
	handle, err := openHandle(level, path, logger.Tabular{})
	if err != nil {
		return nil, err
	}
	if err := handle.Push(logger.TabularHeader); err != nil {
		_ = handle.Close()
		return nil, err
	}
	return handle, nil
}
