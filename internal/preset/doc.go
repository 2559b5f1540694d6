// Package preset bundles a transformer and a sink into ready-to-use logging
// contexts for the common destinations: console, plain file, tabular file,
// and the SQLite record store.
//
// File-backed presets hand back a Handle whose Close flushes and releases the
// destination; callers own that shutdown and should defer it next to the
// constructor. An advisory lock beside the log file keeps two processes from
// interleaving records.
package preset
