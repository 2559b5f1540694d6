// Package main hosts the logbook CLI entrypoint and command graph.
//
// The Cobra-based command tree is the read side of the logging system: it
// renders tabular log files as tables, lists sessions and records from the
// SQLite store, and scaffolds configuration. It never drives the dispatcher
// itself; producing log records is the job of the library packages under
// internal/.
package main
