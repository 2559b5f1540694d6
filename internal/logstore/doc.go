// Package logstore persists formatted log records in SQLite and serves the
// query side of the logbook CLI. It exists for destinations where a flat file
// is not enough: records survive across runs, grouped by session.
package logstore
