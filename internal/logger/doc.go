// Package logger implements the severity-filtered dispatch engine at the
// heart of logbook.
//
// A Context pairs a severity threshold and an on/off switch with two injected
// capabilities: a Transformer that shapes the final record and a Sink that
// delivers it. Dispatch validates and filters each call, interpolates the
// message into a bounded buffer, and hands the result through the transformer
// to the sink. Dispatch-time failures never reach the calling application;
// they are reported on a best-effort diagnostics writer instead.
//
// Prefer the preset constructors in internal/preset over wiring a Context by
// hand so destinations share the same record shapes and shutdown behavior.
package logger
