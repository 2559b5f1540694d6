package preset

import (
	"fmt"

	"logbook/internal/logger"
	"logbook/internal/logstore"
)

// StoreHandle owns a SQLite-backed logging destination.
type StoreHandle struct {
	ctx   *logger.Context
	store *logstore.Store
}

// Store configures a context that delivers tabular records into the SQLite
// store at dbPath. Each call starts a fresh session.
func Store(level logger.Severity, dbPath string) (*StoreHandle, error) {
	store, err := logstore.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", logger.ErrSinkOpen, err)
	}
	ctx, err := logger.New(level, store, logger.Tabular{})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &StoreHandle{ctx: ctx, store: store}, nil
}

// Context returns the configured logging context.
func (h *StoreHandle) Context() *logger.Context {
	return h.ctx
}

// Store exposes the query side of the destination.
func (h *StoreHandle) Store() *logstore.Store {
	return h.store
}

// Close closes the database connection.
func (h *StoreHandle) Close() error {
	return h.store.Close()
}
