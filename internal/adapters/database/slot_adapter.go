package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"github.com/dentaltrack/backend/internal/domain/providers"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

const slotTable = "slots"

// slot_key is TEXT and payload is TEXT in both dialects, so one DDL serves
// postgres and sqlite alike
const createSlotTableSQL = `
CREATE TABLE IF NOT EXISTS slots (
	slot_key TEXT PRIMARY KEY,
	payload  TEXT NOT NULL
)`

// SlotAdapter implements the SlotStore provider on a SQL database. Each
// collection occupies one row keyed by collection name, the payload being the
// serialized array, mirroring the one-key-per-collection layout used by the
// other backends.
type SlotAdapter struct {
	db      *sql.DB
	builder *goqu.Database
	closer  func() error
}

// NewSlotAdapter creates a SQL slot store on db using the given goqu dialect
// ("postgres" or "sqlite3") and ensures the slots table exists. closer is
// invoked on Close and may be nil.
func NewSlotAdapter(ctx context.Context, db *sql.DB, dialect string, closer func() error) (*SlotAdapter, error) {
	if _, err := db.ExecContext(ctx, createSlotTableSQL); err != nil {
		return nil, apperrors.NewStorageError("failed to create slots table", err)
	}
	return &SlotAdapter{
		db:      db,
		builder: goqu.New(dialect, db),
		closer:  closer,
	}, nil
}

var _ providers.SlotStore = (*SlotAdapter)(nil)

// Read returns the payload stored under key; ok is false when no row exists
func (a *SlotAdapter) Read(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := a.builder.Select("payload").
		From(slotTable).
		Where(goqu.Ex{"slot_key": key}).
		ToSQL()
	if err != nil {
		return nil, false, apperrors.NewInternalError("failed to build slot query", err)
	}

	var payload string
	if err := a.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStorageError("failed to read slot "+key, err)
	}
	return []byte(payload), true, nil
}

// Write upserts the payload under key
func (a *SlotAdapter) Write(ctx context.Context, key string, payload []byte) error {
	query, args, err := a.builder.Insert(slotTable).
		Rows(goqu.Record{"slot_key": key, "payload": string(payload)}).
		OnConflict(goqu.DoUpdate("slot_key", goqu.Record{"payload": string(payload)})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build slot upsert", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewStorageError("failed to write slot "+key, err)
	}
	return nil
}

// Delete removes the row for key; deleting a missing slot is not an error
func (a *SlotAdapter) Delete(ctx context.Context, key string) error {
	query, args, err := a.builder.Delete(slotTable).
		Where(goqu.Ex{"slot_key": key}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build slot delete", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewStorageError("failed to delete slot "+key, err)
	}
	return nil
}

// Close releases the underlying client
func (a *SlotAdapter) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
