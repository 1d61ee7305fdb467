package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/qattan/daily-post-bot/internal/domain"
)

// Schema fixes the identifiers a RecordStore compiles into its statements.
// Table and column names are declared once at construction, by the
// repository that owns the table, and never come from user input; values
// always travel as bound parameters.
type Schema struct {
	Table        string
	KeyColumns   []string
	ValueColumns []string
	// Defaults are returned, in ValueColumns order, when a read finds no
	// row or cannot reach the backend. Must match ValueColumns in length.
	Defaults []any
}

// Lookup is the result of RecordStore.Get. Values always has one entry per
// value column, either scanned from the row or copied from the defaults.
type Lookup struct {
	Status domain.LookupStatus
	Values []any
}

// RecordStore is a generic key/value store over one table: get, upsert and
// delete keyed by the schema's composite key. Statements are assembled once
// from the fixed schema; every operation borrows a pooled connection and
// releases it on all exit paths.
type RecordStore struct {
	db         dbConn
	schema     Schema
	selectStmt string
	upsertStmt string
	deleteStmt string
}

func NewRecordStore(db dbConn, schema Schema) *RecordStore {
	if len(schema.Defaults) != len(schema.ValueColumns) {
		panic(fmt.Sprintf("recordstore %s: %d defaults for %d value columns",
			schema.Table, len(schema.Defaults), len(schema.ValueColumns)))
	}

	keyMatch := make([]string, len(schema.KeyColumns))
	for i, col := range schema.KeyColumns {
		keyMatch[i] = col + " = ?"
	}
	where := strings.Join(keyMatch, " AND ")

	allColumns := append(append([]string{}, schema.KeyColumns...), schema.ValueColumns...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(allColumns)), ", ")
	assignments := make([]string, len(schema.ValueColumns))
	for i, col := range schema.ValueColumns {
		assignments[i] = col + " = excluded." + col
	}

	return &RecordStore{
		db:     db,
		schema: schema,
		selectStmt: fmt.Sprintf("SELECT %s FROM %s WHERE %s",
			strings.Join(schema.ValueColumns, ", "), schema.Table, where),
		upsertStmt: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) DO UPDATE SET %s",
			schema.Table, strings.Join(allColumns, ", "), placeholders,
			strings.Join(schema.KeyColumns, ", "), strings.Join(assignments, ", ")),
		deleteStmt: fmt.Sprintf("DELETE FROM %s WHERE %s", schema.Table, where),
	}
}

// Get looks up the value columns for the given composite key. It never
// returns an error: a missing row yields the defaults with LookupNotFound,
// a backend failure yields the defaults with LookupUnavailable. Callers
// that must not confuse "never configured" with "backend down" check the
// status; everyone else just uses the values.
func (s *RecordStore) Get(key ...any) Lookup {
	values := make([]any, len(s.schema.ValueColumns))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	err := s.db.QueryRow(s.selectStmt, key...).Scan(dest...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Lookup{Status: domain.LookupNotFound, Values: s.defaults()}
	case err != nil:
		return Lookup{Status: domain.LookupUnavailable, Values: s.defaults()}
	}

	return Lookup{Status: domain.LookupFound, Values: values}
}

// Upsert inserts or replaces the row for the composite key. Unlike reads,
// write failures are propagated.
func (s *RecordStore) Upsert(key []any, values []any) error {
	if len(key) != len(s.schema.KeyColumns) || len(values) != len(s.schema.ValueColumns) {
		return fmt.Errorf("recordstore %s: got %d key and %d value arguments, want %d and %d",
			s.schema.Table, len(key), len(values), len(s.schema.KeyColumns), len(s.schema.ValueColumns))
	}

	args := append(append([]any{}, key...), values...)
	if _, err := s.db.Exec(s.upsertStmt, args...); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", s.schema.Table, err)
	}

	return nil
}

// Delete removes the row for the composite key. A missing row is a no-op.
func (s *RecordStore) Delete(key ...any) error {
	if _, err := s.db.Exec(s.deleteStmt, key...); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", s.schema.Table, err)
	}

	return nil
}

func (s *RecordStore) defaults() []any {
	return append([]any{}, s.schema.Defaults...)
}
