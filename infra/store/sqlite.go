package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the dataset in a SQLite database, one table per entity
// with the record stored as JSON next to its id.
type SQLiteStore struct {
	db *sql.DB
}

var sqliteTables = []string{
	"divisions", "committee_types", "routes", "meetings", "events", "exception_dates",
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, table := range sqliteTables {
		schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
        id TEXT PRIMARY KEY,
        record TEXT NOT NULL
    );`, table)
		if _, err := db.Exec(schema); err != nil {
			if cerr := db.Close(); cerr != nil {
				return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
			}
			return nil, err
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the complete dataset.
func (s *SQLiteStore) Load(ctx context.Context) (Dataset, error) {
	var ds Dataset
	if err := loadTable(ctx, s.db, "divisions", &ds.Divisions); err != nil {
		return Dataset{}, err
	}
	if err := loadTable(ctx, s.db, "committee_types", &ds.CommitteeTypes); err != nil {
		return Dataset{}, err
	}
	if err := loadTable(ctx, s.db, "routes", &ds.Routes); err != nil {
		return Dataset{}, err
	}
	if err := loadTable(ctx, s.db, "meetings", &ds.Meetings); err != nil {
		return Dataset{}, err
	}
	if err := loadTable(ctx, s.db, "events", &ds.Events); err != nil {
		return Dataset{}, err
	}
	if err := loadTable(ctx, s.db, "exception_dates", &ds.Exceptions); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func loadTable[T any](ctx context.Context, db *sql.DB, table string, out *[]T) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT record FROM %s ORDER BY id`, table))
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return err
		}
		var rec T
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return fmt.Errorf("unmarshal %s record: %w", table, err)
		}
		*out = append(*out, rec)
	}
	return rows.Err()
}

// Seed replaces all tables with the given dataset in one transaction.
func (s *SQLiteStore) Seed(ctx context.Context, ds Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range sqliteTables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return err
		}
	}
	for _, dv := range ds.Divisions {
		if err := insert(ctx, tx, "divisions", dv.ID, dv); err != nil {
			return err
		}
	}
	for _, ct := range ds.CommitteeTypes {
		if err := insert(ctx, tx, "committee_types", ct.ID, ct); err != nil {
			return err
		}
	}
	for _, r := range ds.Routes {
		if err := insert(ctx, tx, "routes", r.ID, r); err != nil {
			return err
		}
	}
	for _, m := range ds.Meetings {
		if err := insert(ctx, tx, "meetings", m.ID, m); err != nil {
			return err
		}
	}
	for _, ev := range ds.Events {
		if err := insert(ctx, tx, "events", ev.ID, ev); err != nil {
			return err
		}
	}
	for _, ex := range ds.Exceptions {
		if err := insert(ctx, tx, "exception_dates", ex.Date.Format("2006-01-02"), ex); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insert(ctx context.Context, tx *sql.Tx, table, id string, rec any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, record) VALUES (?, ?)`, table), id, string(b))
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
