// Package sqlite implements the inventory.Store contract on a SQLite
// database. Brand, model, year and price clauses are pushed into SQL so they
// ride the price index; the feature and body-style heuristics are applied
// via inventory.Filter.Matches on the scanned rows, keeping the predicate
// semantics identical across store implementations.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/dealerdesk/showroom/inventory"
)

const schema = `
CREATE TABLE IF NOT EXISTS vehicles (
    id TEXT PRIMARY KEY,
    make TEXT NOT NULL,
    model TEXT NOT NULL,
    year INTEGER NOT NULL,
    price REAL NOT NULL,
    features TEXT NOT NULL DEFAULT '[]',
    stock INTEGER NOT NULL DEFAULT 0,
    image TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_vehicles_price ON vehicles(price);
CREATE INDEX IF NOT EXISTS idx_vehicles_make ON vehicles(make);
`

// Store is a SQLite backed inventory store.
type Store struct {
	db *sql.DB
}

// Open creates or opens a vehicle database at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory vehicle database (useful for testing).
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Seed inserts or replaces the given vehicles.
func (s *Store) Seed(vehicles []inventory.Vehicle) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO vehicles
		(id, make, model, year, price, features, stock, image, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing seed statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range vehicles {
		features, err := json.Marshal(v.Features)
		if err != nil {
			return fmt.Errorf("encoding features for %s: %w", v.ID, err)
		}
		if _, err := stmt.Exec(v.ID, v.Make, v.Model, v.Year, v.Price, string(features), v.Stock, v.Image, v.Description); err != nil {
			return fmt.Errorf("inserting vehicle %s: %w", v.ID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored vehicles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vehicles").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting vehicles: %w", err)
	}
	return n, nil
}

// FetchVehicles implements inventory.Store. Infrastructure failures
// (cancelled context, dead connection) are wrapped in ErrUnavailable so the
// orchestrator can degrade instead of crashing the turn.
func (s *Store) FetchVehicles(ctx context.Context, f inventory.Filter, limit int) ([]inventory.Vehicle, error) {
	q, args := buildQuery(f)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", inventory.ErrUnavailable, err)
	}
	defer rows.Close()

	var matched []inventory.Vehicle
	for rows.Next() {
		var v inventory.Vehicle
		var features string
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Price, &features, &v.Stock, &v.Image, &v.Description); err != nil {
			return nil, fmt.Errorf("scanning vehicle row: %w", err)
		}
		if err := json.Unmarshal([]byte(features), &v.Features); err != nil {
			v.Features = nil
		}
		// SQL handles the scalar clauses; feature and body-style
		// heuristics are enforced here through the shared predicate.
		if !f.Matches(v) {
			continue
		}
		matched = append(matched, v)
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", inventory.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("iterating vehicle rows: %w", err)
	}
	return matched, nil
}

// buildQuery pushes the indexable clauses into SQL, ordered by price
// ascending per the store contract.
func buildQuery(f inventory.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Brand != "" {
		conds = append(conds, "LOWER(make) = LOWER(?)")
		args = append(args, f.Brand)
	}
	if f.Model != "" {
		conds = append(conds, "LOWER(model) LIKE '%' || LOWER(?) || '%'")
		args = append(args, f.Model)
	}
	if f.Year != 0 {
		conds = append(conds, "year = ?")
		args = append(args, f.Year)
	}
	if f.MinPrice != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.LuxuryFloor != nil {
		conds = append(conds, "price > ?")
		args = append(args, *f.LuxuryFloor)
	}

	q := "SELECT id, make, model, year, price, features, stock, image, description FROM vehicles"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY price ASC"
	return q, args
}
