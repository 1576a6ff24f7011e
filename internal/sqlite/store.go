// Package sqlite runs queries against a SQLite database and scans result
// rows through variants bound to arena slots.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
	"github.com/mesh-intelligence/binder/pkg/variant"
)

// Store lifecycle and query errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrColumnCount     = errors.New("kind count does not match column count")
)

// Store wraps one SQLite database.
type Store struct {
	mu       sync.RWMutex
	attached bool
	path     string
	db       *sql.DB
}

// NewStore creates a detached store. Call Attach to open a database.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the database at path, creating its directory if needed.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases alive across statements.
	db.SetMaxOpenConns(1)

	s.db = db
	s.path = path
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	return s.db.Close()
}

// Path returns the attached database path.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, ErrDetached
	}
	return s.db, nil
}

// Exec runs a statement and returns the number of affected rows. Variants
// are valid arguments.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	return res.RowsAffected()
}

// Result holds query rows scanned into slots of Arena.
type Result struct {
	Arena   *slot.Arena
	Columns []string
	Rows    [][]variant.Variant
}

// Free releases every slot of the result. Variants taken from Rows report
// ErrStale afterwards.
func (r *Result) Free() error {
	var errs []error
	for _, row := range r.Rows {
		for _, v := range row {
			if h, ok := v.Location().(slot.Handle); ok {
				if err := r.Arena.Free(h); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Query runs query and scans column i of every row into a fresh slot of
// kinds[i]. Returns ErrColumnCount if len(kinds) differs from the number of
// result columns.
func (s *Store) Query(ctx context.Context, kinds []types.Kind, query string, args ...any) (*Result, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	if len(cols) != len(kinds) {
		return nil, fmt.Errorf("%w: %d kinds, %d columns", ErrColumnCount, len(kinds), len(cols))
	}

	res := &Result{Arena: slot.New(), Columns: cols}
	for rows.Next() {
		row := make([]variant.Variant, len(kinds))
		dest := make([]any, len(kinds))
		for i, k := range kinds {
			h, err := res.Arena.Alloc(k)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", cols[i], err)
			}
			if row[i], err = variant.BindSlot(res.Arena, h); err != nil {
				return nil, fmt.Errorf("column %s: %w", cols[i], err)
			}
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(res.Rows)+1, err)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return res, nil
}
