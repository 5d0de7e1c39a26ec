/*
Package sqlite provides the SQLite-backed record store.

PURPOSE:
  Persists the entities the computation engine treats as already-resolved
  snapshots: establishments, employees, wage orders, holidays, and the
  per-employee violation document. The engine itself never touches this
  package; handlers load snapshots here and pass them in.

VIOLATION DOCUMENTS:
  One JSON document per employee, replaced wholesale (delete + insert in a
  transaction) whenever the owning screen saves. The document is never
  patched field by field; the blob the caller stored is the blob it gets
  back.

WAL MODE:
  SQLite is opened with WAL for better concurrency: readers don't block
  and crash recovery is cheap.

SEE ALSO:
  - wage/types.go: the entities stored here
  - api/handlers.go: the only consumer
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/shopspring/decimal"
)

// Store implements the record store over SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS establishments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		size TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		establishment_id TEXT NOT NULL REFERENCES establishments(id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		rate TEXT NOT NULL,
		start_day TEXT NOT NULL,
		end_day TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_establishment
		ON employees(establishment_id);

	CREATE TABLE IF NOT EXISTS wage_orders (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		effective_date TEXT NOT NULL,
		less_than_ten TEXT NOT NULL,
		ten_or_more TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_wage_orders_date
		ON wage_orders(effective_date);

	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL
	);

	-- One violation document per employee, replaced wholesale.
	CREATE TABLE IF NOT EXISTS violations (
		employee_id TEXT PRIMARY KEY REFERENCES employees(id) ON DELETE CASCADE,
		document TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ESTABLISHMENTS
// =============================================================================

func (s *Store) CreateEstablishment(ctx context.Context, e wage.Establishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO establishments (id, name, size) VALUES (?, ?, ?)`,
		e.ID, e.Name, string(e.Size))
	if err != nil {
		return fmt.Errorf("failed to create establishment: %w", err)
	}
	return nil
}

func (s *Store) UpdateEstablishment(ctx context.Context, e wage.Establishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`UPDATE establishments SET name = ?, size = ? WHERE id = ?`,
		e.Name, string(e.Size), e.ID)
	if err != nil {
		return fmt.Errorf("failed to update establishment: %w", err)
	}
	return nil
}

func (s *Store) DeleteEstablishment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM establishments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete establishment: %w", err)
	}
	return nil
}

// GetEstablishment returns nil when the id is unknown.
func (s *Store) GetEstablishment(ctx context.Context, id string) (*wage.Establishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e wage.Establishment
	var size string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, size FROM establishments WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get establishment: %w", err)
	}
	e.Size = wage.Size(size)
	return &e, nil
}

func (s *Store) ListEstablishments(ctx context.Context) ([]wage.Establishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, size FROM establishments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list establishments: %w", err)
	}
	defer rows.Close()

	var out []wage.Establishment
	for rows.Next() {
		var e wage.Establishment
		var size string
		if err := rows.Scan(&e.ID, &e.Name, &size); err != nil {
			return nil, err
		}
		e.Size = wage.Size(size)
		out = append(out, e)
	}
	return out, rows.Err()
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) CreateEmployee(ctx context.Context, e wage.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (id, establishment_id, first_name, last_name, rate, start_day, end_day)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.EstablishmentID, e.FirstName, e.LastName, e.Rate.String(), e.StartDay, e.EndDay)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e wage.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, rate = ?, start_day = ?, end_day = ?
		 WHERE id = ?`,
		e.FirstName, e.LastName, e.Rate.String(), e.StartDay, e.EndDay, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*wage.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, establishment_id, first_name, last_name, rate, start_day, end_day
		 FROM employees WHERE id = ?`, id)

	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &e, nil
}

func (s *Store) ListEmployees(ctx context.Context, establishmentID string) ([]wage.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, establishment_id, first_name, last_name, rate, start_day, end_day
		 FROM employees WHERE establishment_id = ? ORDER BY last_name, first_name`,
		establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []wage.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (wage.Employee, error) {
	var e wage.Employee
	var rate string
	if err := row.Scan(&e.ID, &e.EstablishmentID, &e.FirstName, &e.LastName, &rate, &e.StartDay, &e.EndDay); err != nil {
		return wage.Employee{}, err
	}
	e.Rate = mustDecimal(rate)
	return e, nil
}

// =============================================================================
// WAGE ORDERS
// =============================================================================

func (s *Store) CreateWageOrder(ctx context.Context, w wage.WageOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wage_orders (id, name, effective_date, less_than_ten, ten_or_more)
		 VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Date.String(), w.LessThanTen.String(), w.TenOrMore.String())
	if err != nil {
		return fmt.Errorf("failed to create wage order: %w", err)
	}
	return nil
}

func (s *Store) DeleteWageOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM wage_orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wage order: %w", err)
	}
	return nil
}

func (s *Store) ListWageOrders(ctx context.Context) ([]wage.WageOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, effective_date, less_than_ten, ten_or_more
		 FROM wage_orders ORDER BY effective_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage orders: %w", err)
	}
	defer rows.Close()

	var out []wage.WageOrder
	for rows.Next() {
		var w wage.WageOrder
		var date, lessThanTen, tenOrMore string
		if err := rows.Scan(&w.ID, &w.Name, &date, &lessThanTen, &tenOrMore); err != nil {
			return nil, err
		}
		w.Date, _ = wage.ParseDate(date)
		w.LessThanTen = mustDecimal(lessThanTen)
		w.TenOrMore = mustDecimal(tenOrMore)
		out = append(out, w)
	}
	return out, rows.Err()
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) CreateHoliday(ctx context.Context, h wage.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (id, name, date, type) VALUES (?, ?, ?, ?)`,
		h.ID, h.Name, h.Date.String(), string(h.Type))
	if err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func (s *Store) ListHolidays(ctx context.Context) ([]wage.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, date, type FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var out []wage.Holiday
	for rows.Next() {
		var h wage.Holiday
		var date, typ string
		if err := rows.Scan(&h.ID, &h.Name, &date, &typ); err != nil {
			return nil, err
		}
		h.Date, _ = wage.ParseDate(date)
		h.Type = wage.HolidayType(typ)
		out = append(out, h)
	}
	return out, rows.Err()
}

// =============================================================================
// VIOLATION DOCUMENTS
// =============================================================================

// ReplaceViolations swaps the employee's entire violation document:
// delete then insert inside one transaction. Field-level patching is
// deliberately unsupported.
func (s *Store) ReplaceViolations(ctx context.Context, employeeID string, doc wage.ViolationValues) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode violation document: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM violations WHERE employee_id = ?`, employeeID); err != nil {
		return fmt.Errorf("failed to clear violation document: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO violations (employee_id, document) VALUES (?, ?)`,
		employeeID, string(raw)); err != nil {
		return fmt.Errorf("failed to insert violation document: %w", err)
	}
	return tx.Commit()
}

// GetViolations returns the employee's document, or nil when none was
// ever saved.
func (s *Store) GetViolations(ctx context.Context, employeeID string) (wage.ViolationValues, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM violations WHERE employee_id = ?`, employeeID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get violation document: %w", err)
	}

	var doc wage.ViolationValues
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode violation document: %w", err)
	}
	return doc, nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
