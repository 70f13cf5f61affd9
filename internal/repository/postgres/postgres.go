package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"

	"github.com/lib/pq"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository runs against a Querier so the same code serves both plain calls
// and transactional units of work.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB

	dresses      repository.DressRepository
	customers    repository.CustomerRepository
	rents        repository.RentRepository
	maintenances repository.MaintenanceRepository
	sales        repository.SaleRepository
	reports      repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q Querier) *Store {
	return &Store{
		db:           db,
		dresses:      NewDressRepository(q),
		customers:    NewCustomerRepository(q),
		rents:        NewRentRepository(q),
		maintenances: NewMaintenanceRepository(q),
		sales:        NewSaleRepository(q),
		reports:      NewReportRepository(q),
	}
}

func (s *Store) Dresses() repository.DressRepository           { return s.dresses }
func (s *Store) Customers() repository.CustomerRepository      { return s.customers }
func (s *Store) Rents() repository.RentRepository              { return s.rents }
func (s *Store) Maintenances() repository.MaintenanceRepository { return s.maintenances }
func (s *Store) Sales() repository.SaleRepository              { return s.sales }
func (s *Store) Reports() repository.ReportRepository          { return s.reports }

// ExecTx runs fn against a Store bound to a single transaction, committing on
// success and rolling back on error. Lock and serialization failures surface
// as domain.ErrConflict so callers can retry once.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(newStore(s.db, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return mapError(err)
	}
	if err := tx.Commit(); err != nil {
		return mapError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// mapError translates driver-level contention errors into the domain
// taxonomy. Everything else passes through unchanged.
func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"55P03": // lock_not_available
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		case "23505": // unique_violation
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
	}
	return err
}
