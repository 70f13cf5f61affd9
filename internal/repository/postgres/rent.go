package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

const rentColumns = `id, dress_id, customer_id, rent_date, return_date, payment_method, payment_total`

type rentRepository struct {
	db Querier
}

func NewRentRepository(db Querier) repository.RentRepository {
	return &rentRepository{db: db}
}

func (r *rentRepository) Create(ctx context.Context, rent *domain.Rent) error {
	query := `INSERT INTO rents (dress_id, customer_id, rent_date, return_date, payment_method, payment_total)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rent.DressID, rent.CustomerID, rent.RentDate, rent.ReturnDate, rent.PaymentMethod, rent.PaymentTotal,
	).Scan(&rent.ID)
}

func (r *rentRepository) GetByID(ctx context.Context, id int32) (*domain.Rent, error) {
	rent := &domain.Rent{}
	query := `SELECT ` + rentColumns + ` FROM rents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rent.ID, &rent.DressID, &rent.CustomerID, &rent.RentDate, &rent.ReturnDate,
		&rent.PaymentMethod, &rent.PaymentTotal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rent %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rent, nil
}

func (r *rentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "rent", id)
}

func (r *rentRepository) ListByDress(ctx context.Context, dressID int32) ([]domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE dress_id = $1 ORDER BY rent_date, id`
	return r.queryRents(ctx, query, dressID)
}

func (r *rentRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE customer_id = $1 ORDER BY rent_date, id`
	return r.queryRents(ctx, query, customerID)
}

func (r *rentRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Rent, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rents`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + rentColumns + ` FROM rents ORDER BY rent_date DESC, id DESC LIMIT $1 OFFSET $2`
	rents, err := r.queryRents(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	return rents, count, nil
}

func (r *rentRepository) queryRents(ctx context.Context, query string, args ...any) ([]domain.Rent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rents []domain.Rent
	for rows.Next() {
		var rent domain.Rent
		if err := rows.Scan(&rent.ID, &rent.DressID, &rent.CustomerID, &rent.RentDate,
			&rent.ReturnDate, &rent.PaymentMethod, &rent.PaymentTotal); err != nil {
			return nil, err
		}
		rents = append(rents, rent)
	}
	return rents, rows.Err()
}
