package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

type customerRepository struct {
	db Querier
}

func NewCustomerRepository(db Querier) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (email, name, last_name, phone_number, busy, date_added)
	          VALUES ($1, $2, $3, $4, FALSE, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.Email, c.Name, c.LastName, c.PhoneNumber, c.DateAdded,
	).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, email, name, last_name, phone_number, busy, date_added FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Email, &c.Name, &c.LastName, &c.PhoneNumber, &c.Busy, &c.DateAdded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) UpdateBusy(ctx context.Context, id int32, busy bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE customers SET busy=$1 WHERE id=$2`, busy, id)
	if err != nil {
		return err
	}
	return requireRow(res, "customer", id)
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "customer", id)
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, email, name, last_name, phone_number, busy, date_added FROM customers
	          ORDER BY date_added DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Email, &c.Name, &c.LastName, &c.PhoneNumber, &c.Busy, &c.DateAdded); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}

func (r *customerRepository) ListIDs(ctx context.Context) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
