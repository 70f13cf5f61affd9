package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

const saleColumns = `id, dress_id, customer_id, sale_date, sale_price`

type saleRepository struct {
	db Querier
}

func NewSaleRepository(db Querier) repository.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, s *domain.Sale) error {
	query := `INSERT INTO sales (dress_id, customer_id, sale_date, sale_price)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.DressID, s.CustomerID, s.SaleDate, s.SalePrice).Scan(&s.ID)
}

func (r *saleRepository) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "sale", id)
}

func (r *saleRepository) GetByDress(ctx context.Context, dressID int32) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE dress_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, dressID), "sale for dress", dressID)
}

func (r *saleRepository) scanOne(row *sql.Row, entity string, id int32) (*domain.Sale, error) {
	s := &domain.Sale{}
	err := row.Scan(&s.ID, &s.DressID, &s.CustomerID, &s.SaleDate, &s.SalePrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_id = $1 ORDER BY sale_date, id`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

func (r *saleRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Sale, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM sales`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sales, err := scanSales(rows)
	if err != nil {
		return nil, 0, err
	}
	return sales, count, nil
}

func scanSales(rows *sql.Rows) ([]domain.Sale, error) {
	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.DressID, &s.CustomerID, &s.SaleDate, &s.SalePrice); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
