package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

const dressColumns = `id, size, color, style, brand, description, cost, market_price, rent_price,
	rents_for_returns, times_rented, sellable, rent_status, maintenance_status, sold, image_path, date_added`

type dressRepository struct {
	db Querier
}

func NewDressRepository(db Querier) repository.DressRepository {
	return &dressRepository{db: db}
}

func (r *dressRepository) Create(ctx context.Context, d *domain.Dress) error {
	query := `INSERT INTO dresses (size, color, style, brand, description, cost, market_price, rent_price,
	                               rents_for_returns, times_rented, sellable, rent_status, maintenance_status, sold, image_path, date_added)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, FALSE, FALSE, FALSE, FALSE, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		d.Size, d.Color, d.Style, d.Brand, d.Description, d.Cost, d.MarketPrice, d.RentPrice,
		d.RentsForReturns, d.ImagePath, d.DateAdded,
	).Scan(&d.ID)
}

func (r *dressRepository) GetByID(ctx context.Context, id int32) (*domain.Dress, error) {
	query := `SELECT ` + dressColumns + ` FROM dresses WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *dressRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Dress, error) {
	query := `SELECT ` + dressColumns + ` FROM dresses WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *dressRepository) scanOne(row *sql.Row, id int32) (*domain.Dress, error) {
	d := &domain.Dress{}
	err := row.Scan(&d.ID, &d.Size, &d.Color, &d.Style, &d.Brand, &d.Description, &d.Cost,
		&d.MarketPrice, &d.RentPrice, &d.RentsForReturns, &d.TimesRented, &d.Sellable,
		&d.RentStatus, &d.MaintenanceStatus, &d.Sold, &d.ImagePath, &d.DateAdded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dress %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *dressRepository) UpdateStatus(ctx context.Context, d *domain.Dress) error {
	query := `UPDATE dresses SET times_rented=$1, sellable=$2, rent_status=$3, maintenance_status=$4, sold=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query,
		d.TimesRented, d.Sellable, d.RentStatus, d.MaintenanceStatus, d.Sold, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "dress", d.ID)
}

func (r *dressRepository) UpdateImagePath(ctx context.Context, id int32, path string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE dresses SET image_path=$1 WHERE id=$2`, path, id)
	if err != nil {
		return err
	}
	return requireRow(res, "dress", id)
}

func (r *dressRepository) Delete(ctx context.Context, id int32) error {
	// Historical transactions go with the dress; the caller has already
	// verified none of them is still active.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_dresses WHERE dress_id=$1`, id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rents WHERE dress_id=$1`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM dresses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "dress", id)
}

func (r *dressRepository) List(ctx context.Context, filter repository.DressFilter, page, pageSize int32) ([]domain.Dress, int32, error) {
	where := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.Color != "" {
		where = append(where, fmt.Sprintf("LOWER(color) LIKE $%d", argIdx))
		args = append(args, "%"+strings.ToLower(filter.Color)+"%")
		argIdx++
	}
	if filter.Brand != "" {
		where = append(where, fmt.Sprintf("brand = $%d", argIdx))
		args = append(args, filter.Brand)
		argIdx++
	}
	if filter.Style != "" {
		where = append(where, fmt.Sprintf("style = $%d", argIdx))
		args = append(args, filter.Style)
		argIdx++
	}
	if filter.Size != 0 {
		where = append(where, fmt.Sprintf("size = $%d", argIdx))
		args = append(args, filter.Size)
		argIdx++
	}
	if filter.MinCost != 0 {
		where = append(where, fmt.Sprintf("cost >= $%d", argIdx))
		args = append(args, filter.MinCost)
		argIdx++
	}
	if filter.MaxCost != 0 {
		where = append(where, fmt.Sprintf("cost <= $%d", argIdx))
		args = append(args, filter.MaxCost)
		argIdx++
	}

	base := `FROM dresses WHERE ` + strings.Join(where, " AND ")

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + dressColumns + " " + base +
		fmt.Sprintf(" ORDER BY date_added DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var dresses []domain.Dress
	for rows.Next() {
		var d domain.Dress
		if err := rows.Scan(&d.ID, &d.Size, &d.Color, &d.Style, &d.Brand, &d.Description, &d.Cost,
			&d.MarketPrice, &d.RentPrice, &d.RentsForReturns, &d.TimesRented, &d.Sellable,
			&d.RentStatus, &d.MaintenanceStatus, &d.Sold, &d.ImagePath, &d.DateAdded); err != nil {
			return nil, 0, err
		}
		dresses = append(dresses, d)
	}
	return dresses, count, rows.Err()
}

func (r *dressRepository) ListIDs(ctx context.Context) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM dresses ORDER BY id`)
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

// requireRow converts a zero-row update/delete into a not-found error.
func requireRow(res sql.Result, entity string, id int32) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
