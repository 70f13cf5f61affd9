package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

type maintenanceRepository struct {
	db Querier
}

func NewMaintenanceRepository(db Querier) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenances (date, return_date, maintenance_type, cost)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, m.Date, m.ReturnDate, m.Type, m.Cost).Scan(&m.ID); err != nil {
		return err
	}
	for _, dressID := range m.DressIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO maintenance_dresses (maintenance_id, dress_id) VALUES ($1, $2)`,
			m.ID, dressID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	query := `SELECT id, date, return_date, maintenance_type, cost FROM maintenances WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Date, &m.ReturnDate, &m.Type, &m.Cost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("maintenance %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if m.DressIDs, err = r.dressIDs(ctx, m.ID); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int32) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_dresses WHERE maintenance_id=$1`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "maintenance", id)
}

func (r *maintenanceRepository) ListByDress(ctx context.Context, dressID int32) ([]domain.Maintenance, error) {
	query := `SELECT m.id, m.date, m.return_date, m.maintenance_type, m.cost
	          FROM maintenances m
	          JOIN maintenance_dresses md ON md.maintenance_id = m.id
	          WHERE md.dress_id = $1
	          ORDER BY m.date, m.id`
	rows, err := r.db.QueryContext(ctx, query, dressID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenances(rows)
}

func (r *maintenanceRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Maintenance, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM maintenances`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, date, return_date, maintenance_type, cost FROM maintenances
	          ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	maintenances, err := scanMaintenances(rows)
	if err != nil {
		return nil, 0, err
	}
	for i := range maintenances {
		if maintenances[i].DressIDs, err = r.dressIDs(ctx, maintenances[i].ID); err != nil {
			return nil, 0, err
		}
	}
	return maintenances, count, nil
}

func (r *maintenanceRepository) dressIDs(ctx context.Context, maintenanceID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT dress_id FROM maintenance_dresses WHERE maintenance_id = $1 ORDER BY dress_id`, maintenanceID)
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

func scanMaintenances(rows *sql.Rows) ([]domain.Maintenance, error) {
	var maintenances []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.Date, &m.ReturnDate, &m.Type, &m.Cost); err != nil {
			return nil, err
		}
		maintenances = append(maintenances, m)
	}
	return maintenances, rows.Err()
}
