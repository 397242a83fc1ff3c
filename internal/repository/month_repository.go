package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alictclasses/alict-backend/internal/model"
)

// MonthRepository handles month data access.
type MonthRepository struct {
	pool *pgxpool.Pool
}

// NewMonthRepository creates a new MonthRepository.
func NewMonthRepository(pool *pgxpool.Pool) *MonthRepository {
	return &MonthRepository{pool: pool}
}

// ListByClass retrieves all months of a class ordered chronologically.
func (r *MonthRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Month, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_id, name, month_number, year, created_at
		 FROM months WHERE class_id = $1 ORDER BY month_number ASC`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []model.Month
	for rows.Next() {
		var m model.Month
		if err := rows.Scan(&m.ID, &m.ClassID, &m.Name, &m.MonthNumber, &m.Year, &m.CreatedAt); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// ListWithClass retrieves all months with their owning class name for the
// admin month picker.
func (r *MonthRepository) ListWithClass(ctx context.Context) ([]model.MonthWithClass, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, m.class_id, m.name, m.month_number, m.year, m.created_at, c.name
		 FROM months m
		 JOIN classes c ON c.id = m.class_id
		 ORDER BY c.name, m.month_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []model.MonthWithClass
	for rows.Next() {
		var m model.MonthWithClass
		if err := rows.Scan(&m.ID, &m.ClassID, &m.Name, &m.MonthNumber, &m.Year, &m.CreatedAt, &m.ClassName); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// Create inserts a new month.
func (r *MonthRepository) Create(ctx context.Context, m *model.Month) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO months (class_id, name, month_number, year)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		m.ClassID, m.Name, m.MonthNumber, m.Year,
	).Scan(&m.ID, &m.CreatedAt)
}

// Update modifies an existing month.
func (r *MonthRepository) Update(ctx context.Context, m *model.Month) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE months SET class_id = $1, name = $2, month_number = $3, year = $4
		 WHERE id = $5`,
		m.ClassID, m.Name, m.MonthNumber, m.Year, m.ID,
	)
	return err
}

// Delete removes a month by its ID.
func (r *MonthRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM months WHERE id = $1`, id)
	return err
}
