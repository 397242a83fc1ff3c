package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alictclasses/alict-backend/internal/model"
)

// ResultRepository handles student result data access.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// List retrieves all results ordered by order_index.
func (r *ResultRepository) List(ctx context.Context) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_name, achievement, year, image_url, testimonial, order_index, created_at
		 FROM results ORDER BY order_index ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.StudentName, &res.Achievement, &res.Year,
			&res.ImageURL, &res.Testimonial, &res.OrderIndex, &res.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// Create inserts a new result.
func (r *ResultRepository) Create(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (student_name, achievement, year, image_url, testimonial, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		res.StudentName, res.Achievement, res.Year, res.ImageURL, res.Testimonial, res.OrderIndex,
	).Scan(&res.ID, &res.CreatedAt)
}

// Update modifies an existing result.
func (r *ResultRepository) Update(ctx context.Context, res *model.Result) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE results SET student_name = $1, achievement = $2, year = $3, image_url = $4,
		        testimonial = $5, order_index = $6
		 WHERE id = $7`,
		res.StudentName, res.Achievement, res.Year, res.ImageURL, res.Testimonial, res.OrderIndex, res.ID,
	)
	return err
}

// Delete removes a result by its ID.
func (r *ResultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	return err
}
