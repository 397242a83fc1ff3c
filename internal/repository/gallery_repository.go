package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alictclasses/alict-backend/internal/model"
)

// GalleryRepository handles gallery item data access.
type GalleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

// List retrieves all gallery items ordered by order_index.
func (r *GalleryRepository) List(ctx context.Context) ([]model.GalleryItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image_url, category, order_index, created_at
		 FROM gallery ORDER BY order_index ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.GalleryItem
	for rows.Next() {
		var item model.GalleryItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.ImageURL,
			&item.Category, &item.OrderIndex, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserts a new gallery item.
func (r *GalleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO gallery (title, description, image_url, category, order_index)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		item.Title, item.Description, item.ImageURL, item.Category, item.OrderIndex,
	).Scan(&item.ID, &item.CreatedAt)
}

// Update modifies an existing gallery item.
func (r *GalleryRepository) Update(ctx context.Context, item *model.GalleryItem) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE gallery SET title = $1, description = $2, image_url = $3, category = $4, order_index = $5
		 WHERE id = $6`,
		item.Title, item.Description, item.ImageURL, item.Category, item.OrderIndex, item.ID,
	)
	return err
}

// Delete removes a gallery item by its ID.
func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	return err
}
