package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alictclasses/alict-backend/internal/model"
)

// VideoRepository handles video data access.
type VideoRepository struct {
	pool *pgxpool.Pool
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

// ListByMonth retrieves a month's videos ordered by order_index.
func (r *VideoRepository) ListByMonth(ctx context.Context, monthID uuid.UUID) ([]model.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, month_id, title, description, video_url, thumbnail_url, is_free, price, order_index, created_at
		 FROM videos WHERE month_id = $1 ORDER BY order_index ASC`, monthID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.MonthID, &v.Title, &v.Description, &v.VideoURL,
			&v.ThumbnailURL, &v.IsFree, &v.Price, &v.OrderIndex, &v.CreatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// ListWithContext retrieves all videos with month and class names resolved
// inline for the admin video manager.
func (r *VideoRepository) ListWithContext(ctx context.Context) ([]model.VideoWithContext, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT v.id, v.month_id, v.title, v.description, v.video_url, v.thumbnail_url,
		        v.is_free, v.price, v.order_index, v.created_at,
		        m.name, m.month_number, m.year, c.name
		 FROM videos v
		 JOIN months m ON m.id = v.month_id
		 JOIN classes c ON c.id = m.class_id
		 ORDER BY c.name, m.month_number, v.order_index ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.VideoWithContext
	for rows.Next() {
		var v model.VideoWithContext
		if err := rows.Scan(&v.ID, &v.MonthID, &v.Title, &v.Description, &v.VideoURL,
			&v.ThumbnailURL, &v.IsFree, &v.Price, &v.OrderIndex, &v.CreatedAt,
			&v.MonthName, &v.MonthNumber, &v.MonthYear, &v.ClassName); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Create inserts a new video.
func (r *VideoRepository) Create(ctx context.Context, v *model.Video) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO videos (month_id, title, description, video_url, thumbnail_url, is_free, price, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		v.MonthID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.IsFree, v.Price, v.OrderIndex,
	).Scan(&v.ID, &v.CreatedAt)
}

// Update modifies an existing video.
func (r *VideoRepository) Update(ctx context.Context, v *model.Video) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE videos SET month_id = $1, title = $2, description = $3, video_url = $4,
		        thumbnail_url = $5, is_free = $6, price = $7, order_index = $8
		 WHERE id = $9`,
		v.MonthID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.IsFree, v.Price, v.OrderIndex, v.ID,
	)
	return err
}

// Delete removes a video by its ID.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	return err
}
