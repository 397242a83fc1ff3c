package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alictclasses/alict-backend/internal/model"
)

// NoteRepository handles note data access.
type NoteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

// ListByMonth retrieves a month's notes. Notes have no ordering key; rows come
// back in store order.
func (r *NoteRepository) ListByMonth(ctx context.Context, monthID uuid.UUID) ([]model.Note, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, month_id, title, description, drive_url, is_free, price, created_at
		 FROM notes WHERE month_id = $1`, monthID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.MonthID, &n.Title, &n.Description, &n.DriveURL,
			&n.IsFree, &n.Price, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// ListWithContext retrieves all notes with month and class names resolved
// inline for the admin note manager.
func (r *NoteRepository) ListWithContext(ctx context.Context) ([]model.NoteWithContext, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT n.id, n.month_id, n.title, n.description, n.drive_url, n.is_free, n.price, n.created_at,
		        m.name, c.name
		 FROM notes n
		 JOIN months m ON m.id = n.month_id
		 JOIN classes c ON c.id = m.class_id
		 ORDER BY c.name, m.month_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.NoteWithContext
	for rows.Next() {
		var n model.NoteWithContext
		if err := rows.Scan(&n.ID, &n.MonthID, &n.Title, &n.Description, &n.DriveURL,
			&n.IsFree, &n.Price, &n.CreatedAt, &n.MonthName, &n.ClassName); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Create inserts a new note.
func (r *NoteRepository) Create(ctx context.Context, n *model.Note) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notes (month_id, title, description, drive_url, is_free, price)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		n.MonthID, n.Title, n.Description, n.DriveURL, n.IsFree, n.Price,
	).Scan(&n.ID, &n.CreatedAt)
}

// Update modifies an existing note.
func (r *NoteRepository) Update(ctx context.Context, n *model.Note) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notes SET month_id = $1, title = $2, description = $3, drive_url = $4, is_free = $5, price = $6
		 WHERE id = $7`,
		n.MonthID, n.Title, n.Description, n.DriveURL, n.IsFree, n.Price, n.ID,
	)
	return err
}

// Delete removes a note by its ID.
func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return err
}
