package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alictclasses/alict-backend/internal/model"
)

// RegistrationRepository handles student registration data access.
type RegistrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

// List retrieves all registrations, newest first.
func (r *RegistrationRepository) List(ctx context.Context) ([]model.StudentRegistration, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, class, student_id, phone_number, school, created_at
		 FROM student_registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []model.StudentRegistration
	for rows.Next() {
		var reg model.StudentRegistration
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Class, &reg.StudentID,
			&reg.PhoneNumber, &reg.School, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// Create inserts a new registration.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.StudentRegistration) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO student_registrations (name, class, student_id, phone_number, school)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		reg.Name, reg.Class, reg.StudentID, reg.PhoneNumber, reg.School,
	).Scan(&reg.ID, &reg.CreatedAt)
}

// Delete removes a registration by its ID.
func (r *RegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM student_registrations WHERE id = $1`, id)
	return err
}
