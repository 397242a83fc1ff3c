package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/repository"
)

// RegistrationService handles student registration leads.
type RegistrationService struct {
	regRepo *repository.RegistrationRepository
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(regRepo *repository.RegistrationRepository) *RegistrationService {
	return &RegistrationService{regRepo: regRepo}
}

// List retrieves all registrations, newest first.
func (s *RegistrationService) List(ctx context.Context) ([]model.StudentRegistration, error) {
	return s.regRepo.List(ctx)
}

// Create stores a registration submitted through the public form.
func (s *RegistrationService) Create(ctx context.Context, reg *model.StudentRegistration) error {
	return s.regRepo.Create(ctx, reg)
}

// Delete removes a registration.
func (s *RegistrationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.regRepo.Delete(ctx, id)
}

// csvHeaders is the export header row, in display order.
var csvHeaders = []string{"Name", "Class", "Student ID", "Phone", "School", "Registration Date"}

// ExportCSV renders registrations as comma-separated text with every field
// wrapped in double quotes. Embedded commas survive the quoting; embedded
// double quotes are NOT escaped and will corrupt the row — known limitation,
// kept for compatibility with the exports admins already consume.
func (s *RegistrationService) ExportCSV(regs []model.StudentRegistration) string {
	lines := make([]string, 0, len(regs)+1)
	lines = append(lines, strings.Join(csvHeaders, ","))

	for _, reg := range regs {
		fields := []string{
			quote(reg.Name),
			quote(reg.Class),
			quote(reg.StudentID),
			quote(reg.PhoneNumber),
			quote(reg.School),
			quote(reg.CreatedAt.Format("2006-01-02")),
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// ExportFilename returns the dated attachment name for a CSV download.
func (s *RegistrationService) ExportFilename(now time.Time) string {
	return fmt.Sprintf("student_registrations_%s.csv", now.Format("2006-01-02"))
}

func quote(field string) string {
	return `"` + field + `"`
}
