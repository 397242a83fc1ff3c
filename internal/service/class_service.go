package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/repository"
)

// ClassService handles class management logic.
type ClassService struct {
	classRepo *repository.ClassRepository
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository) *ClassService {
	return &ClassService{classRepo: classRepo}
}

// GetByID retrieves a class by its ID.
func (s *ClassService) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// GetBySlug resolves a slug and retrieves the matching class.
func (s *ClassService) GetBySlug(ctx context.Context, slug string) (*model.Class, error) {
	return s.classRepo.GetByName(ctx, ResolveClassName(slug))
}

// List retrieves all classes for the admin dashboard.
func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.List(ctx)
}

// ListActive retrieves active classes for the public site.
func (s *ClassService) ListActive(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.ListActive(ctx)
}

// Create creates a new class.
func (s *ClassService) Create(ctx context.Context, class *model.Class) error {
	return s.classRepo.Create(ctx, class)
}

// Update modifies an existing class.
func (s *ClassService) Update(ctx context.Context, class *model.Class) error {
	return s.classRepo.Update(ctx, class)
}

// Delete removes a class. Months, videos and notes under it go with it via
// the store's cascade rules; nothing here coordinates that.
func (s *ClassService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.classRepo.Delete(ctx, id)
}
