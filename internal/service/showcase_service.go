package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/repository"
)

// ShowcaseService handles the results and gallery sections.
type ShowcaseService struct {
	resultRepo  *repository.ResultRepository
	galleryRepo *repository.GalleryRepository
}

// NewShowcaseService creates a new ShowcaseService.
func NewShowcaseService(resultRepo *repository.ResultRepository, galleryRepo *repository.GalleryRepository) *ShowcaseService {
	return &ShowcaseService{resultRepo: resultRepo, galleryRepo: galleryRepo}
}

// ListResults retrieves all results in display order.
func (s *ShowcaseService) ListResults(ctx context.Context) ([]model.Result, error) {
	return s.resultRepo.List(ctx)
}

// CreateResult inserts a new result.
func (s *ShowcaseService) CreateResult(ctx context.Context, res *model.Result) error {
	return s.resultRepo.Create(ctx, res)
}

// UpdateResult modifies an existing result.
func (s *ShowcaseService) UpdateResult(ctx context.Context, res *model.Result) error {
	return s.resultRepo.Update(ctx, res)
}

// DeleteResult removes a result.
func (s *ShowcaseService) DeleteResult(ctx context.Context, id uuid.UUID) error {
	return s.resultRepo.Delete(ctx, id)
}

// ListGallery retrieves all gallery items in display order.
func (s *ShowcaseService) ListGallery(ctx context.Context) ([]model.GalleryItem, error) {
	return s.galleryRepo.List(ctx)
}

// CreateGalleryItem inserts a new gallery item.
func (s *ShowcaseService) CreateGalleryItem(ctx context.Context, item *model.GalleryItem) error {
	return s.galleryRepo.Create(ctx, item)
}

// UpdateGalleryItem modifies an existing gallery item.
func (s *ShowcaseService) UpdateGalleryItem(ctx context.Context, item *model.GalleryItem) error {
	return s.galleryRepo.Update(ctx, item)
}

// DeleteGalleryItem removes a gallery item.
func (s *ShowcaseService) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	return s.galleryRepo.Delete(ctx, id)
}
