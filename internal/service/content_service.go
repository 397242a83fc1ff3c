package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/repository"
)

// ContentService handles the month/video/note admin editors. Each editor is a
// direct form-to-table mapping with no cross-entity coordination.
type ContentService struct {
	monthRepo *repository.MonthRepository
	videoRepo *repository.VideoRepository
	noteRepo  *repository.NoteRepository
}

// NewContentService creates a new ContentService.
func NewContentService(
	monthRepo *repository.MonthRepository,
	videoRepo *repository.VideoRepository,
	noteRepo *repository.NoteRepository,
) *ContentService {
	return &ContentService{monthRepo: monthRepo, videoRepo: videoRepo, noteRepo: noteRepo}
}

// ListMonths retrieves all months with their class names.
func (s *ContentService) ListMonths(ctx context.Context) ([]model.MonthWithClass, error) {
	return s.monthRepo.ListWithClass(ctx)
}

// CreateMonth inserts a new month.
func (s *ContentService) CreateMonth(ctx context.Context, m *model.Month) error {
	return s.monthRepo.Create(ctx, m)
}

// UpdateMonth modifies an existing month.
func (s *ContentService) UpdateMonth(ctx context.Context, m *model.Month) error {
	return s.monthRepo.Update(ctx, m)
}

// DeleteMonth removes a month.
func (s *ContentService) DeleteMonth(ctx context.Context, id uuid.UUID) error {
	return s.monthRepo.Delete(ctx, id)
}

// ListVideos retrieves all videos with month/class context.
func (s *ContentService) ListVideos(ctx context.Context) ([]model.VideoWithContext, error) {
	return s.videoRepo.ListWithContext(ctx)
}

// CreateVideo inserts a new video.
func (s *ContentService) CreateVideo(ctx context.Context, v *model.Video) error {
	return s.videoRepo.Create(ctx, v)
}

// UpdateVideo modifies an existing video.
func (s *ContentService) UpdateVideo(ctx context.Context, v *model.Video) error {
	return s.videoRepo.Update(ctx, v)
}

// DeleteVideo removes a video.
func (s *ContentService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return s.videoRepo.Delete(ctx, id)
}

// ListNotes retrieves all notes with month/class context.
func (s *ContentService) ListNotes(ctx context.Context) ([]model.NoteWithContext, error) {
	return s.noteRepo.ListWithContext(ctx)
}

// CreateNote inserts a new note.
func (s *ContentService) CreateNote(ctx context.Context, n *model.Note) error {
	return s.noteRepo.Create(ctx, n)
}

// UpdateNote modifies an existing note.
func (s *ContentService) UpdateNote(ctx context.Context, n *model.Note) error {
	return s.noteRepo.Update(ctx, n)
}

// DeleteNote removes a note.
func (s *ContentService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return s.noteRepo.Delete(ctx, id)
}
