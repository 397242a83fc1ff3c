package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/repository"
)

// ContactService handles contact message leads.
type ContactService struct {
	contactRepo *repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo *repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// List retrieves all messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}

// Create stores a message submitted through the public contact form.
func (s *ContactService) Create(ctx context.Context, m *model.ContactMessage) error {
	return s.contactRepo.Create(ctx, m)
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.MarkRead(ctx, id)
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.Delete(ctx, id)
}
