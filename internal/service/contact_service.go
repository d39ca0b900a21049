package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/repository"
	"github.com/kingresort/booking-api/pkg/events"
	"github.com/kingresort/booking-api/pkg/logger"
)

type ContactService interface {
	Submit(ctx context.Context, req *domain.ContactReq) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	publisher   events.Publisher
	validate    *validator.Validate
}

func NewContactService(contactRepo repository.ContactRepository, publisher events.Publisher) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		publisher:   publisher,
		validate:    validator.New(),
	}
}

func (s *contactService) Submit(ctx context.Context, req *domain.ContactReq) (*domain.Contact, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: name, email, subject and message are required", domain.ErrValidation)
	}

	contact, err := s.contactRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	event := events.ContactReceivedEvent{
		ContactID:  contact.ID,
		Name:       contact.Name,
		Email:      contact.Email,
		Subject:    contact.Subject,
		Message:    contact.Message,
		ReceivedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, events.ContactReceived, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact received event", "error", err, "contact_id", contact.ID)
	}

	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return s.contactRepo.List(ctx)
}
