package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/service"
)

type mockContactRepo struct {
	nextID   int64
	contacts []domain.Contact
}

func (m *mockContactRepo) Create(_ context.Context, req *domain.ContactReq) (*domain.Contact, error) {
	m.nextID++
	c := domain.Contact{
		ID:        m.nextID,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	// Newest first
	m.contacts = append([]domain.Contact{c}, m.contacts...)
	return &c, nil
}

func (m *mockContactRepo) List(_ context.Context) ([]domain.Contact, error) {
	return m.contacts, nil
}

func TestSubmitContact(t *testing.T) {
	repo := &mockContactRepo{}
	pub := &mockPublisher{}
	svc := service.NewContactService(repo, pub)

	contact, err := svc.Submit(context.Background(), &domain.ContactReq{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Subject: "Late checkout",
		Message: "Is a 2pm checkout possible?",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if contact.ID == 0 {
		t.Error("contact id not assigned")
	}
	if len(pub.published) != 1 || pub.published[0] != "contact.received" {
		t.Errorf("published subjects = %v, want [contact.received]", pub.published)
	}
}

func TestSubmitContactMissingFields(t *testing.T) {
	repo := &mockContactRepo{}
	svc := service.NewContactService(repo, &mockPublisher{})

	_, err := svc.Submit(context.Background(), &domain.ContactReq{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
		// subject and message missing
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.contacts) != 0 {
		t.Errorf("contact persisted despite validation failure")
	}
}

func TestSubmitContactPublishFailureIsNotFatal(t *testing.T) {
	repo := &mockContactRepo{}
	pub := &mockPublisher{publishErr: errors.New("nats down")}
	svc := service.NewContactService(repo, pub)

	if _, err := svc.Submit(context.Background(), &domain.ContactReq{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Subject: "Hello",
		Message: "World",
	}); err != nil {
		t.Fatalf("publish failure escalated to request failure: %v", err)
	}
}
