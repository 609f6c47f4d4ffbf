package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	contactDomain "github.com/ridehub/service-rental/internal/domain/contact"
)

// SubmitContactRequest holds a contact-form submission.
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// ContactMessageDTO is the API response representation of a contact message.
type ContactMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactService handles contact-form use cases.
type ContactService struct {
	repo   contactDomain.Repository
	logger *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(repo contactDomain.Repository, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Submit stores a contact-form message.
func (s *ContactService) Submit(ctx context.Context, req SubmitContactRequest) (*ContactMessageDTO, error) {
	m, err := contactDomain.NewMessage(req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("contact message received", zap.String("email", m.Email()))
	dto := toContactMessageDTO(m)
	return &dto, nil
}

// ListAll returns all contact messages paginated (admin).
func (s *ContactService) ListAll(ctx context.Context, page, limit int) ([]ContactMessageDTO, int64, error) {
	messages, total, err := s.repo.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]ContactMessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = toContactMessageDTO(m)
	}
	return dtos, total, nil
}

func toContactMessageDTO(m *contactDomain.Message) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		Subject:   m.Subject(),
		Message:   m.Body(),
		CreatedAt: m.CreatedAt(),
	}
}
