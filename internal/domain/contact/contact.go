package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ridehub/service-rental/pkg/domain"
)

// Message is a contact-form submission. Pure create, no lifecycle.
type Message struct {
	id        uuid.UUID
	name      string
	email     string
	phone     string
	subject   string
	message   string
	createdAt time.Time
}

// NewMessage validates the required fields and creates a message.
func NewMessage(name, email, phone, subject, body string) (*Message, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, domain.NewValidationError("name and email are required")
	}
	if len(strings.TrimSpace(body)) < 10 {
		return nil, domain.NewValidationError("message must be at least 10 characters")
	}
	return &Message{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		subject:   subject,
		message:   body,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Message from persistence.
func Reconstruct(id uuid.UUID, name, email, phone, subject, body string, createdAt time.Time) *Message {
	return &Message{id: id, name: name, email: email, phone: phone, subject: subject, message: body, createdAt: createdAt}
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) Name() string         { return m.name }
func (m *Message) Email() string        { return m.email }
func (m *Message) Phone() string        { return m.phone }
func (m *Message) Subject() string      { return m.subject }
func (m *Message) Body() string         { return m.message }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// Repository defines persistence operations for contact messages.
type Repository interface {
	Save(ctx context.Context, m *Message) error
	ListAll(ctx context.Context, page, limit int) ([]*Message, int64, error)
}
