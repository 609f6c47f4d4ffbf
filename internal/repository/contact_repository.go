package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDomain "github.com/ridehub/service-rental/internal/domain/contact"
)

// ContactMessageModel is the GORM model for the contact_messages table.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Subject   string    `gorm:"type:varchar(200)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (ContactMessageModel) TableName() string { return "contact_messages" }

// GormContactRepository implements contact.Repository using GORM.
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository.
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Save persists a contact message.
func (r *GormContactRepository) Save(ctx context.Context, m *contactDomain.Message) error {
	model := ContactMessageModel{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		Subject:   m.Subject(),
		Message:   m.Body(),
		CreatedAt: m.CreatedAt(),
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

// ListAll returns contact messages with pagination (admin).
func (r *GormContactRepository) ListAll(ctx context.Context, page, limit int) ([]*contactDomain.Message, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ContactMessageModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []ContactMessageModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	messages := make([]*contactDomain.Message, len(models))
	for i, m := range models {
		messages[i] = contactDomain.Reconstruct(m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.CreatedAt)
	}
	return messages, total, nil
}
