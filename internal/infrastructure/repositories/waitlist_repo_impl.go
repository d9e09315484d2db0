package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/infrastructure/models"
)

// WaitlistRepository implements waitlist data operations
type WaitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository creates a new waitlist repository
func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

// Create inserts a new waitlist entry
func (r *WaitlistRepository) Create(ctx context.Context, entry *entities.WaitlistEntry) error {
	m := &models.WaitlistEntry{Email: entry.Email}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	entry.ID = m.ID
	entry.CreatedAt = m.CreatedAt
	return nil
}

// FindByEmail finds a waitlist entry by exact email
func (r *WaitlistRepository) FindByEmail(ctx context.Context, email string) (*entities.WaitlistEntry, error) {
	var m models.WaitlistEntry
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.WaitlistEntry{
		ID:        m.ID,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}, nil
}
