package repositories

import (
	"context"

	"memedrop.backend/internal/domain/entities"
)

// WaitlistRepository defines waitlist data operations
type WaitlistRepository interface {
	Create(ctx context.Context, entry *entities.WaitlistEntry) error
	FindByEmail(ctx context.Context, email string) (*entities.WaitlistEntry, error)
}
