package repositories

import (
	"context"

	"github.com/google/uuid"
	"memedrop.backend/internal/domain/entities"
)

// TokenRepository defines token data operations.
//
// Lookups return domainerrors.ErrNotFound when no row matches; any other
// error is a real storage failure and must not be treated as "no match".
type TokenRepository interface {
	Create(ctx context.Context, token *entities.Token) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error)
	FindByName(ctx context.Context, name string, excludeID uuid.UUID) (*entities.Token, error)
	FindByTicker(ctx context.Context, ticker string, excludeID uuid.UUID) (*entities.Token, error)
	List(ctx context.Context, filter entities.TokenFilter) ([]*entities.Token, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*entities.Token, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
