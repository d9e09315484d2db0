package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/infrastructure/models"
)

// TokenRepository implements token data operations
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create inserts a new token row
func (r *TokenRepository) Create(ctx context.Context, token *entities.Token) error {
	m := toModel(token)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, err)
		}
		return err
	}
	*token = *toEntity(m)
	return nil
}

// GetByID gets a token by ID
func (r *TokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error) {
	var m models.Token
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// FindByName finds a token by exact name, excluding excludeID when non-nil
func (r *TokenRepository) FindByName(ctx context.Context, name string, excludeID uuid.UUID) (*entities.Token, error) {
	return r.findBy(ctx, "name = ?", name, excludeID)
}

// FindByTicker finds a token by exact ticker, excluding excludeID when non-nil
func (r *TokenRepository) FindByTicker(ctx context.Context, ticker string, excludeID uuid.UUID) (*entities.Token, error) {
	return r.findBy(ctx, "ticker = ?", ticker, excludeID)
}

func (r *TokenRepository) findBy(ctx context.Context, cond string, value string, excludeID uuid.UUID) (*entities.Token, error) {
	var m models.Token
	query := r.db.WithContext(ctx).Where(cond, value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// List returns tokens newest first, optionally filtered by creator and windowed
func (r *TokenRepository) List(ctx context.Context, filter entities.TokenFilter) ([]*entities.Token, error) {
	var ms []models.Token

	query := r.db.WithContext(ctx).Model(&models.Token{}).Order("created_at DESC")

	if filter.CreatorAddress != "" {
		query = query.Where("creator_address = ?", filter.CreatorAddress)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	tokens := make([]*entities.Token, 0, len(ms))
	for _, m := range ms {
		model := m
		tokens = append(tokens, toEntity(&model))
	}
	return tokens, nil
}

// Update applies the changed-field set to a single row and reloads it
func (r *TokenRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*entities.Token, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Token{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			if isDuplicateKey(result.Error) {
				return nil, fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, result.Error)
			}
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, domainerrors.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a token row permanently
func (r *TokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Token{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toModel(t *entities.Token) *models.Token {
	return &models.Token{
		ID:              t.ID,
		Name:            t.Name,
		Ticker:          t.Ticker,
		ImageURL:        t.ImageURL.Ptr(),
		Amount:          t.Amount,
		CreatorAddress:  t.CreatorAddress,
		ContractAddress: t.ContractAddress.Ptr(),
		Website:         t.Website.Ptr(),
		CreatedAt:       t.CreatedAt,
	}
}

func toEntity(m *models.Token) *entities.Token {
	return &entities.Token{
		ID:              m.ID,
		Name:            m.Name,
		Ticker:          m.Ticker,
		ImageURL:        null.StringFromPtr(m.ImageURL),
		Amount:          m.Amount,
		CreatorAddress:  m.CreatorAddress,
		ContractAddress: null.StringFromPtr(m.ContractAddress),
		Website:         null.StringFromPtr(m.Website),
		CreatedAt:       m.CreatedAt,
	}
}

// isDuplicateKey reports whether err is a uniqueness-constraint violation.
// Postgres surfaces 23505, sqlite (tests) a UNIQUE constraint message; the
// database constraint is the hard uniqueness guarantee behind the usecase's
// best-effort pre-checks.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
