package usecases

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/domain/repositories"
	"memedrop.backend/pkg/logger"
)

// WaitlistUsecase handles waitlist email capture
type WaitlistUsecase struct {
	waitlistRepo repositories.WaitlistRepository
}

// NewWaitlistUsecase creates a new waitlist usecase
func NewWaitlistUsecase(waitlistRepo repositories.WaitlistRepository) *WaitlistUsecase {
	return &WaitlistUsecase{waitlistRepo: waitlistRepo}
}

// Join registers an email, lower-cased, rejecting duplicates
func (u *WaitlistUsecase) Join(ctx context.Context, email string) (*entities.WaitlistEntry, error) {
	if !ValidateEmail(email) {
		return nil, domainerrors.BadRequest(MsgInvalidEmail)
	}
	email = strings.ToLower(email)

	_, err := u.waitlistRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.Conflict("Email already registered for waitlist")
	case !errors.Is(err, domainerrors.ErrNotFound):
		logger.Error(ctx, "Error checking existing email", zap.Error(err))
		return nil, domainerrors.InternalError("Internal server error", err)
	}

	entry := &entities.WaitlistEntry{Email: email}
	if err := u.waitlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Email already registered for waitlist")
		}
		logger.Error(ctx, "Error inserting waitlist entry", zap.Error(err))
		return nil, domainerrors.InternalError("Failed to register for waitlist", err)
	}
	return entry, nil
}
