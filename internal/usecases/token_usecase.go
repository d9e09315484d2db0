package usecases

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/domain/repositories"
	"memedrop.backend/pkg/logger"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// TokenUsecase handles the token lifecycle: validation, uniqueness checks,
// image ingestion and ownership-gated deletion
type TokenUsecase struct {
	tokenRepo repositories.TokenRepository
	pinner    repositories.Pinner

	// validateCreatorAddress turns on hex-address checking of
	// creator_address at create time. Off by default.
	validateCreatorAddress bool
}

// NewTokenUsecase creates a new token usecase
func NewTokenUsecase(tokenRepo repositories.TokenRepository, pinner repositories.Pinner, validateCreatorAddress bool) *TokenUsecase {
	return &TokenUsecase{
		tokenRepo:              tokenRepo,
		pinner:                 pinner,
		validateCreatorAddress: validateCreatorAddress,
	}
}

// Create validates the input, rejects name/ticker collisions, ingests the
// image when one was supplied and inserts the token. No storage mutation
// happens before every check has passed.
func (u *TokenUsecase) Create(ctx context.Context, input *entities.CreateTokenInput) (*entities.Token, error) {
	if !ValidateRequired(input.Name, input.Ticker, input.CreatorAddress) {
		return nil, domainerrors.BadRequest(MsgMissingRequired)
	}
	if !ValidateTicker(input.Ticker) {
		return nil, domainerrors.BadRequest(MsgInvalidTicker)
	}
	if !ValidateAmount(input.Amount) {
		return nil, domainerrors.BadRequest(MsgInvalidAmount)
	}
	if u.validateCreatorAddress && !common.IsHexAddress(input.CreatorAddress) {
		return nil, domainerrors.BadRequest(MsgInvalidCreatorAddress)
	}

	if err := u.checkNameFree(ctx, input.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if err := u.checkTickerFree(ctx, input.Ticker, uuid.Nil); err != nil {
		return nil, err
	}

	imageURL, err := u.ingestImage(ctx, input)
	if err != nil {
		return nil, err
	}

	token := &entities.Token{
		ID:              uuid.New(),
		Name:            input.Name,
		Ticker:          input.Ticker,
		ImageURL:        imageURL,
		Amount:          input.Amount,
		CreatorAddress:  input.CreatorAddress,
		ContractAddress: nullFrom(input.ContractAddress),
		Website:         nullFrom(input.Website),
	}

	if err := u.tokenRepo.Create(ctx, token); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Lost the race between pre-check and insert; the database
			// constraint is the hard guarantee.
			return nil, duplicateConflict(err)
		}
		logger.Error(ctx, "Error creating token", zap.Error(err))
		return nil, domainerrors.InternalError("Failed to create token", err)
	}
	return token, nil
}

// List returns tokens newest first, honoring the creator filter and window
func (u *TokenUsecase) List(ctx context.Context, filter entities.TokenFilter) ([]*entities.Token, error) {
	tokens, err := u.tokenRepo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "Error fetching tokens", zap.Error(err))
		return nil, domainerrors.InternalError("Failed to fetch tokens", err)
	}
	return tokens, nil
}

// Get fetches one token by id
func (u *TokenUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Token, error) {
	token, err := u.tokenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Token not found")
		}
		logger.Error(ctx, "Error fetching token", zap.Error(err))
		return nil, domainerrors.InternalError("Failed to fetch token", err)
	}
	return token, nil
}

// Update applies partial changes: only fields present in the input are
// touched, and name/ticker changes re-run the uniqueness checks excluding
// this token's own id.
func (u *TokenUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateTokenInput) (*entities.Token, error) {
	existing, err := u.tokenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Token not found")
		}
		logger.Error(ctx, "Error fetching token", zap.Error(err))
		return nil, domainerrors.InternalError("Failed to fetch token", err)
	}

	changes := map[string]interface{}{}
	if input.Name != nil {
		changes["name"] = *input.Name
	}
	if input.Ticker != nil {
		if !ValidateTicker(*input.Ticker) {
			return nil, domainerrors.BadRequest(MsgInvalidTicker)
		}
		changes["ticker"] = *input.Ticker
	}
	if input.ImageURL != nil {
		changes["image_url"] = *input.ImageURL
	}
	if input.Amount != nil {
		if !ValidateAmount(*input.Amount) {
			return nil, domainerrors.BadRequest(MsgInvalidAmount)
		}
		changes["amount"] = *input.Amount
	}
	if input.CreatorAddress != nil {
		changes["creator_address"] = *input.CreatorAddress
	}
	if input.ContractAddress != nil {
		changes["contract_address"] = *input.ContractAddress
	}
	if input.Website != nil {
		changes["website"] = *input.Website
	}

	if input.Name != nil && *input.Name != existing.Name {
		if err := u.checkNameFree(ctx, *input.Name, id); err != nil {
			return nil, err
		}
	}
	if input.Ticker != nil && *input.Ticker != existing.Ticker {
		if err := u.checkTickerFree(ctx, *input.Ticker, id); err != nil {
			return nil, err
		}
	}

	updated, err := u.tokenRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, duplicateConflict(err)
		}
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Token not found")
		}
		logger.Error(ctx, "Error updating token", zap.Error(err))
		return nil, domainerrors.InternalError("Failed to update token", err)
	}
	return updated, nil
}

// duplicateConflict picks the right 409 message for a storage-level
// uniqueness violation that slipped past the pre-checks
func duplicateConflict(err error) *domainerrors.AppError {
	if strings.Contains(err.Error(), "ticker") {
		return domainerrors.Conflict("Token ticker already exists")
	}
	return domainerrors.Conflict("Token name already exists")
}

// Delete removes the token after verifying the caller is its creator
func (u *TokenUsecase) Delete(ctx context.Context, id uuid.UUID, creatorAddress string) error {
	if creatorAddress == "" {
		return domainerrors.BadRequest("Creator address is required for deletion")
	}

	existing, err := u.tokenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Token not found")
		}
		logger.Error(ctx, "Error fetching token", zap.Error(err))
		return domainerrors.InternalError("Failed to fetch token", err)
	}

	if existing.CreatorAddress != creatorAddress {
		return domainerrors.Forbidden("Unauthorized: Only the token creator can delete this token")
	}

	if err := u.tokenRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Token not found")
		}
		logger.Error(ctx, "Error deleting token", zap.Error(err))
		return domainerrors.InternalError("Failed to delete token", err)
	}
	return nil
}

// checkNameFree distinguishes not-found (proceed), found (conflict) and
// storage failure; collapsing the last two cases would either fabricate
// conflicts or silently accept duplicates.
func (u *TokenUsecase) checkNameFree(ctx context.Context, name string, excludeID uuid.UUID) error {
	_, err := u.tokenRepo.FindByName(ctx, name, excludeID)
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return nil
	case err != nil:
		logger.Error(ctx, "Error checking existing name", zap.Error(err))
		return domainerrors.InternalError("Internal server error", err)
	default:
		return domainerrors.Conflict("Token name already exists")
	}
}

func (u *TokenUsecase) checkTickerFree(ctx context.Context, ticker string, excludeID uuid.UUID) error {
	_, err := u.tokenRepo.FindByTicker(ctx, ticker, excludeID)
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return nil
	case err != nil:
		logger.Error(ctx, "Error checking existing ticker", zap.Error(err))
		return domainerrors.InternalError("Internal server error", err)
	default:
		return domainerrors.Conflict("Token ticker already exists")
	}
}

// ingestImage resolves the tagged image source: nothing supplied passes the
// explicit image_url through, otherwise the bytes are decoded and pinned and
// the gateway URL wins.
func (u *TokenUsecase) ingestImage(ctx context.Context, input *entities.CreateTokenInput) (null.String, error) {
	var data []byte

	switch input.Image.Kind {
	case entities.ImageNone:
		return nullFrom(input.ImageURL), nil
	case entities.ImageBinary:
		data = input.Image.Data
	case entities.ImageBase64:
		raw := dataURLPrefix.ReplaceAllString(input.Image.Base64, "")
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			logger.Error(ctx, "Error decoding image payload", zap.Error(err))
			return null.String{}, domainerrors.InternalError("Failed to upload image to IPFS", err)
		}
		data = decoded
	}

	result, err := u.pinner.Pin(ctx, data, repositories.PinMetadata{
		Name: fmt.Sprintf("%s-%s-image", input.Ticker, input.Name),
		KeyValues: map[string]string{
			"tokenName":      input.Name,
			"tokenTicker":    input.Ticker,
			"creatorAddress": input.CreatorAddress,
		},
	})
	if err != nil {
		logger.Error(ctx, "Error uploading image to IPFS", zap.Error(err))
		return null.String{}, domainerrors.InternalError("Failed to upload image to IPFS", err)
	}
	return null.StringFrom(result.URL), nil
}

func nullFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
