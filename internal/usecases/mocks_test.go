package usecases

import (
	"context"

	"github.com/google/uuid"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/domain/repositories"
)

type tokenRepoStub struct {
	tokens map[uuid.UUID]*entities.Token

	findErr   error
	createErr error
	updateErr error
	listErr   error
	deleteErr error
	getErr    error

	nameLookups   int
	tickerLookups int
	lastFilter    entities.TokenFilter
	lastChanges   map[string]interface{}
}

func newTokenRepoStub() *tokenRepoStub {
	return &tokenRepoStub{tokens: map[uuid.UUID]*entities.Token{}}
}

func (s *tokenRepoStub) Create(_ context.Context, token *entities.Token) error {
	if s.createErr != nil {
		return s.createErr
	}
	cp := *token
	s.tokens[token.ID] = &cp
	return nil
}

func (s *tokenRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Token, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	t, ok := s.tokens[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *tokenRepoStub) FindByName(_ context.Context, name string, excludeID uuid.UUID) (*entities.Token, error) {
	s.nameLookups++
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, t := range s.tokens {
		if t.Name == name && t.ID != excludeID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) FindByTicker(_ context.Context, ticker string, excludeID uuid.UUID) (*entities.Token, error) {
	s.tickerLookups++
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, t := range s.tokens {
		if t.Ticker == ticker && t.ID != excludeID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) List(_ context.Context, filter entities.TokenFilter) ([]*entities.Token, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*entities.Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if filter.CreatorAddress != "" && t.CreatorAddress != filter.CreatorAddress {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (s *tokenRepoStub) Update(_ context.Context, id uuid.UUID, changes map[string]interface{}) (*entities.Token, error) {
	s.lastChanges = changes
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	t, ok := s.tokens[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	if v, ok := changes["name"]; ok {
		t.Name = v.(string)
	}
	if v, ok := changes["ticker"]; ok {
		t.Ticker = v.(string)
	}
	if v, ok := changes["amount"]; ok {
		t.Amount = v.(float64)
	}
	if v, ok := changes["creator_address"]; ok {
		t.CreatorAddress = v.(string)
	}
	cp := *t
	return &cp, nil
}

func (s *tokenRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.tokens[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.tokens, id)
	return nil
}

type pinnerStub struct {
	result   *repositories.PinResult
	err      error
	calls    int
	lastData []byte
	lastMeta repositories.PinMetadata
}

func (s *pinnerStub) Pin(_ context.Context, data []byte, meta repositories.PinMetadata) (*repositories.PinResult, error) {
	s.calls++
	s.lastData = data
	s.lastMeta = meta
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &repositories.PinResult{
		Hash: "bafytest",
		URL:  "https://gateway.pinata.cloud/ipfs/bafytest",
		Size: len(data),
	}, nil
}

type waitlistRepoStub struct {
	entries   map[string]*entities.WaitlistEntry
	findErr   error
	createErr error
}

func newWaitlistRepoStub() *waitlistRepoStub {
	return &waitlistRepoStub{entries: map[string]*entities.WaitlistEntry{}}
}

func (s *waitlistRepoStub) Create(_ context.Context, entry *entities.WaitlistEntry) error {
	if s.createErr != nil {
		return s.createErr
	}
	entry.ID = int64(len(s.entries) + 1)
	cp := *entry
	s.entries[entry.Email] = &cp
	return nil
}

func (s *waitlistRepoStub) FindByEmail(_ context.Context, email string) (*entities.WaitlistEntry, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	e, ok := s.entries[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *e
	return &cp, nil
}
