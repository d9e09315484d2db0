package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
)

func newTokenRepo(t *testing.T) *TokenRepository {
	db := newTestDB(t)
	createTokenTable(t, db)
	return NewTokenRepository(db)
}

func makeToken(name, ticker, creator string, createdAt time.Time) *entities.Token {
	return &entities.Token{
		ID:             uuid.New(),
		Name:           name,
		Ticker:         ticker,
		Amount:         100,
		CreatorAddress: creator,
		CreatedAt:      createdAt,
	}
}

func TestTokenRepository_CreateAndGet(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	token := makeToken("Test Token", "TEST", "0xabc", time.Time{})
	token.Website = null.StringFrom("https://test.example")
	require.NoError(t, repo.Create(ctx, token))
	require.False(t, token.CreatedAt.IsZero(), "created_at assigned by storage")

	got, err := repo.GetByID(ctx, token.ID)
	require.NoError(t, err)
	require.Equal(t, "Test Token", got.Name)
	require.Equal(t, "TEST", got.Ticker)
	require.Equal(t, 100.0, got.Amount)
	require.Equal(t, "https://test.example", got.Website.String)
	require.False(t, got.ImageURL.Valid)
}

func TestTokenRepository_GetByIDNotFound(t *testing.T) {
	repo := newTokenRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTokenRepository_CreateDuplicate(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeToken("Test Token", "TEST", "0xabc", time.Time{})))

	err := repo.Create(ctx, makeToken("Test Token", "OTHER", "0xabc", time.Time{}))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	err = repo.Create(ctx, makeToken("Other Token", "TEST", "0xabc", time.Time{}))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestTokenRepository_FindByNameExcludesID(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	token := makeToken("Test Token", "TEST", "0xabc", time.Time{})
	require.NoError(t, repo.Create(ctx, token))

	found, err := repo.FindByName(ctx, "Test Token", uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, token.ID, found.ID)

	_, err = repo.FindByName(ctx, "Test Token", token.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound, "own row is excluded")

	_, err = repo.FindByName(ctx, "Missing", uuid.Nil)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTokenRepository_FindByTicker(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	token := makeToken("Test Token", "TEST", "0xabc", time.Time{})
	require.NoError(t, repo.Create(ctx, token))

	found, err := repo.FindByTicker(ctx, "TEST", uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, token.ID, found.ID)

	// Exact match only
	_, err = repo.FindByTicker(ctx, "TES", uuid.Nil)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTokenRepository_ListOrderingAndFilter(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	oldest := makeToken("A", "AAA", "0xaaa", base)
	middle := makeToken("B", "BBB", "0xbbb", base.Add(time.Hour))
	newest := makeToken("C", "CCC", "0xaaa", base.Add(2*time.Hour))
	for _, token := range []*entities.Token{oldest, middle, newest} {
		require.NoError(t, repo.Create(ctx, token))
	}

	all, err := repo.List(ctx, entities.TokenFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "C", all[0].Name, "newest first")
	require.Equal(t, "B", all[1].Name)
	require.Equal(t, "A", all[2].Name)

	mine, err := repo.List(ctx, entities.TokenFilter{CreatorAddress: "0xaaa"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, token := range mine {
		require.Equal(t, "0xaaa", token.CreatorAddress)
	}
}

func TestTokenRepository_ListWindow(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"A", "B", "C", "D", "E"}
	tickers := []string{"AAA", "BBB", "CCC", "DDD", "EEE"}
	for i := range names {
		require.NoError(t, repo.Create(ctx, makeToken(names[i], tickers[i], "0xabc", base.Add(time.Duration(i)*time.Hour))))
	}

	window, err := repo.List(ctx, entities.TokenFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, window, 2)
	require.Equal(t, "D", window[0].Name)
	require.Equal(t, "C", window[1].Name)
}

func TestTokenRepository_Update(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	token := makeToken("Test Token", "TEST", "0xabc", time.Time{})
	require.NoError(t, repo.Create(ctx, token))

	updated, err := repo.Update(ctx, token.ID, map[string]interface{}{"amount": 250.0})
	require.NoError(t, err)
	require.Equal(t, 250.0, updated.Amount)
	require.Equal(t, "Test Token", updated.Name, "untouched fields survive")
	require.Equal(t, "TEST", updated.Ticker)

	_, err = repo.Update(ctx, uuid.New(), map[string]interface{}{"amount": 1.0})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTokenRepository_UpdateDuplicate(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	a := makeToken("Token A", "AAA", "0xabc", time.Time{})
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, makeToken("Token B", "BBB", "0xabc", time.Time{})))

	_, err := repo.Update(ctx, a.ID, map[string]interface{}{"name": "Token B"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestTokenRepository_Delete(t *testing.T) {
	repo := newTokenRepo(t)
	ctx := context.Background()

	token := makeToken("Test Token", "TEST", "0xabc", time.Time{})
	require.NoError(t, repo.Create(ctx, token))

	require.NoError(t, repo.Delete(ctx, token.ID))

	_, err := repo.GetByID(ctx, token.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, token.ID), domainerrors.ErrNotFound)
}
