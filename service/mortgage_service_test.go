package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-parser/domain"
	"mortgage-parser/repository"
)

type MockQuoteRepository struct {
	SaveCalled bool
	ForceError bool
}

func (m *MockQuoteRepository) Save(quote domain.Quote) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func (m *MockQuoteRepository) Recent(limit int) ([]domain.Quote, error) {
	return nil, nil
}

type countingCache struct {
	*repository.MemoryCache
	gets, sets int
}

func (c *countingCache) Get(ctx context.Context, key string) (string, bool) {
	c.gets++
	return c.MemoryCache.Get(ctx, key)
}

func (c *countingCache) Set(ctx context.Context, key string, value string) error {
	c.sets++
	return c.MemoryCache.Set(ctx, key, value)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQuote_CanonicalCommand(t *testing.T) {
	history := &MockQuoteRepository{}
	service := NewMortgageService(repository.NewMemoryCache(0), history, discardLogger())

	quote, err := service.Quote(context.Background(), "price 450000, down 15%, rate 7%, term 30")
	require.NoError(t, err)

	assert.Equal(t, "price 450000, down 15%, rate 7%, term 30", quote.Command)
	assert.NotEmpty(t, quote.ID)
	assert.True(t, decimal.RequireFromString("67500").Equal(quote.DownPaymentAmount))
	assert.True(t, decimal.RequireFromString("382500").Equal(quote.LoanAmount))
	assert.True(t, decimal.RequireFromString("2544.78").Equal(quote.MonthlyPayment), quote.MonthlyPayment.String())
	assert.Equal(t, 360, quote.PaymentCount)
	assert.True(t, history.SaveCalled)
}

func TestQuote_NormalizesBareNumbers(t *testing.T) {
	service := NewMortgageService(repository.NewMemoryCache(0), &MockQuoteRepository{}, discardLogger())

	quote, err := service.Quote(context.Background(), "300000 10 6 15")
	require.NoError(t, err)

	assert.Equal(t, "price 300000, down 10%, rate 6%, term 15", quote.Command)
	assert.Equal(t, 15, quote.Input.TermYears())
}

func TestQuote_HistoryFailureIsNotFatal(t *testing.T) {
	history := &MockQuoteRepository{ForceError: true}
	service := NewMortgageService(repository.NewMemoryCache(0), history, discardLogger())

	_, err := service.Quote(context.Background(), "price 1000, down 0%, rate 1%, term 1")
	require.NoError(t, err)
	assert.True(t, history.SaveCalled)
}

func TestQuote_ErrorsKeepTheirKind(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.ErrorKind
	}{
		{"lexical", "price $450000 down 15% rate 7% term 30", domain.KindLexical},
		{"syntax", "price 300000, down 10, rate 6%, term 15", domain.KindSyntax},
		{"value", "price 300000, down 100%, rate 6%, term 15", domain.KindValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &MockQuoteRepository{}
			service := NewMortgageService(repository.NewMemoryCache(0), history, discardLogger())

			_, err := service.Quote(context.Background(), tt.raw)
			require.Error(t, err)

			kind, ok := domain.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, kind)
			assert.False(t, history.SaveCalled, "history must not be written on failure")
		})
	}
}

func TestQuote_CachesParsedInput(t *testing.T) {
	cache := &countingCache{MemoryCache: repository.NewMemoryCache(0)}
	service := NewMortgageService(cache, &MockQuoteRepository{}, discardLogger())
	ctx := context.Background()

	first, err := service.Quote(ctx, "price 200000 down 20% rate 5% term 30")
	require.NoError(t, err)
	second, err := service.Quote(ctx, "PRICE 200000 DOWN 20% RATE 5% TERM 30")
	require.NoError(t, err)

	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.Input, second.Input)
	assert.True(t, first.MonthlyPayment.Equal(second.MonthlyPayment))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestQuote_UnreadableCacheEntryIsReparsed(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	ctx := context.Background()
	command := "price 200000, down 20%, rate 5%, term 30"
	require.NoError(t, cache.Set(ctx, cacheKey(command), `{"price":0}`))

	service := NewMortgageService(cache, &MockQuoteRepository{}, discardLogger())

	quote, err := service.Quote(ctx, command)
	require.NoError(t, err)
	assert.Equal(t, 200000.0, quote.Input.Price())
}

func TestQuote_FailedParseIsNotCached(t *testing.T) {
	cache := &countingCache{MemoryCache: repository.NewMemoryCache(0)}
	service := NewMortgageService(cache, &MockQuoteRepository{}, discardLogger())

	_, err := service.Quote(context.Background(), "price 0, down 20%, rate 5%, term 30")
	require.Error(t, err)
	assert.Equal(t, 0, cache.sets)
}

func TestHistory_DefaultLimit(t *testing.T) {
	history := repository.NewQuoteRepositoryMemory(50)
	service := NewMortgageService(repository.NewMemoryCache(0), history, discardLogger())
	ctx := context.Background()

	for i := 0; i < DefaultHistoryLimit+5; i++ {
		_, err := service.Quote(ctx, "price 100000, down 10%, rate 5%, term 10")
		require.NoError(t, err)
	}

	got, err := service.History(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultHistoryLimit)

	got, err = service.History(3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestQuote_VeryLongTerm(t *testing.T) {
	history := &MockQuoteRepository{}
	service := NewMortgageService(repository.NewMemoryCache(0), history, discardLogger())

	quote, err := service.Quote(context.Background(), "price 100000, down 10%, rate 7%, term 20000")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("525").Equal(quote.MonthlyPayment), quote.MonthlyPayment.String())
	assert.Equal(t, 240000, quote.PaymentCount)
	assert.True(t, history.SaveCalled)
}

func TestQuote_OverflowingAmountsAreRejected(t *testing.T) {
	history := &MockQuoteRepository{}
	service := NewMortgageService(repository.NewMemoryCache(0), history, discardLogger())

	// 1e308 is a valid price but its total paid overflows float64
	command := "price 1" + strings.Repeat("0", 308) + ", down 0%, rate 7%, term 30"

	var err error
	require.NotPanics(t, func() {
		_, err = service.Quote(context.Background(), command)
	})
	require.Error(t, err)

	var valueErr *domain.ValueError
	require.True(t, errors.As(err, &valueErr), "got %T: %v", err, err)
	assert.Equal(t, "Mortgage amounts are too large to compute.", valueErr.Message)
	assert.False(t, history.SaveCalled)
}
