package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"mortgage-parser/domain"
	"mortgage-parser/lexer"
	"mortgage-parser/normalize"
	"mortgage-parser/parser"
	"mortgage-parser/repository"
)

type MortgageService struct {
	cache   repository.CacheRepository
	history repository.QuoteRepository
	logger  *slog.Logger
}

// NewMortgageService creates a new MortgageService with the given repositories.
func NewMortgageService(
	cache repository.CacheRepository,
	history repository.QuoteRepository,
	logger *slog.Logger,
) *MortgageService {
	return &MortgageService{cache: cache, history: history, logger: logger}
}

// Quote normalizes raw, parses it and computes the amortization figures.
// Pipeline failures are returned as *domain.LexError, *domain.SyntaxError or
// *domain.ValueError, unwrapped.
func (s *MortgageService) Quote(ctx context.Context, raw string) (domain.Quote, error) {
	command := normalize.Input(raw)
	s.logger.Debug("normalized input", "raw", raw, "command", command)

	input, err := s.parse(ctx, command)
	if err != nil {
		s.logger.Debug("mortgage command rejected", "command", command, "error", err)
		return domain.Quote{}, err
	}

	result := Calculate(input)
	if !result.Finite() {
		s.logger.Debug("mortgage figures overflow", "command", command)
		return domain.Quote{}, &domain.ValueError{Message: "Mortgage amounts are too large to compute."}
	}

	quote := domain.NewQuote(command, input, result)

	// Guardar la cotización (no crítico si falla)
	if err := s.history.Save(quote); err != nil {
		s.logger.Warn("failed to save quote", "id", quote.ID, "error", err)
	}

	return quote, nil
}

// History returns up to limit recent quotes, newest first.
func (s *MortgageService) History(limit int) ([]domain.Quote, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.history.Recent(limit)
}

// parse turns a normalized command into a MortgageInput, consulting the
// cache first. Only successful parses are cached.
func (s *MortgageService) parse(ctx context.Context, command string) (domain.MortgageInput, error) {
	key := cacheKey(command)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var input domain.MortgageInput
		err := json.Unmarshal([]byte(cached), &input)
		if err == nil {
			s.logger.Debug("parsed input cache hit", "key", key)
			return input, nil
		}
		s.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
	}

	tokens, err := lexer.Tokenize(command)
	if err != nil {
		return domain.MortgageInput{}, err
	}
	s.logger.Debug("tokenized", "command", command, "tokens", tokens)

	input, err := parser.Parse(tokens)
	if err != nil {
		return domain.MortgageInput{}, err
	}

	if encoded, err := json.Marshal(input); err != nil {
		s.logger.Warn("failed to encode parsed input", "error", err)
	} else if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
		s.logger.Warn("failed to cache parsed input", "key", key, "error", err)
	}

	return input, nil
}

func cacheKey(command string) string {
	return inputCacheKeyPrefix + strconv.FormatUint(xxhash.Sum64String(command), 16)
}
