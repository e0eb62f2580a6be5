package repository

import "mortgage-parser/domain"

type QuoteRepository interface {
	Save(quote domain.Quote) error
	Recent(limit int) ([]domain.Quote, error)
}
