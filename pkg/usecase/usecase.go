package usecase

import (
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
)

const (
	// maxListResults caps plain listing endpoints. This is a hard truncation,
	// not pagination.
	maxListResults = 1000
	// maxSearchResults caps each search scope independently.
	maxSearchResults = 100
)

type UseCases struct {
	repo      interfaces.Repository
	Objection *ObjectionUseCase
	Quote     *QuoteUseCase
	Search    *SearchUseCase
	Seed      *SeedUseCase
	Status    *StatusUseCase
}

func New(repo interfaces.Repository) *UseCases {
	return &UseCases{
		repo:      repo,
		Objection: NewObjectionUseCase(repo),
		Quote:     NewQuoteUseCase(repo),
		Search:    NewSearchUseCase(repo),
		Seed:      NewSeedUseCase(repo),
		Status:    NewStatusUseCase(repo),
	}
}
