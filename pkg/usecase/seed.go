package usecase

import (
	"context"
	_ "embed"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/utils/logging"
)

//go:embed seed_catalog.toml
var seedCatalogTOML []byte

type seedCatalog struct {
	Objections []seedObjection `toml:"objection"`
	Quotes     []seedQuote     `toml:"quote"`
}

type seedObjection struct {
	Title     string   `toml:"title"`
	Category  string   `toml:"category"`
	Tags      []string `toml:"tags"`
	Responses []string `toml:"responses"`
}

type seedQuote struct {
	Text     string `toml:"text"`
	Author   string `toml:"author"`
	Category string `toml:"category"`
}

// SeedUseCase populates empty collections with the embedded starter catalog.
type SeedUseCase struct {
	repo interfaces.Repository
}

func NewSeedUseCase(repo interfaces.Repository) *SeedUseCase {
	return &SeedUseCase{repo: repo}
}

// SeedResult reports whether the catalog was inserted and the resulting
// collection counts.
type SeedResult struct {
	Seeded     bool `json:"seeded"`
	Objections int  `json:"objections"`
	Quotes     int  `json:"quotes"`
}

// Seed inserts the starter catalog when both collections are empty; otherwise
// it is a no-op reporting the current counts. The check-then-insert is not
// atomic against concurrent seeding, so this use case is the single
// initializer path (the HTTP endpoint and the seed CLI command both call it).
func (uc *SeedUseCase) Seed(ctx context.Context) (*SeedResult, error) {
	objectionCount, err := uc.repo.Objection().Count(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count objections")
	}
	quoteCount, err := uc.repo.Quote().Count(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count quotes")
	}

	if objectionCount > 0 && quoteCount > 0 {
		logging.From(ctx).Info("Collections already populated, skipping seed",
			"objections", objectionCount,
			"quotes", quoteCount,
		)
		return &SeedResult{Seeded: false, Objections: objectionCount, Quotes: quoteCount}, nil
	}

	var catalog seedCatalog
	if err := toml.Unmarshal(seedCatalogTOML, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to decode seed catalog")
	}

	now := time.Now().UTC()

	objections := make([]*model.Objection, 0, len(catalog.Objections))
	for _, entry := range catalog.Objections {
		objections = append(objections, model.NewObjection(model.ObjectionInput{
			Title:     entry.Title,
			Responses: entry.Responses,
			Category:  entry.Category,
			Tags:      entry.Tags,
		}, now))
	}
	if err := uc.repo.Objection().CreateMany(ctx, objections); err != nil {
		return nil, goerr.Wrap(err, "failed to insert seed objections")
	}

	quotes := make([]*model.Quote, 0, len(catalog.Quotes))
	for _, entry := range catalog.Quotes {
		quotes = append(quotes, model.NewQuote(model.QuoteInput{
			Text:     entry.Text,
			Author:   entry.Author,
			Category: entry.Category,
		}, now))
	}
	if err := uc.repo.Quote().CreateMany(ctx, quotes); err != nil {
		return nil, goerr.Wrap(err, "failed to insert seed quotes")
	}

	logging.From(ctx).Info("Inserted seed catalog",
		"objections", len(objections),
		"quotes", len(quotes),
	)

	return &SeedResult{Seeded: true, Objections: len(objections), Quotes: len(quotes)}, nil
}
