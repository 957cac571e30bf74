package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/cli/config"
	"github.com/rebutly/rebutly/pkg/usecase"
	"github.com/rebutly/rebutly/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "seed",
		Usage: "Insert the starter catalog when the store is empty",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			result, err := usecase.NewSeedUseCase(repo).Seed(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to seed")
			}

			if result.Seeded {
				color.New(color.FgGreen).Printf("Seeded %d objections and %d quotes\n", result.Objections, result.Quotes)
			} else {
				color.New(color.FgYellow).Printf("Already populated: %d objections, %d quotes\n", result.Objections, result.Quotes)
			}

			return nil
		},
	}
}
