package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/repository/memory"
	"github.com/rebutly/rebutly/pkg/usecase"
)

func TestQuoteCreateAndList(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	created, err := uc.Quote.Create(ctx, model.QuoteInput{
		Text:     "Every sale has five basic obstacles.",
		Author:   "Zig Ziglar",
		Category: "Objections",
	})
	gt.NoError(t, err).Required()
	gt.String(t, string(created.ID)).NotEqual("")

	_, err = uc.Quote.Create(ctx, model.QuoteInput{
		Text:   "Approach each customer with the idea of helping them.",
		Author: "Brian Tracy",
	})
	gt.NoError(t, err).Required()

	all, err := uc.Quote.List(ctx, "")
	gt.NoError(t, err).Required()
	gt.Array(t, all).Length(2)

	objections, err := uc.Quote.List(ctx, "Objections")
	gt.NoError(t, err).Required()
	gt.Array(t, objections).Length(1)
	gt.Value(t, objections[0].Author).Equal("Zig Ziglar")
}

func TestQuoteCreateValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Quote.Create(ctx, model.QuoteInput{Author: "Zig Ziglar"})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()

	_, err = uc.Quote.Create(ctx, model.QuoteInput{Text: "Keep going."})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
}
