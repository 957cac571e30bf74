package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/usecase"
)

func queryTestObjection(title, category string, favorite bool, tags []string, responses ...string) *model.Objection {
	o := model.NewObjection(model.ObjectionInput{
		Title:     title,
		Responses: responses,
		Category:  category,
		Tags:      tags,
	}, time.Now().UTC())
	o.IsFavorite = favorite
	return o
}

func TestBuildObjectionListCondition(t *testing.T) {
	priceFav := queryTestObjection("Too expensive", "Price", true, []string{"price"}, "Let's discuss ROI")
	priceNonFav := queryTestObjection("No budget", "Price", false, nil, "Whose budget would it be?")
	timing := queryTestObjection("Call me next quarter", "Timing", false, nil)

	t.Run("no criteria yields nil condition", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("", "", false)
		gt.Value(t, cond).Nil()
	})

	t.Run("empty search adds no text constraint", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("Price", "", false)
		gt.Bool(t, model.Matches(priceFav, cond)).True()
		gt.Bool(t, model.Matches(priceNonFav, cond)).True()
		gt.Bool(t, model.Matches(timing, cond)).False()
	})

	t.Run("favorites only excludes non-favorites", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("", "", true)
		gt.Bool(t, model.Matches(priceFav, cond)).True()
		gt.Bool(t, model.Matches(priceNonFav, cond)).False()
	})

	t.Run("favoritesOnly false does not exclude favorites", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("Price", "", false)
		gt.Bool(t, model.Matches(priceFav, cond)).True()
	})

	t.Run("search matches title or response text", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("", "budget", false)
		gt.Bool(t, model.Matches(priceNonFav, cond)).True() // title and response both hit
		gt.Bool(t, model.Matches(priceFav, cond)).False()
		gt.Bool(t, model.Matches(timing, cond)).False()

		cond = usecase.BuildObjectionListCondition("", "ROI", false)
		gt.Bool(t, model.Matches(priceFav, cond)).True()
	})

	t.Run("list search does not match tags", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("", "price", false)
		// "price" occurs only as a tag of priceFav, not in its title or responses
		gt.Bool(t, model.Matches(priceFav, cond)).False()
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		cond := usecase.BuildObjectionListCondition("Price", "expensive", true)
		gt.Bool(t, model.Matches(priceFav, cond)).True()
		gt.Bool(t, model.Matches(priceNonFav, cond)).False()
		gt.Bool(t, model.Matches(timing, cond)).False()
	})
}

func TestBuildQuoteListCondition(t *testing.T) {
	gt.Value(t, usecase.BuildQuoteListCondition("")).Nil()

	quote := model.NewQuote(model.QuoteInput{Text: "t", Author: "a", Category: "Motivation"}, time.Now().UTC())
	cond := usecase.BuildQuoteListCondition("Motivation")
	gt.Bool(t, model.Matches(quote, cond)).True()
	gt.Bool(t, model.Matches(quote, usecase.BuildQuoteListCondition("Objections"))).False()
}

func TestBuildObjectionSearchCondition(t *testing.T) {
	o := queryTestObjection("Send me some information", "Stalling", false, []string{"brush-off"}, "Happy to.")

	gt.Bool(t, model.Matches(o, usecase.BuildObjectionSearchCondition("INFORMATION"))).True()
	gt.Bool(t, model.Matches(o, usecase.BuildObjectionSearchCondition("happy"))).True()
	gt.Bool(t, model.Matches(o, usecase.BuildObjectionSearchCondition("brush"))).True()
	gt.Bool(t, model.Matches(o, usecase.BuildObjectionSearchCondition("pricing"))).False()
}

func TestBuildQuoteSearchCondition(t *testing.T) {
	q := model.NewQuote(model.QuoteInput{Text: "Keep going.", Author: "Sam Levenson"}, time.Now().UTC())

	gt.Bool(t, model.Matches(q, usecase.BuildQuoteSearchCondition("keep"))).True()
	gt.Bool(t, model.Matches(q, usecase.BuildQuoteSearchCondition("LEVENSON"))).True()
	gt.Bool(t, model.Matches(q, usecase.BuildQuoteSearchCondition("ziglar"))).False()
}
