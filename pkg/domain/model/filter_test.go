package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

func testObjection() *model.Objection {
	return model.NewObjection(model.ObjectionInput{
		Title:     "It's too expensive",
		Responses: []string{"Let's discuss ROI", "Compare total cost"},
		Category:  "Price",
		Tags:      []string{"price", "budget"},
	}, time.Now().UTC())
}

func TestEqMatch(t *testing.T) {
	o := testObjection()

	gt.Bool(t, model.Eq{Field: model.FieldCategory, Value: "Price"}.Match(o)).True()
	gt.Bool(t, model.Eq{Field: model.FieldCategory, Value: "price"}.Match(o)).False()
	gt.Bool(t, model.Eq{Field: model.FieldFavorite, Value: false}.Match(o)).True()
	gt.Bool(t, model.Eq{Field: model.FieldFavorite, Value: true}.Match(o)).False()
	gt.Bool(t, model.Eq{Field: model.FieldTags, Value: "budget"}.Match(o)).True()
}

func TestContainsFoldMatch(t *testing.T) {
	o := testObjection()

	gt.Bool(t, model.ContainsFold{Field: model.FieldTitle, Value: "EXPENSIVE"}.Match(o)).True()
	gt.Bool(t, model.ContainsFold{Field: model.FieldResponseText, Value: "roi"}.Match(o)).True()
	gt.Bool(t, model.ContainsFold{Field: model.FieldTags, Value: "BUD"}.Match(o)).True()
	gt.Bool(t, model.ContainsFold{Field: model.FieldTitle, Value: "cheap"}.Match(o)).False()

	// non-string fields never substring-match
	gt.Bool(t, model.ContainsFold{Field: model.FieldFavorite, Value: "false"}.Match(o)).False()
}

func TestOrAndMatch(t *testing.T) {
	o := testObjection()

	or := model.Or{
		model.ContainsFold{Field: model.FieldTitle, Value: "nothing"},
		model.ContainsFold{Field: model.FieldResponseText, Value: "total cost"},
	}
	gt.Bool(t, or.Match(o)).True()
	gt.Bool(t, model.Or{}.Match(o)).False()

	and := model.And{
		model.Eq{Field: model.FieldCategory, Value: "Price"},
		or,
	}
	gt.Bool(t, and.Match(o)).True()
	gt.Bool(t, model.And{}.Match(o)).True()

	miss := model.And{
		model.Eq{Field: model.FieldCategory, Value: "Timing"},
		or,
	}
	gt.Bool(t, miss.Match(o)).False()
}

func TestMatchesNilCondition(t *testing.T) {
	gt.Bool(t, model.Matches(testObjection(), nil)).True()
}

func TestQuoteFieldValues(t *testing.T) {
	q := model.NewQuote(model.QuoteInput{
		Text:     "Keep going.",
		Author:   "Sam Levenson",
		Category: "Motivation",
	}, time.Now().UTC())

	gt.Bool(t, model.ContainsFold{Field: model.FieldAuthor, Value: "levenson"}.Match(q)).True()
	gt.Bool(t, model.ContainsFold{Field: model.FieldText, Value: "GOING"}.Match(q)).True()
	gt.Bool(t, model.Eq{Field: model.FieldCategory, Value: "Motivation"}.Match(q)).True()
}

func TestEqualities(t *testing.T) {
	catEq := model.Eq{Field: model.FieldCategory, Value: "Price"}
	favEq := model.Eq{Field: model.FieldFavorite, Value: true}
	search := model.Or{
		model.ContainsFold{Field: model.FieldTitle, Value: "x"},
	}

	gt.Array(t, model.Equalities(catEq)).Equal([]model.Eq{catEq})
	gt.Array(t, model.Equalities(model.And{catEq, favEq, search})).Equal([]model.Eq{catEq, favEq})
	gt.Value(t, model.Equalities(search)).Nil()
	gt.Value(t, model.Equalities(nil)).Nil()
}
