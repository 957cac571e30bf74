package usecase

import (
	"github.com/rebutly/rebutly/pkg/domain/model"
)

// collapse reduces an And to its simplest form: nil when no criteria were
// provided, the bare condition when there is only one.
func collapse(conds model.And) model.Condition {
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return conds
	}
}

// buildObjectionListCondition combines the optional listing criteria with
// logical AND. Absent criteria are omitted entirely. An empty search adds no
// text condition, and favoritesOnly=false adds no favorite constraint, so
// non-favorites are not excluded.
func buildObjectionListCondition(category, search string, favoritesOnly bool) model.Condition {
	var conds model.And
	if category != "" {
		conds = append(conds, model.Eq{Field: model.FieldCategory, Value: category})
	}
	if favoritesOnly {
		conds = append(conds, model.Eq{Field: model.FieldFavorite, Value: true})
	}
	if search != "" {
		conds = append(conds, model.Or{
			model.ContainsFold{Field: model.FieldTitle, Value: search},
			model.ContainsFold{Field: model.FieldResponseText, Value: search},
		})
	}
	return collapse(conds)
}

// buildQuoteListCondition is a trivial category equality, or nil when absent.
func buildQuoteListCondition(category string) model.Condition {
	if category == "" {
		return nil
	}
	return model.Eq{Field: model.FieldCategory, Value: category}
}

// buildObjectionSearchCondition matches the query case-insensitively against
// title, any response text, or any tag.
func buildObjectionSearchCondition(query string) model.Condition {
	return model.Or{
		model.ContainsFold{Field: model.FieldTitle, Value: query},
		model.ContainsFold{Field: model.FieldResponseText, Value: query},
		model.ContainsFold{Field: model.FieldTags, Value: query},
	}
}

// buildQuoteSearchCondition matches the query case-insensitively against
// quote text or author.
func buildQuoteSearchCondition(query string) model.Condition {
	return model.Or{
		model.ContainsFold{Field: model.FieldText, Value: query},
		model.ContainsFold{Field: model.FieldAuthor, Value: query},
	}
}
