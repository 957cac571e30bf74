package model

import "strings"

// Field identifies an entity attribute that filter conditions and patches
// refer to. Repositories translate these to their native field paths.
type Field string

const (
	FieldTitle        Field = "title"
	FieldResponses    Field = "responses"
	FieldResponseText Field = "responses.text"
	FieldCategory     Field = "category"
	FieldTags         Field = "tags"
	FieldFavorite     Field = "is_favorite"
	FieldUsageCount   Field = "usage_count"
	FieldUpdatedAt    Field = "updated_at"
	FieldText         Field = "text"
	FieldAuthor       Field = "author"
)

// FieldValuer exposes the comparable values an entity holds for a field.
// Multi-valued fields (tags, response texts) yield one entry per element.
type FieldValuer interface {
	FieldValues(f Field) []any
}

// Condition is a store-agnostic filter expression. Repositories either
// translate it to their native query language or evaluate it with Matches.
type Condition interface {
	Match(e FieldValuer) bool
}

// Matches evaluates cond against e. A nil condition matches everything.
func Matches(e FieldValuer, cond Condition) bool {
	if cond == nil {
		return true
	}
	return cond.Match(e)
}

// Eq matches when any value of the field equals Value exactly.
type Eq struct {
	Field Field
	Value any
}

func (c Eq) Match(e FieldValuer) bool {
	for _, v := range e.FieldValues(c.Field) {
		if v == c.Value {
			return true
		}
	}
	return false
}

// ContainsFold matches when any string value of the field contains Value,
// compared case-insensitively.
type ContainsFold struct {
	Field Field
	Value string
}

func (c ContainsFold) Match(e FieldValuer) bool {
	needle := strings.ToLower(c.Value)
	for _, v := range e.FieldValues(c.Field) {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Or matches when at least one sub-condition matches. An empty Or matches nothing.
type Or []Condition

func (c Or) Match(e FieldValuer) bool {
	for _, sub := range c {
		if sub.Match(e) {
			return true
		}
	}
	return false
}

// And matches when every sub-condition matches. An empty And matches everything.
type And []Condition

func (c And) Match(e FieldValuer) bool {
	for _, sub := range c {
		if !sub.Match(e) {
			return false
		}
	}
	return true
}

// Equalities extracts the exact-match constraints a store can apply natively:
// a bare Eq, or Eq members at the top level of an And. Conditions inside an Or
// are never extracted since they are disjunctive.
func Equalities(cond Condition) []Eq {
	switch c := cond.(type) {
	case Eq:
		return []Eq{c}
	case And:
		var eqs []Eq
		for _, sub := range c {
			if eq, ok := sub.(Eq); ok {
				eqs = append(eqs, eq)
			}
		}
		return eqs
	default:
		return nil
	}
}
