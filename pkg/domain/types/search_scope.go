package types

import "github.com/m-mizutani/goerr/v2"

// SearchScope selects which collections a search runs against.
type SearchScope string

const (
	ScopeAll        SearchScope = "all"
	ScopeObjections SearchScope = "objections"
	ScopeQuotes     SearchScope = "quotes"
)

// ParseSearchScope converts a request parameter into a SearchScope.
// An empty value means "all".
func ParseSearchScope(s string) (SearchScope, error) {
	switch SearchScope(s) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeObjections:
		return ScopeObjections, nil
	case ScopeQuotes:
		return ScopeQuotes, nil
	default:
		return "", goerr.New("invalid search scope, must be one of all/objections/quotes", goerr.V("type", s))
	}
}

// IncludesObjections returns true when objections should be searched.
func (s SearchScope) IncludesObjections() bool {
	return s == ScopeAll || s == ScopeObjections
}

// IncludesQuotes returns true when quotes should be searched.
func (s SearchScope) IncludesQuotes() bool {
	return s == ScopeAll || s == ScopeQuotes
}
