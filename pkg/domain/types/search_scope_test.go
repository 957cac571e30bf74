package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/domain/types"
)

func TestParseSearchScope(t *testing.T) {
	scope, err := types.ParseSearchScope("")
	gt.NoError(t, err)
	gt.Value(t, scope).Equal(types.ScopeAll)

	scope, err = types.ParseSearchScope("objections")
	gt.NoError(t, err)
	gt.Value(t, scope).Equal(types.ScopeObjections)

	scope, err = types.ParseSearchScope("quotes")
	gt.NoError(t, err)
	gt.Value(t, scope).Equal(types.ScopeQuotes)

	_, err = types.ParseSearchScope("everything")
	gt.Error(t, err)
}

func TestSearchScopeIncludes(t *testing.T) {
	gt.Bool(t, types.ScopeAll.IncludesObjections()).True()
	gt.Bool(t, types.ScopeAll.IncludesQuotes()).True()
	gt.Bool(t, types.ScopeObjections.IncludesObjections()).True()
	gt.Bool(t, types.ScopeObjections.IncludesQuotes()).False()
	gt.Bool(t, types.ScopeQuotes.IncludesObjections()).False()
	gt.Bool(t, types.ScopeQuotes.IncludesQuotes()).True()
}
