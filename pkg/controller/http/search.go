package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/domain/types"
	"github.com/rebutly/rebutly/pkg/usecase"
)

type searchResponse struct {
	Objections []*model.Objection `json:"objections"`
	Quotes     []*model.Quote     `json:"quotes"`
}

func searchHandler(uc *usecase.SearchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, err := types.ParseSearchScope(r.URL.Query().Get("type"))
		if err != nil {
			handleError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid search type", goerr.V("cause", err.Error())))
			return
		}

		result, err := uc.Search(r.Context(), r.URL.Query().Get("q"), scope)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, searchResponse{
			Objections: result.Objections,
			Quotes:     result.Quotes,
		})
	}
}
