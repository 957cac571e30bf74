package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/usecase"
)

type quoteCreateRequest struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

func listQuotesHandler(uc *usecase.QuoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quotes, err := uc.List(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, quotes)
	}
}

func createQuoteHandler(uc *usecase.QuoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body"))
			return
		}

		quote, err := uc.Create(r.Context(), model.QuoteInput{
			Text:     req.Text,
			Author:   req.Author,
			Category: req.Category,
		})
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, quote)
	}
}
