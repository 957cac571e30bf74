package http

import (
	"net/http"

	"github.com/rebutly/rebutly/pkg/usecase"
)

func initializeDataHandler(uc *usecase.SeedUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.Seed(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, result)
	}
}
