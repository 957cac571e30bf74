package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/usecase"
)

type statusCreateRequest struct {
	ClientName string `json:"client_name"`
}

func createStatusHandler(uc *usecase.StatusUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body"))
			return
		}

		check, err := uc.Create(r.Context(), req.ClientName)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, check)
	}
}

func listStatusHandler(uc *usecase.StatusUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, err := uc.List(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, checks)
	}
}
