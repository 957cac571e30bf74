package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/usecase"
)

type objectionCreateRequest struct {
	Title     string   `json:"title"`
	Responses []string `json:"responses"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
}

// objectionUpdateRequest uses pointer fields so that absent keys are
// distinguishable from provided ones. Absent fields are left untouched.
type objectionUpdateRequest struct {
	Title      *string   `json:"title"`
	Responses  *[]string `json:"responses"`
	Category   *string   `json:"category"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"is_favorite"`
}

func listObjectionsHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favoritesOnly, _ := strconv.ParseBool(r.URL.Query().Get("favorites_only"))
		input := usecase.ListObjectionsInput{
			Category:      r.URL.Query().Get("category"),
			Search:        r.URL.Query().Get("search"),
			FavoritesOnly: favoritesOnly,
		}

		objections, err := uc.List(r.Context(), input)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, objections)
	}
}

func createObjectionHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req objectionCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body"))
			return
		}

		objection, err := uc.Create(r.Context(), model.ObjectionInput{
			Title:     req.Title,
			Responses: req.Responses,
			Category:  req.Category,
			Tags:      req.Tags,
		})
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, objection)
	}
}

func getObjectionHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ObjectionID(chi.URLParam(r, "id"))

		objection, err := uc.Get(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, objection)
	}
}

func updateObjectionHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ObjectionID(chi.URLParam(r, "id"))

		var req objectionUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body"))
			return
		}

		objection, err := uc.Update(r.Context(), id, &model.ObjectionPatch{
			Title:      req.Title,
			Responses:  req.Responses,
			Category:   req.Category,
			Tags:       req.Tags,
			IsFavorite: req.IsFavorite,
		})
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, objection)
	}
}

func deleteObjectionHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ObjectionID(chi.URLParam(r, "id"))

		if err := uc.Delete(r.Context(), id); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

func toggleFavoriteHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ObjectionID(chi.URLParam(r, "id"))

		objection, err := uc.ToggleFavorite(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, objection)
	}
}

func incrementUsageHandler(uc *usecase.ObjectionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ObjectionID(chi.URLParam(r, "id"))

		objection, err := uc.IncrementUsage(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, objection)
	}
}
