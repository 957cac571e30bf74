package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/usecase"
	"github.com/rebutly/rebutly/pkg/utils/errutil"
	"github.com/rebutly/rebutly/pkg/utils/logging"
)

type successResponse struct {
	Success bool `json:"success"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}

// handleError maps domain failure kinds to HTTP status codes and logs the
// error. NotFound and validation failures are client errors; a store timeout
// is reported distinctly from other store failures.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidArgument):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case errors.Is(err, context.DeadlineExceeded):
		errutil.HandleHTTP(ctx, w, err, http.StatusServiceUnavailable)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}
