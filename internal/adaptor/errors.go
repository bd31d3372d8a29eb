package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// handleServiceError maps usecase error kinds to status codes. Anything
// without a kind is a 500 and gets logged with the operation name.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	detail := usecase.ErrorDetail(err)
	fields := usecase.ErrorFields(err)

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Debug(operation+" validation failed", zap.Any("errors", fields))
		utils.ResponseBadRequest(w, detail, fields)

	case errors.Is(err, usecase.ErrUnauthenticated),
		errors.Is(err, usecase.ErrInvalidCredentials):
		log.Debug(operation+" unauthenticated", zap.String("detail", detail))
		utils.ResponseUnauthorized(w, detail)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden", zap.String("detail", detail))
		utils.ResponseForbidden(w, detail)

	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, detail)

	case errors.Is(err, usecase.ErrConflict):
		log.Debug(operation+" conflict", zap.String("detail", detail))
		utils.ResponseError(w, http.StatusConflict, detail, fields)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "A server error occurred.")
	}
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.ResponseBadRequest(w, "Invalid input.", map[string]string{
			typeErr.Field: fmt.Sprintf("Expected %s.", typeErr.Type.String()),
		})
		return false
	}

	utils.ResponseBadRequest(w, "JSON parse error - "+err.Error(), nil)
	return false
}

// pathParam returns the decoded chi URL parameter. Titles may arrive
// percent-encoded when they contain reserved characters.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
