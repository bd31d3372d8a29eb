package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service  usecase.ProfileService
	pageSize int
	log      *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, pageSize int, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		pageSize: pageSize,
		log:      log.With(zap.String("handler", "profile")),
	}
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), usecase.CallerFromContext(r.Context()), request.NewPaginatedRequest(r, h.pageSize))
	if err != nil {
		handleServiceError(w, h.log, err, "list profiles")
		return
	}
	utils.ResponseSuccess(w, page)
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.Create(r.Context(), usecase.CallerFromContext(r.Context()), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create profile")
		return
	}
	utils.ResponseCreated(w, profile)
}

func (h *ProfileHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Retrieve(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "retrieve profile")
		return
	}
	utils.ResponseSuccess(w, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *ProfileHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *ProfileHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	var req request.ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.Update(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"), &req, partial)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}
	utils.ResponseSuccess(w, profile)
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete profile")
		return
	}
	utils.ResponseNoContent(w)
}
