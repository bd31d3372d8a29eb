package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service  usecase.CommentService
	pageSize int
	log      *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, pageSize int, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service:  service,
		pageSize: pageSize,
		log:      log.With(zap.String("handler", "comment")),
	}
}

// List handles GET /api/comments?review=
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), r.URL.Query().Get("review"), request.NewPaginatedRequest(r, h.pageSize))
	if err != nil {
		handleServiceError(w, h.log, err, "list comments")
		return
	}
	utils.ResponseSuccess(w, page)
}

// Retrieve handles GET /api/comments/{id}
func (h *CommentHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	comment, err := h.service.Retrieve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "retrieve comment")
		return
	}
	utils.ResponseSuccess(w, comment)
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.Create(r.Context(), usecase.CallerFromContext(r.Context()), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create comment")
		return
	}
	utils.ResponseCreated(w, comment)
}

// Update handles PUT /api/comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.Update(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update comment")
		return
	}
	utils.ResponseSuccess(w, comment)
}

// Patch handles PATCH /api/comments/{id}
func (h *CommentHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req request.PatchCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.Patch(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch comment")
		return
	}
	utils.ResponseSuccess(w, comment)
}

// Delete handles DELETE /api/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete comment")
		return
	}
	utils.ResponseNoContent(w)
}
