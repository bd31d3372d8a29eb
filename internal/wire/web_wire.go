package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWeb(r chi.Router, webHandler *adaptor.WebHandler) {
	r.Get("/", webHandler.Home)
	r.Get("/reviews", webHandler.List)
	r.Get("/reviews/{id}", webHandler.Detail)
	r.Get("/search", webHandler.Search)
}
