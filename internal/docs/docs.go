// Package docs registers the API description with swag so that
// http-swagger can serve it at /swagger/doc.json.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

//go:embed redoc.html
var redocPage []byte

type document struct{}

func (document) ReadDoc() string { return doc }

func init() {
	swag.Register(swag.Name, document{})
}

// Redoc serves the human-readable rendering of the same document.
func Redoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(redocPage)
}
