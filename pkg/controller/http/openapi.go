package http

import (
	_ "embed"
	"net/http"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/logging"
)

// OpenAPISpec describes every JSON route of the service.
// Served at: GET /openapi.yaml
//
//go:embed openapi.yaml
var OpenAPISpec []byte

func handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(OpenAPISpec); err != nil {
		logging.From(r.Context()).Error("Failed to write OpenAPI document", "error", err)
	}
}
