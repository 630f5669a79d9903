package http

import (
	"net/http"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/interfaces"
)

// handleHealth returns the health check handler. It always answers 200.
func handleHealth(uc interfaces.ClubUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, uc.Health(r.Context()))
	}
}
