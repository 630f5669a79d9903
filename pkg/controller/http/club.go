package http

import (
	"net/http"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// ClubHandler serves the /api routes
type ClubHandler struct {
	clubUC  interfaces.ClubUseCase
	failure *failureWriter
}

// NewClubHandler creates a new ClubHandler
func NewClubHandler(clubUC interfaces.ClubUseCase, failure *failureWriter) *ClubHandler {
	return &ClubHandler{
		clubUC:  clubUC,
		failure: failure,
	}
}

// Club handles GET /api/club
func (h *ClubHandler) Club(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubUC.ClubInfo(r.Context())
	if err != nil {
		h.failure.Write(w, r, goerr.Wrap(err, "failed to get club info"))
		return
	}
	writeJSON(w, r, http.StatusOK, club)
}

// Events handles GET /api/events
func (h *ClubHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.clubUC.UpcomingEvents(r.Context())
	if err != nil {
		h.failure.Write(w, r, goerr.Wrap(err, "failed to get upcoming events"))
		return
	}
	writeJSON(w, r, http.StatusOK, events)
}

// Aircraft handles GET /api/aircraft
func (h *ClubHandler) Aircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.clubUC.RecommendedAircraft(r.Context())
	if err != nil {
		h.failure.Write(w, r, goerr.Wrap(err, "failed to get recommended aircraft"))
		return
	}
	writeJSON(w, r, http.StatusOK, aircraft)
}
