package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	controller "github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/controller/http"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func get(t *testing.T, handler http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if out != nil {
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestClubEndpoint(t *testing.T) {
	handler := newHandler(t, newClubUseCase(t))

	var club model.ClubInfo
	w := get(t, handler, "/api/club", &club)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, club).Equal(model.ClubInfo{
		Name:        "F3A Pattern Aerobatics RC Club",
		Description: "Precision aerobatic flying with radio-controlled aircraft",
		Location:    "Pacific Northwest",
		Founded:     "1985",
		Website:     "https://f3a-pattern-aerobatics-rc.club",
		Activities: []string{
			"F3A Pattern Competition",
			"Training Workshops",
			"Monthly Fly-ins",
			"Equipment Reviews",
		},
		Contact: model.Contact{
			Email:    "info@f3a-pattern-aerobatics-rc.club",
			Meetings: "First Saturday of each month",
		},
	})
}

func TestEventsEndpoint(t *testing.T) {
	handler := newHandler(t, newClubUseCase(t))

	var events model.EventList
	w := get(t, handler, "/api/events", &events)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, events.Upcoming).Equal([]model.Event{
		{
			ID:          1,
			Title:       "Monthly Club Meeting",
			Date:        "2024-02-03",
			Time:        "10:00 AM",
			Location:    "Club Field",
			Description: "Monthly meeting and practice session",
		},
		{
			ID:          2,
			Title:       "F3A Pattern Workshop",
			Date:        "2024-02-17",
			Time:        "9:00 AM",
			Location:    "Club Field",
			Description: "Advanced pattern flying techniques",
		},
	})
}

func TestAircraftEndpoint(t *testing.T) {
	handler := newHandler(t, newClubUseCase(t))

	// decode loosely to check the wire field names
	var body map[string][]map[string]string
	w := get(t, handler, "/api/aircraft", &body)

	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, body["recommended"]).Equal([]map[string]string{
		{"name": "Extra 330SC", "wingspan": "2.0m", "weight": "4.5kg", "engine": "120cc", "skill_level": "Advanced"},
		{"name": "Yak 54", "wingspan": "1.8m", "weight": "3.8kg", "engine": "100cc", "skill_level": "Intermediate"},
	})
}

func TestClubRoutes_Failure(t *testing.T) {
	fixed := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)

	for _, panics := range []bool{false, true} {
		for _, path := range []string{"/api/club", "/api/events", "/api/aircraft"} {
			name := path + " error"
			if panics {
				name = path + " panic"
			}

			t.Run(name, func(t *testing.T) {
				handler := newHandler(t,
					&brokenUseCase{panics: panics},
					controller.WithClock(func() time.Time { return fixed }),
				)

				var body map[string]string
				w := get(t, handler, path, &body)

				gt.Value(t, w.Code).Equal(http.StatusInternalServerError)
				gt.Value(t, body).Equal(map[string]string{
					"error":     "Something went wrong!",
					"timestamp": "2024-02-03T10:00:00.000Z",
				})
				gt.False(t, strings.Contains(w.Body.String(), "secret internal detail"))
				gt.False(t, strings.Contains(w.Body.String(), "goroutine"))
			})
		}
	}
}
