package client

import (
	"context"
	"html/template"
	"io"
	"sync"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

// Page is what the club home page shows after loading. Nil parts failed to
// load and are not rendered.
type Page struct {
	Club   *model.ClubInfo
	Events *model.EventList
}

// LoadPage fetches the club information and then the events
func (c *Client) LoadPage(ctx context.Context) *Page {
	return &Page{
		Club:   c.FetchClubInfo(ctx),
		Events: c.FetchEvents(ctx),
	}
}

var pageTemplate = template.Must(template.New("page").Parse(
	`{{with .Club}}<h1 id="club-name">{{.Name}}</h1>
<p id="club-description">{{.Description}}</p>
{{end}}{{with .Events}}<ul id="events-list">
{{range .Upcoming}}  <li><strong>{{.Title}}</strong> - {{.Date}} at {{.Time}}</li>
{{end}}</ul>
{{end}}`))

// RenderPage writes the HTML fragment for page, using the element IDs of the
// browser page
func RenderPage(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return goerr.Wrap(err, "failed to render page")
	}
	return nil
}

// Snapshot is the result of calling every endpoint once
type Snapshot struct {
	Health   *model.HealthStatus
	Club     *model.ClubInfo
	Events   *model.EventList
	Aircraft *model.AircraftList
}

// FetchAll calls the four endpoints concurrently and waits for all of them
func (c *Client) FetchAll(ctx context.Context) *Snapshot {
	var (
		snap Snapshot
		wg   sync.WaitGroup
	)

	calls := []func(ctx context.Context){
		func(ctx context.Context) { snap.Health = c.CheckHealth(ctx) },
		func(ctx context.Context) { snap.Club = c.FetchClubInfo(ctx) },
		func(ctx context.Context) { snap.Events = c.FetchEvents(ctx) },
		func(ctx context.Context) { snap.Aircraft = c.FetchAircraft(ctx) },
	}

	for _, call := range calls {
		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			call(ctx)
			return nil
		})
	}

	wg.Wait()
	return &snap
}
