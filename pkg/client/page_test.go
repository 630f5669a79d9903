package client_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/client"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestLoadPage(t *testing.T) {
	ts := newService(t)
	page := client.New(ts.URL).LoadPage(context.Background())

	var buf bytes.Buffer
	gt.NoError(t, client.RenderPage(&buf, page))

	html := buf.String()
	gt.String(t, html).Contains(`<h1 id="club-name">F3A Pattern Aerobatics RC Club</h1>`)
	gt.String(t, html).Contains(`<p id="club-description">Precision aerobatic flying with radio-controlled aircraft</p>`)
	gt.String(t, html).Contains(`<li><strong>Monthly Club Meeting</strong> - 2024-02-03 at 10:00 AM</li>`)
	gt.String(t, html).Contains(`<li><strong>F3A Pattern Workshop</strong> - 2024-02-17 at 9:00 AM</li>`)
}

func TestRenderPage(t *testing.T) {
	tests := []struct {
		name     string
		page     *client.Page
		contains []string
		excludes []string
	}{
		{
			name:     "nothing loaded",
			page:     &client.Page{},
			excludes: []string{"club-name", "events-list"},
		},
		{
			name: "club only",
			page: &client.Page{
				Club: &model.ClubInfo{Name: "Club", Description: "Flying"},
			},
			contains: []string{`id="club-name">Club<`, `id="club-description">Flying<`},
			excludes: []string{"events-list"},
		},
		{
			name: "markup in titles is escaped",
			page: &client.Page{
				Events: &model.EventList{Upcoming: []model.Event{
					{ID: 1, Title: "<script>x</script>", Date: "2024-01-01", Time: "noon"},
				}},
			},
			contains: []string{"&lt;script&gt;x&lt;/script&gt;", `id="events-list"`},
			excludes: []string{"<script>", "club-name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			gt.NoError(t, client.RenderPage(&buf, tt.page))

			for _, s := range tt.contains {
				gt.String(t, buf.String()).Contains(s)
			}
			for _, s := range tt.excludes {
				gt.False(t, bytes.Contains(buf.Bytes(), []byte(s)))
			}
		})
	}
}
