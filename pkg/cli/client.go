package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/cli/config"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/client"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func cmdClient() *cli.Command {
	var clientCfg config.Client

	return &cli.Command{
		Name:    "client",
		Aliases: []string{"c"},
		Usage:   "Query a running service",
		Flags:   clientCfg.Flags(),
		Commands: []*cli.Command{
			{
				Name:  "page",
				Usage: "Print the home page fragment built from the club and events",
				Action: func(ctx context.Context, c *cli.Command) error {
					page := client.New(clientCfg.APIBase).LoadPage(ctx)
					return client.RenderPage(c.Root().Writer, page)
				},
			},
			{
				Name:  "status",
				Usage: "Print health, club, events and aircraft",
				Action: func(ctx context.Context, c *cli.Command) error {
					snap := client.New(clientCfg.APIBase).FetchAll(ctx)
					printSnapshot(c.Root().Writer, clientCfg.APIBase, snap)
					return nil
				},
			},
		},
	}
}

var (
	okMark   = color.New(color.FgGreen, color.Bold).SprintFunc()
	ngMark   = color.New(color.FgRed, color.Bold).SprintFunc()
	headline = color.New(color.FgCyan, color.Bold).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

func printSnapshot(w io.Writer, apiBase string, snap *client.Snapshot) {
	fmt.Fprintf(w, "%s %s\n", headline("F3A service"), dim(apiBase))

	if h := snap.Health; h != nil {
		fmt.Fprintf(w, "%s health: %s (%s %s at %s)\n", okMark("✔"), h.Status, h.Service, h.Version, h.Timestamp)
	} else {
		fmt.Fprintf(w, "%s health: unavailable\n", ngMark("✘"))
	}

	if club := snap.Club; club != nil {
		fmt.Fprintf(w, "%s club: %s, %s (since %s)\n", okMark("✔"), club.Name, club.Location, club.Founded)
		fmt.Fprintf(w, "    %s\n", club.Description)
		fmt.Fprintf(w, "    activities: %s\n", strings.Join(club.Activities, ", "))
		fmt.Fprintf(w, "    contact: %s, %s\n", club.Contact.Email, club.Contact.Meetings)
	} else {
		fmt.Fprintf(w, "%s club: unavailable\n", ngMark("✘"))
	}

	if events := snap.Events; events != nil {
		fmt.Fprintf(w, "%s events: %d upcoming\n", okMark("✔"), len(events.Upcoming))
		for _, ev := range events.Upcoming {
			fmt.Fprintf(w, "    #%d %s - %s at %s, %s\n", ev.ID, ev.Title, ev.Date, ev.Time, ev.Location)
		}
	} else {
		fmt.Fprintf(w, "%s events: unavailable\n", ngMark("✘"))
	}

	if aircraft := snap.Aircraft; aircraft != nil {
		fmt.Fprintf(w, "%s aircraft: %d recommended\n", okMark("✔"), len(aircraft.Recommended))
		for _, a := range aircraft.Recommended {
			fmt.Fprintf(w, "    %s: %s span, %s, %s (%s)\n", a.Name, a.Wingspan, a.Weight, a.Engine, a.SkillLevel)
		}
	} else {
		fmt.Fprintf(w, "%s aircraft: unavailable\n", ngMark("✘"))
	}
}
