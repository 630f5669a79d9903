package config

import "github.com/urfave/cli/v3"

// Client holds configuration of the service client
type Client struct {
	APIBase string
}

// Flags returns CLI flags for client configuration
func (c *Client) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-base",
			Usage:       "Base URL of the club service",
			Value:       "https://app.f3a-pattern-aerobatics-rc.club:30080",
			Destination: &c.APIBase,
			Sources:     cli.EnvVars("F3A_API_BASE"),
		},
	}
}
