package config

import (
	"net"
	"strconv"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Host        string
	Port        int
	StaticDir   string
	CORSOrigins []string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "host",
			Usage:       "Interface to listen on",
			Value:       "0.0.0.0",
			Destination: &c.Host,
			Sources:     cli.EnvVars("F3A_HOST"),
		},
		&cli.IntFlag{
			Name:        "port",
			Usage:       "Port to listen on",
			Value:       3000,
			Destination: &c.Port,
			Sources:     cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:        "static-dir",
			Usage:       "Directory served at the web root (embedded assets if empty)",
			Destination: &c.StaticDir,
			Sources:     cli.EnvVars("F3A_STATIC_DIR"),
		},
		&cli.StringSliceFlag{
			Name:        "cors-origin",
			Usage:       "Origin allowed to make credentialed cross-origin requests",
			Value:       []string{"https://f3a-pattern-aerobatics-rc.club", "http://localhost:3000"},
			Destination: &c.CORSOrigins,
			Sources:     cli.EnvVars("F3A_CORS_ORIGINS"),
		},
	}
}

// Addr returns the listen address
func (c *Server) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
