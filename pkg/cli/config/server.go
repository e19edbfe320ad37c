package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr          string
	AllowedOrigin string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("DEFECTDASH_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "allowed-origin",
			Usage:       "Origin allowed by CORS, e.g. the dashboard app URL (CORS disabled when empty)",
			Category:    "Server",
			Sources:     cli.EnvVars("DEFECTDASH_ALLOWED_ORIGIN"),
			Destination: &s.AllowedOrigin,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("allowed_origin", s.AllowedOrigin),
	)
}
