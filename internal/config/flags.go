package config

import (
	"flag"
	"os"
)

// parses CLI flags for the tui command
func ParseTUIFlags() Flags {
	return parseTUIFlags(os.Args[1:])
}

func parseTUIFlags(args []string) Flags {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	remote := fs.Bool("remote", false, "generate through the HTTP API instead of in-process")
	endpoint := fs.String("endpoint", defaultEndpoint(), "base URL of the API server")
	mode := fs.String("mode", envOr("RANDSEQ_ENV", "development"), "display mode")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Remote: *remote, Endpoint: *endpoint, Mode: *mode}
}

func defaultEndpoint() string {
	return envOr("RANDSEQ_API_ENDPOINT", "http://localhost:8080")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
