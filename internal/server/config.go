package server

import (
	"github.com/ludo-technologies/phishscan/internal/config"
	"github.com/ludo-technologies/phishscan/internal/logging"
)

// Config holds the HTTP API server settings.
type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// StorageDir is where the report history database lives.
	StorageDir string

	// RiskConfig tunes the analyzer used for incoming requests.
	RiskConfig *config.RiskConfig

	// Logger receives request and lifecycle logs. Defaults to a JSON
	// logger on stderr when nil.
	Logger logging.Logger
}
