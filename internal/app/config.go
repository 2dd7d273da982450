package app

import "onionkey/internal/domain"

// Config holds runtime wiring options for building the app.
type Config struct {
	Scheme  domain.Scheme // address generation, v3 by default
	Verbose bool          // enable debug logging
}
