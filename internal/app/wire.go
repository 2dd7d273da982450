package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"onionkey/internal/domain"
	"onionkey/internal/services/hiddenservice"
	"onionkey/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Store    domain.KeyStore
	Services *hiddenservice.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if !cfg.Scheme.Valid() {
		return nil, fmt.Errorf("unsupported scheme version %d (want 2 or 3)", cfg.Scheme.Version())
	}

	logrus.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ks := store.New()
	return &Wire{
		Store:    ks,
		Services: hiddenservice.New(ks),
	}, nil
}
