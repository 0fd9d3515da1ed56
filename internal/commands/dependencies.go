// Package commands provides CLI commands for shipchat.
package commands

import (
	"github.com/mbrandao/shipchat/internal/api"
	"github.com/mbrandao/shipchat/internal/config"
	"github.com/mbrandao/shipchat/internal/dashboard"
	"github.com/mbrandao/shipchat/internal/logger"
	"github.com/mbrandao/shipchat/internal/render"
	"github.com/mbrandao/shipchat/internal/storage"
)

// appDeps bundles the pieces every command needs: user config, the
// persisted UI state store, the dashboard history and the API client.
type appDeps struct {
	cfg     config.Config
	store   storage.Store
	history *dashboard.History
	client  *api.Client
}

// buildDeps wires the shared dependencies. Config and state problems
// degrade to defaults and in-memory storage; persistence is best-effort
// by design.
func buildDeps() appDeps {
	cfg, _ := config.LoadConfig()
	logger.SetVerbose(cfg.Verbose)

	var store storage.Store
	if statePath, err := config.GetStatePath(); err == nil {
		store = storage.NewFileStore(statePath)
	} else {
		store = storage.NewMemStore()
	}

	// The persisted UI state wins over config.json; `config set theme`
	// only takes effect until the first in-app toggle stores a choice.
	theme := cfg.Theme
	if saved, ok := store.Get(storage.KeyTheme); ok {
		theme = saved
	}
	render.SetTheme(theme)

	return appDeps{
		cfg:     cfg,
		store:   store,
		history: dashboard.NewHistory(store),
		client:  api.NewClient(config.ResolveBaseURL(apiURLFlag, cfg)),
	}
}
