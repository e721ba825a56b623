package cmd

import (
	"fmt"

	"github.com/Devduttshar/eventPlanner/internal/api"
	"github.com/Devduttshar/eventPlanner/internal/auth"
	"github.com/Devduttshar/eventPlanner/internal/config"
	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/log"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// app wires the client services together for one command invocation.
// The configuration, including the API base URL, is resolved exactly
// once here and never re-read.
type app struct {
	Config   *config.Config
	Logger   *log.Logger
	Sessions session.Store
	Auth     *auth.Service
	Events   *events.Service
}

// newApp builds the service graph from flags and environment.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfigDir)
	if err != nil {
		return nil, err
	}

	logCfg := log.DefaultConfig()
	if cfg.LogLevel != "" {
		logCfg.Level = log.ParseLevel(cfg.LogLevel)
	}
	if flagVerbose {
		logCfg = log.VerboseConfig()
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	store := session.NewFileStore(cfg.SessionPath(), cfg.KeyPath(), logger)
	client := api.NewClient(cfg.BaseURL, store, logger)

	return &app{
		Config:   cfg,
		Logger:   logger,
		Sessions: store,
		Auth:     auth.NewService(client, store, logger),
		Events:   events.NewService(client, logger),
	}, nil
}

// requireAPI validates that remote calls can be dispatched.
// Commands that never touch the network (logout, whoami) skip this.
func (a *app) requireAPI() error {
	return a.Config.Validate()
}

// redirectToLogin is the private-guard redirect rendered in a terminal:
// the command refuses with an auth failure pointing at the login route.
func redirectToLogin(route string) error {
	return errors.New(errors.ErrCodeAuthUnauthorized, "You are not logged in").
		WithSuggestion(fmt.Sprintf("Run 'eventplanner login' (%s)", route))
}

// redirectToLanding is the open-guard redirect: already-authenticated
// visitors are sent back to the events overview instead of the auth page.
func redirectToLanding(route string) error {
	fmt.Printf("Already logged in; redirecting to the events overview (%s).\n", route)
	fmt.Println("Run 'eventplanner logout' to switch accounts.")
	return nil
}
