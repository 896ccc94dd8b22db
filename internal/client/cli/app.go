package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hirepilot/hirepilot/internal/client/analysis"
	"github.com/hirepilot/hirepilot/internal/client/api"
	"github.com/hirepilot/hirepilot/internal/client/config"
	"github.com/hirepilot/hirepilot/internal/client/intake"
	"github.com/hirepilot/hirepilot/internal/client/session"
	"github.com/hirepilot/hirepilot/internal/logging"
)

const appName = "hirepilot"

type App struct {
	config       *config.Config
	logger       logging.Logger
	api          api.Client
	session      *session.Store
	guard        *session.Guard
	intake       *intake.Manager
	orchestrator *analysis.Orchestrator

	jobDescription string

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) *App {
	logger := logging.NewDefault()
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	store := session.NewStore(appName)

	return &App{
		config:       cfg,
		logger:       logger,
		api:          apiClient,
		session:      store,
		guard:        session.NewGuard(store),
		intake:       intake.NewManager(),
		orchestrator: analysis.NewOrchestrator(apiClient, logger),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.guard.Allow()
}

// requireSession is the client-side navigation guard: protected commands call
// it first and bail out to the login flow when no credential is present.
func (a *App) requireSession() bool {
	if a.guard.Allow() {
		return true
	}
	fmt.Fprintln(a.out, "You are not logged in. Use 'login' or 'register' first.")
	return false
}

func (a *App) getStatus() string {
	name := session.Username(a.session.Current())
	if name == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", name)
}
