package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sheshape/shapecli/internal/api"
	"github.com/sheshape/shapecli/internal/config"
	"github.com/sheshape/shapecli/internal/logging"
)

// app bundles the wiring every command needs: configuration, the file
// logger, the persisted session, and the API client.
type app struct {
	cfg      *config.Configuration
	log      *zap.Logger
	closeLog func()
	session  config.StoredSession
	client   *api.Client
}

// newApp loads configuration and builds the client. When quiet is set (the
// wizard owns the terminal), notifications go to the log file instead of
// stderr.
func newApp(localConfigPath string, quiet bool) (*app, error) {
	cfg, err := config.Load(localConfigPath)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(cfg.StateDir, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	session, err := config.LoadSession(cfg.StateDir)
	if err != nil {
		closeLog()
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		session:  session,
	}

	notify := func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	}
	if quiet {
		notify = func(msg string) {
			log.Warn("backend notice", zap.String("message", msg))
		}
	}

	a.client = api.New(cfg.APIURL,
		api.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}),
		api.WithLogger(log),
		api.WithTokenSource(func() string { return a.session.Token }),
		api.WithSessionExpiredHandler(func() {
			a.session = config.StoredSession{}
			if err := config.ClearSession(cfg.StateDir); err != nil {
				log.Warn("clearing expired session", zap.Error(err))
			}
		}),
		api.WithNotifier(notify),
	)

	return a, nil
}

// Close flushes and closes the log file.
func (a *app) Close() {
	a.closeLog()
}

// requireLogin fails fast when no session is stored.
func (a *app) requireLogin() error {
	if a.session.Token == "" {
		return fmt.Errorf("not logged in: run 'shapecli login <email>' first")
	}
	return nil
}
