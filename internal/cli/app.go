package cli

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/maestro/internal/config"
	"github.com/mesh-intelligence/maestro/internal/logging"
	"github.com/mesh-intelligence/maestro/internal/menu"
	"github.com/mesh-intelligence/maestro/internal/metrics"
	"github.com/mesh-intelligence/maestro/internal/session"
	"github.com/mesh-intelligence/maestro/pkg/sqlite"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

// app is the state shared by every line of one shell or script run.
type app struct {
	session  *session.Session
	metrics  *metrics.Metrics
	log      logrus.FieldLogger
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	jsonMode bool
	close    func() error
}

// newApp loads configuration and builds the store and session for cmd.
// The caller must call app.close when done.
func newApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	dir, err := flags.resolveConfigDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, sysErrorf("load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, sysErrorf("configure logging: %w", err)
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return nil, sysErrorf("open %s store: %w", cfg.Backend, err)
	}
	if cfg.Seed {
		menu.Seed(store)
	}

	m := metrics.New()
	a := &app{
		session: session.New(store,
			session.WithLogger(log),
			session.WithMetrics(m),
		),
		metrics:  m,
		log:      log,
		in:       bufio.NewReader(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		jsonMode: flags.jsonMode,
		close:    closeStore,
	}
	log.WithFields(logrus.Fields{
		"backend": cfg.Backend,
		"seed":    cfg.Seed,
		"items":   len(store.All()),
	}).Info("session started")
	return a, nil
}

// openStore creates the store named by cfg.Backend.
func openStore(cfg types.Config, log logrus.FieldLogger) (types.Store, func() error, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(log)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return menu.NewStore(), func() error { return nil }, nil
	}
}
