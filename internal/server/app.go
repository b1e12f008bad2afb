// Package server initializes and runs the journal application server:
// it wires the repositories, the field cipher, the mailer, and the HTTP
// endpoint, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"journal-api/internal/cryptox"
	"journal-api/internal/logging"
	"journal-api/internal/server/config"
	"journal-api/internal/server/mail"
	"journal-api/internal/server/rest"
	"journal-api/internal/server/shared/db"
	"journal-api/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	repoManager db.RepositoryManager
	cipher      *cryptox.Cipher
}

func NewApp(cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	cipher := cryptox.NewCipher(cfg.FieldCipherSecret)

	var mailer mail.Mailer
	if cfg.SMTPUsername != "" {
		mailer = mail.NewSMTPMailer(cfg)
	} else {
		mailer = mail.NewLogMailer(logger)
	}

	us := users.NewService(m.Users(), m.Sessions(), cipher, mailer, cfg)

	return &App{
		config:      cfg,
		logger:      logger,
		userService: us,
		repoManager: m,
		cipher:      cipher,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.repoManager.Entries(),
		app.cipher,
		app.config.AccessTokenSecret,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
