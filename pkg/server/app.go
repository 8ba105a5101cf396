package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SmartInvest/pkg/config"
	xhttp "SmartInvest/pkg/http"
	applogger "SmartInvest/pkg/logger"
)

// Scheduler is a background job runner started and stopped with the app.
type Scheduler interface {
	Start()
	Stop(ctx context.Context) error
}

// App encapsulates the HTTP server and background jobs lifecycle.
// Infrastructure clients are closed by the DI cleanup function.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	scheduler  Scheduler
}

// New creates an App. scheduler may be nil.
func New(cfg *config.Config, l *applogger.Logger, httpServer *xhttp.Server, scheduler Scheduler) *App {
	return &App{cfg: cfg, log: l, httpServer: httpServer, scheduler: scheduler}
}

// HTTPServer returns the HTTP server.
func (a *App) HTTPServer() *xhttp.Server { return a.httpServer }

// Start starts the HTTP server and the scheduler without blocking.
func (a *App) Start() error {
	if err := a.httpServer.Start(); err != nil {
		return err
	}
	if a.scheduler != nil {
		a.scheduler.Start()
	}
	a.log.Info("application started",
		applogger.String("app", a.cfg.AppName),
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
	)
	return nil
}

// Run starts the application and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	if err := a.Start(); err != nil {
		a.log.Error("start error", applogger.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	signal.Stop(sigCh)

	a.log.Info("shutdown signal received", applogger.String("signal", sig.String()))
	return a.Shutdown(context.Background())
}

// Shutdown stops the scheduler first so no sweep starts during HTTP drain.
func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	if a.scheduler != nil {
		if err := a.scheduler.Stop(ctx); err != nil {
			a.log.Warn("scheduler stop error", applogger.Error(err))
			errs = append(errs, err)
		}
	}
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}

	a.log.Info("shutdown complete")
	return errors.Join(errs...)
}
