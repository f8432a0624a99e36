package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/api"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/certificate"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/config"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/db"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/logger"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scheduler"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/service"
)

const shutdownTimeout = 15 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}
	config.OnReload(func(c *config.AppConfig) {
		if err := logger.SetLevel(c.API.LogLevel); err != nil {
			zap.L().Warn("log level not changed", zap.Error(err))
		}
	})

	zone, err := conf.Scoring.Location()
	if err != nil {
		return fmt.Errorf("failed to load event time zone -> %w", err)
	}
	scoring.SetEventZone(zone)

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	var publisher service.CertificatePublisher = certificate.Disabled{}
	if conf.Certificates.Enabled {
		p, err := certificate.NewPublisher(conf.Certificates)
		if err != nil {
			return fmt.Errorf("failed to initialize certificate publisher -> %w", err)
		}
		defer p.Close()
		publisher = p
	}

	s := api.NewServer(conf, postgresDB, publisher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := s.Actions.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to load the action catalog -> %w", err)
	}
	zap.L().Info("action catalog loaded", zap.Int("actions", catalog.Len()))

	if conf.Scheduler.Enabled {
		activation := scheduler.New(s.Events)
		if err = activation.Start(conf.Scheduler.ActivationSpec); err != nil {
			return fmt.Errorf("failed to start the scheduler -> %w", err)
		}
		defer activation.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}
