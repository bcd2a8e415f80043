package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/pdf_converter/internal/config"
	v1 "github.com/kurochkinivan/pdf_converter/internal/controller/http/v1"
	"github.com/kurochkinivan/pdf_converter/internal/converter"
	"github.com/kurochkinivan/pdf_converter/internal/domain"
	"github.com/kurochkinivan/pdf_converter/internal/pipeline"
	"github.com/kurochkinivan/pdf_converter/internal/repository/postgresql"
	"github.com/kurochkinivan/pdf_converter/internal/tempstore"
	"github.com/kurochkinivan/pdf_converter/internal/validator"
	"golang.org/x/sync/errgroup"
)

const (
	historyBuffer   = 256
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("temp_dir", a.cfg.App.TempDirectory),
		slog.Int("max_files", a.cfg.App.MaxFiles),
		slog.Int64("max_file_size", a.cfg.App.MaxFileSize),
		slog.Int64("max_request_bytes", a.cfg.App.RequestBytesLimit()),
		slog.String("converter", a.cfg.Converter.Bin),
		slog.Int("converter_concurrency", a.cfg.Converter.MaxConcurrency),
	)

	store, err := tempstore.New(a.log, a.cfg.App.TempDirectory)
	if err != nil {
		return fmt.Errorf("failed to create temp store: %w", err)
	}

	invoker := converter.NewInvoker(a.log, a.cfg.Converter)
	if err := invoker.Available(); err != nil {
		a.log.WarnContext(ctx, "converter is not available, every conversion will fail",
			slog.String("err", err.Error()),
		)
	}

	deps := v1.Dependencies{
		Validator: validator.New(a.cfg.App.MaxFiles, a.cfg.App.MaxFileSize),
		Store:     store,
		Converter: converter.NewLimiter(invoker, a.cfg.Converter.MaxConcurrency),
		Recorder:  nopRecorder{},
	}

	var recorder *pipeline.Recorder
	if a.cfg.PostgreSQL.Enabled() {
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return fmt.Errorf("failed to create db connection: %w", err)
		}
		defer pool.Close()

		conversionsRepository := postgresql.NewConversionsRepository(pool)
		recorder = pipeline.NewRecorder(a.log, historyBuffer, conversionsRepository)

		deps.Recorder = recorder
		deps.Conversions = conversionsRepository
	} else {
		a.log.InfoContext(ctx, "postgresql is not configured, conversion history is disabled")
	}

	return a.start(ctx, store, recorder, deps)
}

func (a *App) start(
	ctx context.Context,
	store *tempstore.Store,
	recorder *pipeline.Recorder,
	deps v1.Dependencies,
) error {
	sweeper := pipeline.NewSweeper(a.log, store.Dir(), a.cfg.App.SweepInterval, a.cfg.App.TempMaxAge)
	server := v1.NewServer(a.log, a.cfg.HTTP, a.cfg.App.RequestBytesLimit(), deps)

	erg, ctx := errgroup.WithContext(ctx)

	// The recorder keeps running until the server has drained in-flight
	// requests, so their history is not lost.
	recorderCtx, stopRecorder := context.WithCancel(context.WithoutCancel(ctx))
	defer stopRecorder()

	erg.Go(func() error {
		a.log.InfoContext(ctx, "sweeper started")
		return sweeper.Run(ctx)
	})

	if recorder != nil {
		erg.Go(func() error {
			a.log.InfoContext(ctx, "recorder started")
			if err := recorder.Run(recorderCtx); !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer stopRecorder()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, *domain.Conversion) {}
