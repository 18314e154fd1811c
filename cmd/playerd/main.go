package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/emberplay/emberplay/internal/config"
	"github.com/emberplay/emberplay/internal/domain"
	"github.com/emberplay/emberplay/internal/engine"
	"github.com/emberplay/emberplay/internal/events"
	"github.com/emberplay/emberplay/internal/resolver"
)

// AppOptions is the full dependency graph, exported so tests can validate
// it with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.Load,
		resolver.NewRegistry,
		func(r *resolver.Registry) domain.SourceResolver { return r },
		newEventQueue,
		func(q *events.Queue) domain.EventSink { return q },
		engine.New,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newEventQueue creates the dispatch sink. The demo host just logs every
// delivered event; an embedding host would forward them to its script layer.
func newEventQueue(logger *zap.Logger) *events.Queue {
	return events.NewQueue(logger, func(event domain.Event) {
		logger.Info("Playback event", zap.String("event", string(event)))
	})
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, eng *engine.Engine, queue *events.Queue) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			el, err := eng.Document().CreateElement("video")
			if err != nil {
				return err
			}
			logger.Info("Playback engine started", zap.Bool("elementReady", el != nil))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			err := eng.Close()
			queue.Close()
			return err
		},
	})
}
