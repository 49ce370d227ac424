package main

import (
	"context"
	"os"

	"github.com/genricoloni/duoplayer/internal/command"
	"github.com/genricoloni/duoplayer/internal/config"
	"github.com/genricoloni/duoplayer/internal/diag"
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/engine"
	"github.com/genricoloni/duoplayer/internal/fetcher"
	"github.com/genricoloni/duoplayer/internal/loop"
	"github.com/genricoloni/duoplayer/internal/media"
	"github.com/genricoloni/duoplayer/internal/metrics"
	"github.com/genricoloni/duoplayer/internal/playlist"
	"github.com/genricoloni/duoplayer/internal/priority"
	"github.com/genricoloni/duoplayer/internal/processor"
	"github.com/genricoloni/duoplayer/internal/slots"
	"github.com/genricoloni/duoplayer/internal/status"
	"github.com/genricoloni/duoplayer/internal/surface"
	"github.com/genricoloni/duoplayer/internal/transition"
	"github.com/genricoloni/duoplayer/internal/vlc"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the full dependency graph of the player
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Supply(config.Flags{}),

	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		metrics.New,
		newReporter,
		func(r *status.Reporter) domain.Reporter { return r },
		newReader,
		newLoop,
		loop.NewEvents,
		newWindow,
		newEngines,
		fx.Annotate(fetcher.NewAssetFetcher, fx.As(new(domain.Fetcher))),
		processor.NewFrameProcessor,
		newImageLoader,
		fx.Annotate(media.NewFileTagReader, fx.As(new(domain.TagReader))),
		newPlayers,
		newCoordinator,
		newPlaylist,
		newEngine,
		fx.Annotate(priority.NewRaiser, fx.As(new(domain.PriorityRaiser))),
		newDiag,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func newReporter(logger *zap.Logger, m *metrics.Metrics) *status.Reporter {
	return status.NewReporter(logger.Named("status"), m, os.Stdout)
}

func newReader(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config, reporter domain.Reporter, m *metrics.Metrics) *command.Reader {
	debouncer := command.NewDebouncer(cfg.DebounceWindow(), nil)
	r := command.NewReader(logger.Named("reader"), reporter, m, debouncer, os.Stdin)
	lc.Append(fx.Hook{OnStart: r.Start, OnStop: r.Stop})
	return r
}

func newLoop(logger *zap.Logger) (*loop.Loop, domain.Dispatcher) {
	l := loop.New(logger.Named("loop"))
	return l, l
}

func newWindow(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) (domain.Window, error) {
	w, err := surface.NewWindow(logger.Named("window"), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStart: w.Start, OnStop: w.Stop})
	return w, nil
}

func newEngines(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg domain.Config,
	window domain.Window,
	events *loop.Events,
) ([domain.SlotCount]domain.MediaEngine, error) {
	engines, err := vlc.NewEngines(logger.Named("vlc"), cfg, window, events)
	if err != nil {
		return engines, err
	}
	// Registered before the engine hook, so it runs after the players are released
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return vlc.Shutdown() }})
	return engines, nil
}

func newImageLoader(f domain.Fetcher, p *processor.FrameProcessor) domain.ImageLoader {
	return media.NewImageLoader(f, p)
}

type playersParams struct {
	fx.In

	Logger     *zap.Logger
	Config     domain.Config
	Reporter   domain.Reporter
	Dispatcher domain.Dispatcher
	Loader     domain.ImageLoader
	Composer   *processor.FrameProcessor
	Tags       domain.TagReader
	Engines    [domain.SlotCount]domain.MediaEngine
	Window     domain.Window
}

func newPlayers(p playersParams) *slots.Set {
	return slots.NewSet(slots.Deps{
		Logger:     p.Logger.Named("slots"),
		Reporter:   p.Reporter,
		Dispatcher: p.Dispatcher,
		Loader:     p.Loader,
		Composer:   p.Composer,
		Tags:       p.Tags,
		Engines:    p.Engines,
		Surfaces:   p.Window.Surfaces(),
		Retry: slots.RetryPolicy{
			Attempts: p.Config.AudioRetries(),
			Interval: p.Config.AudioRetryInterval(),
		},
	})
}

func newCoordinator(
	logger *zap.Logger,
	cfg domain.Config,
	players *slots.Set,
	reporter domain.Reporter,
	dispatcher domain.Dispatcher,
	m *metrics.Metrics,
) *transition.Coordinator {
	return transition.NewCoordinator(logger.Named("transition"), players, reporter, dispatcher, m, transition.Options{
		Instant: cfg.InstantSwap(),
		Fade:    cfg.FadeDuration(),
	})
}

func newPlaylist(
	logger *zap.Logger,
	players *slots.Set,
	coord *transition.Coordinator,
	reporter domain.Reporter,
	dispatcher domain.Dispatcher,
) *playlist.Controller {
	return playlist.NewController(logger.Named("playlist"), players, coord, reporter, dispatcher)
}

type engineParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Logger     *zap.Logger
	Config     domain.Config
	Reporter   domain.Reporter
	Loop       *loop.Loop
	Events     *loop.Events
	Reader     *command.Reader
	Window     domain.Window
	Players    *slots.Set
	Coord      *transition.Coordinator
	Playlist   *playlist.Controller
	Composer   *processor.FrameProcessor
	Loader     domain.ImageLoader
	Shutdowner fx.Shutdowner
}

func newEngine(p engineParams) *engine.Engine {
	e := engine.NewEngine(engine.Deps{
		Logger:     p.Logger.Named("engine"),
		Config:     p.Config,
		Reporter:   p.Reporter,
		Loop:       p.Loop,
		Events:     p.Events,
		Commands:   p.Reader,
		Window:     p.Window,
		Players:    p.Players,
		Coord:      p.Coord,
		Playlist:   p.Playlist,
		Composer:   p.Composer,
		Loader:     p.Loader,
		Shutdowner: p.Shutdowner,
	})
	p.Lifecycle.Append(fx.Hook{OnStart: e.Start, OnStop: e.Stop})
	return e
}

func newDiag(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg domain.Config,
	m *metrics.Metrics,
	reporter *status.Reporter,
	reader *command.Reader,
) *diag.Server {
	s := diag.NewServer(logger.Named("diag"), cfg, m, reporter, reader)
	lc.Append(fx.Hook{OnStart: s.Start, OnStop: s.Stop})
	return s
}

// registerHooks sets up application lifecycle hooks
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg domain.Config,
	raiser domain.PriorityRaiser,
	reporter domain.Reporter,
	_ *engine.Engine,
	_ *diag.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			priority.Apply(ctx, logger, cfg, raiser, reporter)
			logger.Info("Duoplayer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return nil
		},
	})
}
