package engine

import (
	"context"
	"fmt"
	"image"

	"github.com/genricoloni/duoplayer/internal/command"
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/loop"
	"github.com/genricoloni/duoplayer/internal/playlist"
	"github.com/genricoloni/duoplayer/internal/processor"
	"github.com/genricoloni/duoplayer/internal/slots"
	"github.com/genricoloni/duoplayer/internal/transition"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CommandSource delivers parsed commands to the loop
type CommandSource interface {
	Commands() <-chan command.Command
}

// Deps are the collaborators of an Engine
type Deps struct {
	Logger     *zap.Logger
	Config     domain.Config
	Reporter   domain.Reporter
	Loop       *loop.Loop
	Events     *loop.Events
	Commands   CommandSource
	Window     domain.Window
	Players    *slots.Set
	Coord      *transition.Coordinator
	Playlist   *playlist.Controller
	Composer   domain.FrameComposer
	Loader     domain.ImageLoader
	Shutdowner fx.Shutdowner
}

// Engine is the goroutine that owns the player state.
// It drains commands, engine events, window events and posted tasks.
type Engine struct {
	logger     *zap.Logger
	cfg        domain.Config
	reporter   domain.Reporter
	loop       *loop.Loop
	events     *loop.Events
	commands   CommandSource
	window     domain.Window
	players    *slots.Set
	coord      *transition.Coordinator
	playlist   *playlist.Controller
	composer   domain.FrameComposer
	loader     domain.ImageLoader
	shutdowner fx.Shutdowner

	logoSource  image.Image
	logoSize    int
	logoShow    bool
	logoVisible bool
	logoLoads   uint64

	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine creates the owning loop and hooks the swap and dwell callbacks
func NewEngine(deps Deps) *Engine {
	e := &Engine{
		logger:     deps.Logger,
		cfg:        deps.Config,
		reporter:   deps.Reporter,
		loop:       deps.Loop,
		events:     deps.Events,
		commands:   deps.Commands,
		window:     deps.Window,
		players:    deps.Players,
		coord:      deps.Coord,
		playlist:   deps.Playlist,
		composer:   deps.Composer,
		loader:     deps.Loader,
		shutdowner: deps.Shutdowner,
		logoShow:   true,
		done:       make(chan struct{}),
	}
	e.coord.OnSwap(func(domain.SlotIndex) { e.restackLogo() })
	return e
}

// Start launches the loop in a goroutine and returns immediately.
// The startup status is applied as the first task.
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting...")

	runCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.playlist.OnItemEnd(func(ev domain.EngineEvent) { e.handleEngineEvent(runCtx, ev) })

	go e.runLoop(runCtx)
	e.loop.Post(func() { e.applyInitial(runCtx) })
	return nil
}

func (e *Engine) runLoop(ctx context.Context) {
	defer close(e.done)

	commands := e.commands.Commands()
	windowEvents := e.window.Events()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			e.dispatch(ctx, cmd)

		case ev := <-e.events.C():
			e.handleEngineEvent(ctx, ev)

		case ev, ok := <-windowEvents:
			if !ok {
				windowEvents = nil
				continue
			}
			e.handleWindowEvent(ev)

		case task := <-e.loop.Tasks():
			task()
		}
	}
}

// dispatch runs one command and turns its failure into a single error line
func (e *Engine) dispatch(ctx context.Context, cmd command.Command) {
	e.logger.Debug("Command received", zap.String("command", string(cmd.Name())))
	if err := e.handle(ctx, cmd); err != nil {
		e.logger.Warn("Command failed",
			zap.String("command", string(cmd.Name())),
			zap.Error(err))
		e.reporter.Error(err)
	}
}

func (e *Engine) handleEngineEvent(ctx context.Context, ev domain.EngineEvent) {
	if ev.Kind == domain.EventError {
		cause := ev.Err
		if cause == nil {
			cause = domain.ErrNoEngine
		}
		e.reporter.Error(domain.Failed(cause, fmt.Sprintf("player %d encountered an error", ev.Slot)))
	}

	if !e.players.ApplyEvent(ev) {
		return
	}

	switch ev.Kind {
	case domain.EventEndReached, domain.EventDwellElapsed:
		if ev.Slot == e.players.Active() {
			if err := e.playlist.EndOfItem(ctx, ev.Slot); err != nil {
				e.reporter.Error(err)
			}
		}
		e.syncLogo()
	case domain.EventPlaying, domain.EventStopped:
		e.syncLogo()
	}
}

func (e *Engine) handleWindowEvent(ev domain.WindowEvent) {
	switch ev.Kind {
	case domain.WindowResized:
		e.logger.Debug("Window resized", zap.Stringer("bounds", ev.Bounds))
		if err := e.players.Recompose(); err != nil {
			e.reporter.Error(err)
		}
	case domain.WindowClosed:
		e.logger.Info("Window closed, shutting down")
		if err := e.shutdowner.Shutdown(); err != nil {
			e.logger.Error("Failed to request shutdown", zap.Error(err))
		}
	}
}

// applyInitial restores the startup status handed over by the host
func (e *Engine) applyInitial(ctx context.Context) {
	if err := e.cfg.InitialErr(); err != nil {
		e.reporter.Error(err)
	}
	st := e.cfg.Initial()

	if err := e.setBackground(st.Background); err != nil {
		e.reporter.Error(err)
	}
	if st.Fullscreen {
		if err := e.setFullscreen(true); err != nil {
			e.reporter.Error(err)
		}
	}

	e.logoSize = st.Logo.Size
	e.logoShow = st.Logo.Show
	if st.Logo.File != "" {
		if err := e.setLogoFile(ctx, st.Logo.File); err != nil {
			e.reporter.Error(err)
		}
	}

	e.playlist.Restore(st.PlaylistMode, st.PlaylistTrackIndex, st.ImageTime)

	if st.Device.AudioDevice != "" && st.Device.AudioDevice != "default" {
		if err := e.players.SetAudioDevice(st.Device.AudioDevice); err != nil {
			e.reporter.Error(err)
		}
	}

	e.syncLogo()
	e.reporter.Info("Player ready")
}

// Stop ends the loop, then stops playback and releases both engines
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")

	if e.cancel != nil {
		e.cancel()
		select {
		case <-e.done:
		case <-ctx.Done():
			e.logger.Warn("Engine loop did not exit in time")
		}
	}
	e.loop.Close()
	e.playlist.Halt()

	for _, idx := range []domain.SlotIndex{domain.SlotA, domain.SlotB} {
		if err := e.players.StopIfPlaying(idx); err != nil {
			e.logger.Warn("Failed to stop player", zap.Int("slot", int(idx)), zap.Error(err))
		}
	}
	if err := e.players.Close(ctx); err != nil {
		e.logger.Error("Failed to release players", zap.Error(err))
		return err
	}

	e.logger.Info("Engine stopped")
	return nil
}

func (e *Engine) setBackground(hex string) error {
	c, err := processor.ParseColor(hex)
	if err != nil {
		return err
	}
	if err := e.window.SetBackground(c); err != nil {
		return domain.Failed(err, "cannot set background color")
	}
	return e.players.SetBackground(c)
}

func (e *Engine) setFullscreen(on bool) error {
	if err := e.window.SetFullscreen(on); err != nil {
		return domain.Failed(err, "cannot set fullscreen")
	}
	if err := e.players.SetFullscreen(on); err != nil {
		return err
	}
	return nil
}
