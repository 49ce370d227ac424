//go:build linux

package surface

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// _NET_WM_STATE actions
	stateRemove = 0
	stateAdd    = 1

	eventBuffer = 8
)

type atoms struct {
	protocols    xproto.Atom
	deleteWindow xproto.Atom
	wmState      xproto.Atom
	fullscreen   xproto.Atom
	opacity      xproto.Atom
	wmName       xproto.Atom
	utf8         xproto.Atom
}

// Window is an X11 top-level window with one child per slot and a logo child
type Window struct {
	logger *zap.Logger
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	atoms  atoms
	// maxBytes bounds the payload of a single request
	maxBytes int

	top   xproto.Window
	gc    xproto.Gcontext
	slots [domain.SlotCount]*Surface
	logo  *Surface

	mu         sync.Mutex
	bounds     image.Rectangle
	background uint32
	logoSize   image.Point

	events chan domain.WindowEvent
	quit   chan struct{}
	done   chan struct{}
}

// NewWindow connects to the X server and creates the window tree.
// The window is mapped immediately; slot surfaces start hidden.
func NewWindow(logger *zap.Logger, cfg domain.Config) (*Window, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, domain.Failed(err, "cannot connect to X server")
	}

	setup := xproto.Setup(conn)
	w := &Window{
		logger:   logger,
		conn:     conn,
		screen:   setup.DefaultScreen(conn),
		maxBytes: int(setup.MaximumRequestLength) * 4,
		bounds:   image.Rect(0, 0, defaultBounds.Dx(), defaultBounds.Dy()),
		events:   make(chan domain.WindowEvent, eventBuffer),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if err := w.build(); err != nil {
		conn.Close()
		return nil, domain.Failed(err, "cannot create window")
	}

	if cfg.Initial().Fullscreen {
		full := DisplayBounds(logger)
		w.bounds = image.Rect(0, 0, full.Dx(), full.Dy())
	}

	logger.Info("Window created",
		zap.Uint32("id", uint32(w.top)),
		zap.Int("width", w.bounds.Dx()),
		zap.Int("height", w.bounds.Dy()))
	return w, nil
}

func (w *Window) build() error {
	var err error
	if w.atoms, err = internAtoms(w.conn); err != nil {
		return err
	}

	if w.top, err = w.createWindow(w.screen.Root, defaultBounds,
		xproto.EventMaskStructureNotify|xproto.EventMaskExposure); err != nil {
		return err
	}

	if w.gc, err = xproto.NewGcontextId(w.conn); err != nil {
		return err
	}
	if err = xproto.CreateGCChecked(w.conn, w.gc, xproto.Drawable(w.top), 0, nil).Check(); err != nil {
		return err
	}

	title := []byte(defaultTitle)
	err = multierr.Combine(
		xproto.ChangePropertyChecked(w.conn, xproto.PropModeReplace, w.top,
			xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), title).Check(),
		xproto.ChangePropertyChecked(w.conn, xproto.PropModeReplace, w.top,
			w.atoms.wmName, w.atoms.utf8, 8, uint32(len(title)), title).Check(),
		xproto.ChangePropertyChecked(w.conn, xproto.PropModeReplace, w.top,
			w.atoms.protocols, xproto.AtomAtom, 32, 1, put32(uint32(w.atoms.deleteWindow))).Check(),
	)
	if err != nil {
		return err
	}

	full := image.Rect(0, 0, defaultBounds.Dx(), defaultBounds.Dy())
	for i := range w.slots {
		id, err := w.createWindow(w.top, full, 0)
		if err != nil {
			return err
		}
		w.slots[i] = &Surface{window: w, id: id}
	}

	id, err := w.createWindow(w.top, image.Rect(0, 0, 1, 1), 0)
	if err != nil {
		return err
	}
	w.logo = &Surface{window: w, id: id}

	return xproto.MapWindowChecked(w.conn, w.top).Check()
}

func (w *Window) createWindow(parent xproto.Window, r image.Rectangle, mask uint32) (xproto.Window, error) {
	id, err := xproto.NewWindowId(w.conn)
	if err != nil {
		return 0, err
	}

	valueMask := uint32(xproto.CwBackPixel)
	values := []uint32{w.background}
	if mask != 0 {
		valueMask |= xproto.CwEventMask
		values = append(values, mask)
	}

	err = xproto.CreateWindowChecked(w.conn, w.screen.RootDepth, id, parent,
		int16(r.Min.X), int16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()), 0,
		xproto.WindowClassInputOutput, w.screen.RootVisual, valueMask, values).Check()
	return id, err
}

// Surfaces returns the render surfaces for slot 0 and slot 1
func (w *Window) Surfaces() [domain.SlotCount]domain.Surface {
	var out [domain.SlotCount]domain.Surface
	for i, s := range w.slots {
		out[i] = s
	}
	return out
}

// Bounds returns the current client area
func (w *Window) Bounds() image.Rectangle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

// Events returns a read-only channel of window notifications
func (w *Window) Events() <-chan domain.WindowEvent {
	return w.events
}

// SetFullscreen asks the window manager to toggle the fullscreen state
func (w *Window) SetFullscreen(on bool) error {
	action := uint32(stateRemove)
	if on {
		action = stateAdd
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.top,
		Type:   w.atoms.wmState,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			action, uint32(w.atoms.fullscreen), 0, 1, 0,
		}),
	}
	err := xproto.SendEventChecked(w.conn, false, w.screen.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).Check()
	if err != nil {
		return domain.Failed(err, "cannot change fullscreen state")
	}
	return nil
}

// SetBackground repaints the window and the slot surfaces without a frame
func (w *Window) SetBackground(c color.Color) error {
	px := pixel(c)
	w.mu.Lock()
	w.background = px
	w.mu.Unlock()

	err := w.fill(w.top, px)
	for _, s := range w.slots {
		if !s.HasImage() {
			err = multierr.Append(err, w.fill(s.id, px))
		}
	}
	if err != nil {
		return domain.Failed(err, "cannot set background color")
	}
	return nil
}

func (w *Window) fill(id xproto.Window, px uint32) error {
	return multierr.Append(
		xproto.ChangeWindowAttributesChecked(w.conn, id, xproto.CwBackPixel, []uint32{px}).Check(),
		xproto.ClearAreaChecked(w.conn, false, id, 0, 0, 0, 0).Check(),
	)
}

// SetLogo replaces the logo frame and centers it; nil removes it
func (w *Window) SetLogo(frame image.Image) error {
	size := image.Point{}
	if frame != nil {
		size = frame.Bounds().Size()
	}
	w.mu.Lock()
	w.logoSize = size
	w.mu.Unlock()

	if frame == nil {
		return multierr.Append(w.logo.Hide(), w.logo.ClearImage())
	}
	if err := w.placeLogo(w.Bounds()); err != nil {
		return domain.Failed(err, "cannot place logo")
	}
	return w.logo.SetImage(frame)
}

// ShowLogo maps and raises the logo, or unmaps it
func (w *Window) ShowLogo(show bool) error {
	if !show || w.logoArea() == (image.Point{}) {
		return w.logo.Hide()
	}
	return multierr.Append(w.logo.Show(), w.logo.Raise())
}

func (w *Window) logoArea() image.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logoSize
}

func (w *Window) placeLogo(bounds image.Rectangle) error {
	size := w.logoArea()
	if size == (image.Point{}) {
		return nil
	}
	return w.configure(w.logo.id, centered(bounds, size))
}

func (w *Window) configure(id xproto.Window, r image.Rectangle) error {
	return xproto.ConfigureWindowChecked(w.conn, id,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(r.Min.X), uint32(r.Min.Y), uint32(r.Dx()), uint32(r.Dy())}).Check()
}

// Start begins pumping X events in the background
func (w *Window) Start(ctx context.Context) error {
	go w.pump()
	w.logger.Info("Window event pump started")
	return nil
}

// Stop closes the connection and waits for the pump to exit
func (w *Window) Stop(ctx context.Context) error {
	close(w.quit)
	w.conn.Close()
	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	w.logger.Info("Window closed")
	return nil
}

func (w *Window) pump() {
	defer close(w.done)
	for {
		ev, xerr := w.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			w.logger.Warn("X protocol error", zap.String("error", xerr.Error()))
			continue
		}

		switch e := ev.(type) {
		case xproto.ConfigureNotifyEvent:
			if e.Window == w.top {
				w.resized(image.Rect(0, 0, int(e.Width), int(e.Height)))
			}
		case xproto.ClientMessageEvent:
			if e.Format == 32 && xproto.Atom(e.Data.Data32[0]) == w.atoms.deleteWindow {
				select {
				case w.events <- domain.WindowEvent{Kind: domain.WindowClosed, Bounds: w.Bounds()}:
				case <-w.quit:
					return
				}
			}
		}
	}
}

func (w *Window) resized(bounds image.Rectangle) {
	w.mu.Lock()
	changed := w.bounds != bounds
	w.bounds = bounds
	w.mu.Unlock()
	if !changed {
		return
	}

	var err error
	for _, s := range w.slots {
		err = multierr.Append(err, w.configure(s.id, bounds))
	}
	err = multierr.Append(err, w.placeLogo(bounds))
	if err != nil {
		w.logger.Warn("Failed to lay out surfaces", zap.Error(err))
	}

	select {
	case w.events <- domain.WindowEvent{Kind: domain.WindowResized, Bounds: bounds}:
	default:
		// a newer resize supersedes this one
	}
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	var a atoms
	targets := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &a.protocols},
		{"WM_DELETE_WINDOW", &a.deleteWindow},
		{"_NET_WM_STATE", &a.wmState},
		{"_NET_WM_STATE_FULLSCREEN", &a.fullscreen},
		{"_NET_WM_WINDOW_OPACITY", &a.opacity},
		{"_NET_WM_NAME", &a.wmName},
		{"UTF8_STRING", &a.utf8},
	}

	cookies := make([]xproto.InternAtomCookie, len(targets))
	for i, t := range targets {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(t.name)), t.name)
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return a, err
		}
		*targets[i].dst = reply.Atom
	}
	return a, nil
}

func put32(v uint32) []byte {
	b := make([]byte, 4)
	xgb.Put32(b, v)
	return b
}
