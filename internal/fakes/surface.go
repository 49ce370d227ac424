// Package fakes provides in-memory players, surfaces and windows for tests.
package fakes

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/genricoloni/duoplayer/internal/domain"
)

// Surface records the requested visibility, stacking and frame
type Surface struct {
	mu      sync.Mutex
	Bounds  image.Rectangle
	visible bool
	frame   image.Image
	opacity float64
	raised  int
	calls   []string
}

// NewSurface creates a hidden surface of the given size
func NewSurface(w, h int) *Surface {
	return &Surface{Bounds: image.Rect(0, 0, w, h), opacity: 1}
}

func (s *Surface) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *Surface) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	s.record("show")
	return nil
}

func (s *Surface) Hide() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
	s.record("hide")
	return nil
}

func (s *Surface) Raise() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raised++
	s.record("raise")
	return nil
}

func (s *Surface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Surface) SetImage(frame image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
	s.record("set_image")
	return nil
}

func (s *Surface) ClearImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = nil
	s.record("clear_image")
	return nil
}

func (s *Surface) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame != nil
}

func (s *Surface) SetOpacity(level float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opacity = level
	return nil
}

// Opacity returns the last opacity set
func (s *Surface) Opacity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opacity
}

// Frame returns the displayed frame
func (s *Surface) Frame() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Raised counts Raise calls
func (s *Surface) Raised() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raised
}

// Calls returns the recorded call names in order
func (s *Surface) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// ResetCalls forgets recorded calls
func (s *Surface) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *Surface) Geometry() image.Rectangle { return s.Bounds }

func (s *Surface) Handle() uint32 { return 0 }

// Window hosts two fake surfaces
type Window struct {
	mu         sync.Mutex
	surfaces   [domain.SlotCount]*Surface
	events     chan domain.WindowEvent
	fullscreen bool
	background color.Color
	logo       image.Image
	logoShown  bool
}

// NewWindow creates a window with two 800x600 surfaces
func NewWindow() *Window {
	return &Window{
		surfaces: [domain.SlotCount]*Surface{NewSurface(800, 600), NewSurface(800, 600)},
		events:   make(chan domain.WindowEvent, 4),
	}
}

func (w *Window) Surfaces() [domain.SlotCount]domain.Surface {
	return [domain.SlotCount]domain.Surface{w.surfaces[0], w.surfaces[1]}
}

// Fake returns the concrete surface of idx
func (w *Window) Fake(idx domain.SlotIndex) *Surface { return w.surfaces[idx] }

func (w *Window) SetFullscreen(on bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fullscreen = on
	return nil
}

func (w *Window) SetBackground(c color.Color) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.background = c
	return nil
}

func (w *Window) SetLogo(frame image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logo = frame
	return nil
}

func (w *Window) ShowLogo(show bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logoShown = show
	return nil
}

// LogoShown reports the last logo visibility
func (w *Window) LogoShown() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logoShown
}

// Logo returns the last logo frame
func (w *Window) Logo() image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logo
}

// IsFullscreen reports the last fullscreen flag
func (w *Window) IsFullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullscreen
}

// Background returns the last background color
func (w *Window) Background() color.Color {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.background
}

func (w *Window) Bounds() image.Rectangle { return image.Rect(0, 0, 800, 600) }

func (w *Window) Events() <-chan domain.WindowEvent { return w.events }

// Send delivers a window event
func (w *Window) Send(ev domain.WindowEvent) { w.events <- ev }

func (w *Window) Start(ctx context.Context) error { return nil }

func (w *Window) Stop(ctx context.Context) error { return nil }
