//go:build linux

package surface

import (
	"image"
	"sync"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/multierr"
)

// Surface is one child window of the top-level window
type Surface struct {
	window *Window
	id     xproto.Window

	mu      sync.Mutex
	visible bool
	pixmap  xproto.Pixmap
	image   bool
}

// Show maps the surface
func (s *Surface) Show() error {
	if err := xproto.MapWindowChecked(s.window.conn, s.id).Check(); err != nil {
		return domain.Failed(err, "cannot show surface")
	}
	s.setVisible(true)
	return nil
}

// Hide unmaps the surface
func (s *Surface) Hide() error {
	if err := xproto.UnmapWindowChecked(s.window.conn, s.id).Check(); err != nil {
		return domain.Failed(err, "cannot hide surface")
	}
	s.setVisible(false)
	return nil
}

func (s *Surface) setVisible(v bool) {
	s.mu.Lock()
	s.visible = v
	s.mu.Unlock()
}

// Raise stacks the surface above its siblings
func (s *Surface) Raise() error {
	err := xproto.ConfigureWindowChecked(s.window.conn, s.id,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
	if err != nil {
		return domain.Failed(err, "cannot raise surface")
	}
	return nil
}

// Visible reports the last requested visibility
func (s *Surface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// SetImage uploads frame into a pixmap and makes it the window background
func (s *Surface) SetImage(frame image.Image) error {
	size := frame.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return domain.Invalid(image.ErrFormat, "cannot display an empty frame")
	}

	conn := s.window.conn
	pid, err := xproto.NewPixmapId(conn)
	if err != nil {
		return domain.Failed(err, "cannot allocate pixmap")
	}
	err = xproto.CreatePixmapChecked(conn, s.window.screen.RootDepth, pid,
		xproto.Drawable(s.id), uint16(size.X), uint16(size.Y)).Check()
	if err != nil {
		return domain.Failed(err, "cannot allocate pixmap")
	}

	if err := s.upload(pid, size, zpixmap(frame)); err != nil {
		xproto.FreePixmap(conn, pid)
		return domain.Failed(err, "cannot upload frame")
	}

	err = multierr.Append(
		xproto.ChangeWindowAttributesChecked(conn, s.id, xproto.CwBackPixmap, []uint32{uint32(pid)}).Check(),
		xproto.ClearAreaChecked(conn, false, s.id, 0, 0, 0, 0).Check(),
	)
	if err != nil {
		xproto.FreePixmap(conn, pid)
		return domain.Failed(err, "cannot display frame")
	}

	s.mu.Lock()
	old, had := s.pixmap, s.image
	s.pixmap, s.image = pid, true
	s.mu.Unlock()
	if had {
		xproto.FreePixmap(conn, old)
	}
	return nil
}

func (s *Surface) upload(pid xproto.Pixmap, size image.Point, data []byte) error {
	stride := size.X * bytesPerPx
	rows := rowsPerRequest(size.X, s.window.maxBytes)
	for y := 0; y < size.Y; y += rows {
		n := min(rows, size.Y-y)
		chunk := data[y*stride : (y+n)*stride]
		err := xproto.PutImageChecked(s.window.conn, xproto.ImageFormatZPixmap, xproto.Drawable(pid),
			s.window.gc, uint16(size.X), uint16(n), 0, int16(y), 0, s.window.screen.RootDepth, chunk).Check()
		if err != nil {
			return err
		}
	}
	return nil
}

// ClearImage restores the background color and frees the pixmap
func (s *Surface) ClearImage() error {
	s.mu.Lock()
	old, had := s.pixmap, s.image
	s.pixmap, s.image = 0, false
	s.mu.Unlock()
	if !had {
		return nil
	}

	s.window.mu.Lock()
	px := s.window.background
	s.window.mu.Unlock()

	err := s.window.fill(s.id, px)
	xproto.FreePixmap(s.window.conn, old)
	if err != nil {
		return domain.Failed(err, "cannot clear frame")
	}
	return nil
}

// HasImage reports whether a frame is displayed
func (s *Surface) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image
}

// SetOpacity sets _NET_WM_WINDOW_OPACITY; it takes effect under a compositing manager
func (s *Surface) SetOpacity(level float64) error {
	err := xproto.ChangePropertyChecked(s.window.conn, xproto.PropModeReplace, s.id,
		s.window.atoms.opacity, xproto.AtomCardinal, 32, 1, put32(opacityValue(level))).Check()
	if err != nil {
		return domain.Failed(err, "cannot set surface opacity")
	}
	return nil
}

// Geometry returns the client area the surface covers
func (s *Surface) Geometry() image.Rectangle {
	return s.window.Bounds()
}

// Handle returns the X window id the engine renders into
func (s *Surface) Handle() uint32 {
	return uint32(s.id)
}
