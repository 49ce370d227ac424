package engine

import (
	"context"
	"fmt"

	"github.com/genricoloni/duoplayer/internal/domain"
	"go.uber.org/zap"
)

// setLogoFile decodes the logo off the loop; only the latest request is applied
func (e *Engine) setLogoFile(ctx context.Context, path string) error {
	e.logoLoads++
	if path == "" {
		e.logoSource = nil
		return e.renderLogo()
	}

	load := e.logoLoads
	e.loop.Go(func() func() {
		src, err := e.loader.Load(ctx, path)
		return func() {
			if load != e.logoLoads {
				e.logger.Debug("Stale logo dropped", zap.String("path", path))
				return
			}
			if err == nil {
				e.logoSource = src
				err = e.renderLogo()
			}
			if err != nil {
				e.reporter.Error(err)
			}
		}
	})
	return nil
}

func (e *Engine) setLogoSize(width int) error {
	if width < 0 {
		return domain.Invalid(fmt.Errorf("logo size %d is negative", width), "cannot set logo size")
	}
	e.logoSize = width
	return e.renderLogo()
}

func (e *Engine) renderLogo() error {
	if e.logoSource == nil {
		if err := e.window.SetLogo(nil); err != nil {
			return domain.Failed(err, "cannot clear logo")
		}
		e.syncLogo()
		return nil
	}

	frame, err := e.composer.Logo(e.logoSource, e.logoSize)
	if err != nil {
		return err
	}
	if err := e.window.SetLogo(frame); err != nil {
		return domain.Failed(err, "cannot set logo")
	}
	e.syncLogo()
	return nil
}

// wantLogo reports whether the logo belongs on screen: enabled, loaded, and
// nothing visual is playing on the active slot
func (e *Engine) wantLogo() bool {
	if !e.logoShow || e.logoSource == nil {
		return false
	}
	active := e.players.Active()
	if item := e.players.Item(active); item != nil && item.IsAudio() {
		return true
	}
	return !e.players.Busy(active)
}

func (e *Engine) syncLogo() { e.applyLogo(false) }

// restackLogo also raises a visible logo again after a surface was stacked above it
func (e *Engine) restackLogo() { e.applyLogo(true) }

func (e *Engine) applyLogo(restack bool) {
	want := e.wantLogo()
	if want == e.logoVisible && !(want && restack) {
		return
	}
	if err := e.window.ShowLogo(want); err != nil {
		e.logger.Warn("Failed to toggle logo", zap.Bool("show", want), zap.Error(err))
		return
	}
	e.logoVisible = want
	e.logger.Debug("Logo visibility changed", zap.Bool("show", want))
}
