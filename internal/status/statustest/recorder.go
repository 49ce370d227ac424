// Package statustest provides an in-memory domain.Reporter for tests.
package statustest

import (
	"sync"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/status"
	"github.com/samber/lo"
)

// Recorder keeps every emitted line in order
type Recorder struct {
	mu    sync.Mutex
	lines []status.Line
}

// Emit records one line
func (r *Recorder) Emit(kind string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, status.Line{Type: kind, Data: data})
}

func (r *Recorder) Info(msg string)  { r.Emit(status.TypeInfo, msg) }
func (r *Recorder) Warn(msg string)  { r.Emit(status.TypeWarn, msg) }
func (r *Recorder) Debug(msg string) { r.Emit(status.TypeDebug, msg) }

// Error records an error line the way the real reporter shapes it
func (r *Recorder) Error(err error) {
	if err == nil {
		return
	}
	r.Emit(status.TypeError, status.ErrorData{Message: err.Error(), Kind: domain.Kind(err)})
}

// Lines returns a copy of all recorded lines
func (r *Recorder) Lines() []status.Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]status.Line(nil), r.lines...)
}

// OfType returns the recorded lines of one type
func (r *Recorder) OfType(kind string) []status.Line {
	return lo.Filter(r.Lines(), func(l status.Line, _ int) bool {
		return l.Type == kind
	})
}

// Types returns the type of every recorded line in order
func (r *Recorder) Types() []string {
	return lo.Map(r.Lines(), func(l status.Line, _ int) string {
		return l.Type
	})
}

// Reset forgets recorded lines
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
