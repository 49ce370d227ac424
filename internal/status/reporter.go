package status

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"sync"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/metrics"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// Status line types
const (
	TypeInfo          = "info"
	TypeError         = "error"
	TypeDebug         = "debug"
	TypeWarn          = "warn"
	TypePlayerData    = "player_data"
	TypeMediaChanged  = "media_changed"
	TypeEndReached    = "end_reached"
	TypeAudioDevices  = "audiodevices"
	TypeActivePlayer  = "active_player_id"
	TypeTrackIndex    = "track_index"
	TypeSetFullscreen = "set_fullscreen"
	TypeSetImageTime  = "set_image_time"
)

// Line is one status line as written on the output stream
type Line struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ErrorData is the payload of an error line
type ErrorData struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// ValueData wraps single-value payloads such as active_player_id
type ValueData[T any] struct {
	Value T `json:"value"`
}

// Reporter writes status lines as newline-delimited JSON.
// It is safe for concurrent use.
type Reporter struct {
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu  sync.Mutex
	out *bufio.Writer

	last *xsync.MapOf[string, json.RawMessage]
}

// NewReporter creates a Reporter writing to out
func NewReporter(logger *zap.Logger, m *metrics.Metrics, out io.Writer) *Reporter {
	return &Reporter{
		logger:  logger,
		metrics: m,
		out:     bufio.NewWriter(out),
		last:    xsync.NewMapOf[string, json.RawMessage](),
	}
}

// Emit writes one line and flushes it before returning
func (r *Reporter) Emit(kind string, data any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Line{Type: kind, Data: data}); err != nil {
		r.logger.Error("Failed to encode status line", zap.String("type", kind), zap.Error(err))
		return
	}
	line := buf.Bytes()

	r.mu.Lock()
	_, err := r.out.Write(line)
	if err == nil {
		err = r.out.Flush()
	}
	r.mu.Unlock()

	if err != nil {
		r.logger.Error("Failed to write status line", zap.String("type", kind), zap.Error(err))
		return
	}

	raw := make(json.RawMessage, len(line)-1)
	copy(raw, line[:len(line)-1])
	r.last.Store(kind, raw)
	r.metrics.IncStatus(kind)
	r.logger.Debug("Status emitted", zap.ByteString("line", raw))
}

// Info emits an info line
func (r *Reporter) Info(msg string) { r.Emit(TypeInfo, msg) }

// Warn emits a warn line
func (r *Reporter) Warn(msg string) { r.Emit(TypeWarn, msg) }

// Debug emits a debug line
func (r *Reporter) Debug(msg string) { r.Emit(TypeDebug, msg) }

// Error emits an error line classified by its fault tag
func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	kind := domain.Kind(err)
	r.metrics.IncError(kind)
	r.Emit(TypeError, ErrorData{Message: err.Error(), Kind: kind})
}

// Last returns the most recent line of every type written so far
func (r *Reporter) Last() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	r.last.Range(func(kind string, line json.RawMessage) bool {
		out[kind] = line
		return true
	})
	return out
}
