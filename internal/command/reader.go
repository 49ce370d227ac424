package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/metrics"
	"go.uber.org/zap"
)

const (
	// MaxLineSize bounds one input line
	MaxLineSize = 1 << 20

	commandBuffer = 16
)

var errLineTooLong = errors.New("command line exceeds 1 MiB")

// Reader reads newline-delimited commands and delivers them to the owning loop
type Reader struct {
	logger    *zap.Logger
	reporter  domain.Reporter
	metrics   *metrics.Metrics
	debouncer *Debouncer
	in        io.Reader

	commands chan Command
	running  atomic.Bool
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewReader creates a reader over in. Lines are not read until Start.
func NewReader(logger *zap.Logger, reporter domain.Reporter, m *metrics.Metrics, debouncer *Debouncer, in io.Reader) *Reader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Reader{
		logger:    logger,
		reporter:  reporter,
		metrics:   m,
		debouncer: debouncer,
		in:        in,
		commands:  make(chan Command, commandBuffer),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Commands returns the channel of accepted commands
func (r *Reader) Commands() <-chan Command {
	return r.commands
}

// Start launches the reading goroutine and returns immediately
func (r *Reader) Start(ctx context.Context) error {
	r.running.Store(true)
	go r.run()
	r.logger.Info("Command reader started")
	return nil
}

// Stop flips the running flag. A read in progress returns at the next line or EOF.
func (r *Reader) Stop(ctx context.Context) error {
	r.running.Store(false)
	r.cancel()
	r.logger.Info("Command reader stopped")
	return nil
}

// Done is closed when the reading goroutine exits
func (r *Reader) Done() <-chan struct{} {
	return r.done
}

func (r *Reader) run() {
	defer close(r.done)

	br := bufio.NewReaderSize(r.in, 64*1024)
	for r.running.Load() {
		line, err := readLine(br)
		if !r.running.Load() {
			return
		}
		if errors.Is(err, errLineTooLong) {
			r.reporter.Error(domain.Invalid(err, "error reading stdin"))
			continue
		}
		if len(line) > 0 {
			_ = r.Submit(r.ctx, line)
		}
		if err == io.EOF {
			r.reporter.Info("stdin closed")
			return
		}
		if err != nil {
			r.reporter.Error(domain.Failed(err, "error reading stdin"))
			return
		}
	}
}

// Submit parses and debounces one line and hands it to the loop.
// Parse errors are reported and returned; a dropped duplicate is not an error.
func (r *Reader) Submit(ctx context.Context, line []byte) error {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	cmd, err := Parse(line)
	if err != nil {
		r.logger.Debug("Rejected command line", zap.ByteString("line", line), zap.Error(err))
		r.reporter.Error(err)
		return err
	}

	if !r.debouncer.Allow(cmd.Name()) {
		r.metrics.IncDuplicate()
		r.reporter.Debug(fmt.Sprintf("Skipping duplicate command within short interval: %s", cmd.Name()))
		return nil
	}

	select {
	case r.commands <- cmd:
		r.metrics.IncCommand(string(cmd.Name()))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.ctx.Done():
		return r.ctx.Err()
	}
}

// readLine returns one line without its terminator.
// Lines longer than MaxLineSize are consumed and reported as errLineTooLong.
func readLine(br *bufio.Reader) ([]byte, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineSize {
				tooLong = true
				line = nil
			}
		}
		if err != nil {
			if tooLong {
				return nil, errLineTooLong
			}
			return line, err
		}
		if !isPrefix {
			if tooLong {
				return nil, errLineTooLong
			}
			return line, nil
		}
	}
}
