package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/duoplayer/internal/status"
	"github.com/genricoloni/duoplayer/internal/status/statustest"
	"go.uber.org/zap"
)

func collect(t *testing.T, r *Reader) []Command {
	t.Helper()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not finish")
	}
	var out []Command
	for {
		select {
		case cmd := <-r.Commands():
			out = append(out, cmd)
		default:
			return out
		}
	}
}

func TestReader_Run(t *testing.T) {
	input := strings.Join([]string{
		`{"command":"play"}`,
		``,
		`not json`,
		`{"command":"pause","idx":1}`,
		`{"command":"unknown_thing"}`,
		`{"command":"next"}`,
	}, "\n")

	rec := &statustest.Recorder{}
	r := NewReader(zap.NewNop(), rec, nil, NewDebouncer(0, nil), strings.NewReader(input))
	if err := r.Start(t.Context()); err != nil {
		t.Fatal(err)
	}

	cmds := collect(t, r)
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	want := []Name{NamePlay, NamePause, NameNext}
	for i, cmd := range cmds {
		if cmd.Name() != want[i] {
			t.Errorf("command %d: expected %s, got %s", i, want[i], cmd.Name())
		}
	}

	if got := len(rec.OfType(status.TypeError)); got != 2 {
		t.Errorf("expected 2 error lines, got %d", got)
	}
	if got := rec.OfType(status.TypeInfo); len(got) != 1 || got[0].Data != "stdin closed" {
		t.Errorf("expected stdin closed info, got %v", got)
	}
}

func TestReader_DuplicateDropped(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	rec := &statustest.Recorder{}
	r := NewReader(zap.NewNop(), rec, nil, NewDebouncer(100*time.Millisecond, clock.Now), strings.NewReader(""))

	ctx := context.Background()
	if err := r.Submit(ctx, []byte(`{"command":"play"}`)); err != nil {
		t.Fatal(err)
	}
	clock.Advance(50 * time.Millisecond)
	if err := r.Submit(ctx, []byte(`{"command":"play"}`)); err != nil {
		t.Fatal(err)
	}

	if len(r.Commands()) != 1 {
		t.Errorf("expected 1 delivered command, got %d", len(r.Commands()))
	}
	debug := rec.OfType(status.TypeDebug)
	if len(debug) != 1 || debug[0].Data != "Skipping duplicate command within short interval: play" {
		t.Errorf("unexpected debug lines: %v", debug)
	}
}

func TestReader_SubmitParseError(t *testing.T) {
	rec := &statustest.Recorder{}
	r := NewReader(zap.NewNop(), rec, nil, NewDebouncer(0, nil), strings.NewReader(""))

	if err := r.Submit(context.Background(), []byte(`{"command":1}`)); err == nil {
		t.Fatal("expected parse error")
	}
	if len(rec.OfType(status.TypeError)) != 1 {
		t.Errorf("expected one error line, got %v", rec.Types())
	}
}

func TestReader_LineTooLong(t *testing.T) {
	long := `{"command":"set_tracks","tracks":[{"path":"` + strings.Repeat("a", MaxLineSize) + `"}]}`
	input := long + "\n" + `{"command":"next"}` + "\n"

	rec := &statustest.Recorder{}
	r := NewReader(zap.NewNop(), rec, nil, NewDebouncer(0, nil), strings.NewReader(input))
	_ = r.Start(t.Context())

	cmds := collect(t, r)
	if len(cmds) != 1 || cmds[0].Name() != NameNext {
		t.Fatalf("expected reader to continue after long line, got %v", cmds)
	}
	if len(rec.OfType(status.TypeError)) != 1 {
		t.Errorf("expected one error line, got %v", rec.Types())
	}
}
