package slots

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/Southclaws/fault/ftag"
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/domain/mocks"
	"github.com/genricoloni/duoplayer/internal/fakes"
	"github.com/genricoloni/duoplayer/internal/loop"
	"github.com/genricoloni/duoplayer/internal/loop/looptest"
	"github.com/genricoloni/duoplayer/internal/status"
	"github.com/genricoloni/duoplayer/internal/status/statustest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	set      *Set
	rec      *statustest.Recorder
	engines  [domain.SlotCount]*fakes.Engine
	surfaces [domain.SlotCount]*fakes.Surface
	loader   *fakes.Loader
	clock    *looptest.Manual
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		rec:    &statustest.Recorder{},
		loader: &fakes.Loader{Missing: map[string]bool{"/missing.png": true}},
		clock:  &looptest.Manual{},
	}
	deps := Deps{
		Logger:     zap.NewNop(),
		Reporter:   f.rec,
		Dispatcher: f.clock,
		Loader:     f.loader,
		Composer:   fakes.Composer{},
		Retry:      RetryPolicy{Attempts: 3, Interval: time.Millisecond},
	}
	for i := range deps.Engines {
		f.engines[i] = fakes.NewEngine(domain.SlotIndex(i))
		f.surfaces[i] = fakes.NewSurface(800, 600)
		deps.Engines[i] = f.engines[i]
		deps.Surfaces[i] = f.surfaces[i]
	}
	f.set = NewSet(deps)
	return f
}

func video(path string) domain.MediaItem {
	return domain.MediaItem{Path: path, MimeType: "video/mp4", UUID: "u-" + path}
}

func picture(path string) domain.MediaItem {
	return domain.MediaItem{Path: path, MimeType: "image/png", IsImage: true, UUID: "u-" + path}
}

func TestSet_LoadInto_CrossSlotIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.set.LoadInto(ctx, domain.SlotA, video("/a.mp4")); err != nil {
		t.Fatal(err)
	}
	if err := f.set.PlayActive(); err != nil {
		t.Fatal(err)
	}
	f.surfaces[domain.SlotA].ResetCalls()

	for _, item := range []domain.MediaItem{video("/b.mp4"), picture("/c.png")} {
		if err := f.set.LoadInto(ctx, domain.SlotB, item); err != nil {
			t.Fatalf("load %s: %v", item.Path, err)
		}

		if f.engines[domain.SlotA].Loaded() != "/a.mp4" || !f.engines[domain.SlotA].IsPlaying() {
			t.Errorf("slot 0 engine changed after loading %s into slot 1", item.Path)
		}
		if calls := f.surfaces[domain.SlotA].Calls(); len(calls) != 0 {
			t.Errorf("slot 0 surface touched: %v", calls)
		}
		if f.set.Active() != domain.SlotA {
			t.Errorf("active slot changed")
		}
		if got := f.set.Item(domain.SlotA); got == nil || got.Path != "/a.mp4" {
			t.Errorf("slot 0 item changed: %+v", got)
		}
	}
}

func TestSet_LoadInto_Reports(t *testing.T) {
	f := newFixture(t)
	if err := f.set.LoadInto(context.Background(), domain.SlotB, video("/b.mp4")); err != nil {
		t.Fatal(err)
	}

	types := f.rec.Types()
	if len(types) != 2 || types[0] != status.TypeMediaChanged || types[1] != status.TypePlayerData {
		t.Fatalf("unexpected lines: %v", types)
	}
	changed := f.rec.Lines()[0].Data.(status.MediaChanged)
	if changed.Idx != 1 || changed.UUID != "u-/b.mp4" || changed.Path != "/b.mp4" {
		t.Errorf("unexpected media_changed: %+v", changed)
	}
	data := f.rec.Lines()[1].Data.(status.PlayerData)
	if data.ID != 1 || data.Event != status.EventNone {
		t.Errorf("unexpected player_data: %+v", data)
	}
}

func TestSet_LoadInto_SamePathIsNotReloaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockMediaEngine(ctrl)

	f := newFixture(t)
	f.set.slots[domain.SlotA].engine = engine

	engine.EXPECT().Loaded().Return("/a.mp4")
	engine.EXPECT().Load(gomock.Any()).Times(0)
	engine.EXPECT().Snapshot().Return(domain.EngineSnapshot{Media: "/a.mp4"}).AnyTimes()

	if err := f.set.LoadInto(context.Background(), domain.SlotA, video("/a.mp4")); err != nil {
		t.Fatal(err)
	}
}

func TestSet_LoadInto_Errors(t *testing.T) {
	tests := []struct {
		name         string
		slot         domain.SlotIndex
		item         domain.MediaItem
		expectedKind ftag.Kind
		expectedErr  error
	}{
		{name: "Slot out of range", slot: 2, item: video("/a.mp4"), expectedKind: ftag.InvalidArgument, expectedErr: domain.ErrInvalidSlot},
		{name: "Negative slot", slot: -1, item: video("/a.mp4"), expectedKind: ftag.InvalidArgument, expectedErr: domain.ErrInvalidSlot},
		{name: "Empty path", slot: 0, item: domain.MediaItem{}, expectedKind: ftag.InvalidArgument, expectedErr: domain.ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.set.LoadInto(context.Background(), tt.slot, tt.item)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if ftag.Get(err) != tt.expectedKind {
				t.Errorf("expected kind %s, got %s", tt.expectedKind, ftag.Get(err))
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v in chain, got %v", tt.expectedErr, err)
			}
			if len(f.rec.Lines()) != 0 {
				t.Errorf("failed load must not report: %v", f.rec.Types())
			}
		})
	}
}

func TestSet_LoadImageStopsPreviousVideo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_ = f.set.LoadInto(ctx, domain.SlotA, video("/a.mp4"))
	_ = f.set.PlayActive()
	if err := f.set.LoadInto(ctx, domain.SlotA, picture("/a.png")); err != nil {
		t.Fatal(err)
	}
	f.clock.RunPending()

	if f.engines[domain.SlotA].IsPlaying() {
		t.Error("video should be stopped behind the image")
	}
	if !f.surfaces[domain.SlotA].HasImage() {
		t.Error("frame should be set on the surface")
	}
	if f.surfaces[domain.SlotA].Frame().Bounds().Dx() != 800 {
		t.Error("frame should be composed to the surface size")
	}

	// switching back to video drops the frame
	if err := f.set.LoadInto(ctx, domain.SlotA, video("/b.mp4")); err != nil {
		t.Fatal(err)
	}
	if f.surfaces[domain.SlotA].HasImage() {
		t.Error("frame should be cleared for a video item")
	}
}

func TestSet_LoadImage_MissingReportsLater(t *testing.T) {
	f := newFixture(t)
	if err := f.set.LoadInto(context.Background(), domain.SlotB, picture("/missing.png")); err != nil {
		t.Fatalf("decode failures are reported from the loop, got %v", err)
	}
	if len(f.rec.OfType(status.TypeError)) != 0 {
		t.Fatal("error reported before the load finished")
	}

	f.clock.RunPending()

	errs := f.rec.OfType(status.TypeError)
	if len(errs) != 1 || errs[0].Data.(status.ErrorData).Kind != string(ftag.NotFound) {
		t.Fatalf("expected one NOT_FOUND line, got %v", errs)
	}
	if f.set.Item(domain.SlotB) != nil {
		t.Error("failed image must not stay bound")
	}
	if err := f.set.Start(domain.SlotB); ftag.Get(err) != ftag.NotFound {
		t.Errorf("expected NOT_FOUND when playing a failed image, got %v", err)
	}
}

func TestSet_LoadImage_StaleResultDropped(t *testing.T) {
	tests := []struct {
		name      string
		next      domain.MediaItem
		wantFrame bool
	}{
		{name: "Replaced by video", next: video("/b.mp4"), wantFrame: false},
		{name: "Replaced by image", next: picture("/b.png"), wantFrame: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_ = f.set.LoadInto(ctx, domain.SlotA, picture("/a.png"))
			if err := f.set.LoadInto(ctx, domain.SlotA, tt.next); err != nil {
				t.Fatal(err)
			}
			f.clock.RunPending()

			calls := 0
			for _, c := range f.surfaces[domain.SlotA].Calls() {
				if c == "set_image" {
					calls++
				}
			}
			if tt.wantFrame != (calls == 1) || calls > 1 {
				t.Errorf("expected only the latest item drawn, got %d frames", calls)
			}
			if got := f.set.Item(domain.SlotA); got == nil || got.Path != tt.next.Path {
				t.Errorf("expected %s bound, got %+v", tt.next.Path, got)
			}
		})
	}
}

func TestSet_StartBeforeImageDecoded(t *testing.T) {
	f := newFixture(t)
	_ = f.set.LoadInto(context.Background(), domain.SlotA, picture("/a.png"))

	if err := f.set.Start(domain.SlotA); err != nil {
		t.Fatal(err)
	}
	if f.set.Slot(domain.SlotA).State() == domain.StatePlaying {
		t.Error("image cannot be displaying before it is decoded")
	}
	if !f.set.Busy(domain.SlotA) {
		t.Error("a started image is busy while it decodes")
	}
	f.rec.Reset()

	f.clock.RunPending()

	if f.set.Slot(domain.SlotA).State() != domain.StatePlaying || !f.surfaces[domain.SlotA].HasImage() {
		t.Error("image should be displayed once decoded")
	}
	data := f.rec.OfType(status.TypePlayerData)
	if len(data) != 1 || data[0].Data.(status.PlayerData).Event != status.EventDisplayImage {
		t.Errorf("expected one display_image line, got %v", data)
	}
}

// gatedLoader blocks every load until release is closed
type gatedLoader struct {
	release chan struct{}
}

func (g *gatedLoader) Load(ctx context.Context, _ string) (image.Image, error) {
	select {
	case <-g.release:
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestSet_SlowImageDoesNotBlockLoop(t *testing.T) {
	l := loop.New(zap.NewNop())
	runLoop(t, l)

	loader := &gatedLoader{release: make(chan struct{})}
	surfaces := [domain.SlotCount]*fakes.Surface{fakes.NewSurface(8, 8), fakes.NewSurface(8, 8)}
	s := NewSet(Deps{
		Logger:     zap.NewNop(),
		Reporter:   &statustest.Recorder{},
		Dispatcher: l,
		Loader:     loader,
		Composer:   fakes.Composer{},
		Engines:    [domain.SlotCount]domain.MediaEngine{fakes.NewEngine(0), fakes.NewEngine(1)},
		Surfaces:   [domain.SlotCount]domain.Surface{surfaces[0], surfaces[1]},
	})

	ctx := t.Context()
	if err := loop.Call(ctx, l, func() error {
		return s.LoadInto(ctx, domain.SlotA, picture("/remote.png"))
	}); err != nil {
		t.Fatal(err)
	}

	// the loop keeps serving while the load is held
	callCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := loop.Call(callCtx, l, func() error { return nil }); err != nil {
		t.Fatalf("loop blocked by image load: %v", err)
	}
	if l.InFlight() != 1 {
		t.Fatalf("expected the load in flight, got %d", l.InFlight())
	}

	close(loader.release)
	waitFor(t, func() bool { return l.InFlight() == 0 })
	if !surfaces[0].HasImage() {
		t.Error("frame should be set once the load completes")
	}
}

func TestSet_ActiveOperations(t *testing.T) {
	tests := []struct {
		name         string
		op           func(s *Set) error
		expectedKind ftag.Kind
		check        func(t *testing.T, f *fixture)
	}{
		{name: "Seek", op: func(s *Set) error { return s.SeekActive(1500) }, check: func(t *testing.T, f *fixture) {
			if f.engines[0].Time() != 1500 {
				t.Errorf("expected 1500, got %d", f.engines[0].Time())
			}
		}},
		{name: "Negative seek", op: func(s *Set) error { return s.SeekActive(-1) }, expectedKind: ftag.InvalidArgument},
		{name: "Volume", op: func(s *Set) error { return s.SetVolume(150) }, check: func(t *testing.T, f *fixture) {
			if f.engines[0].Snapshot().Volume != 150 {
				t.Errorf("volume not applied")
			}
		}},
		{name: "Volume too high", op: func(s *Set) error { return s.SetVolume(201) }, expectedKind: ftag.InvalidArgument},
		{name: "Volume negative", op: func(s *Set) error { return s.SetVolume(-5) }, expectedKind: ftag.InvalidArgument},
		{name: "Rate", op: func(s *Set) error { return s.SetRate(1.5) }, check: func(t *testing.T, f *fixture) {
			if f.engines[0].Snapshot().Rate != 1.5 {
				t.Errorf("rate not applied")
			}
		}},
		{name: "Zero rate", op: func(s *Set) error { return s.SetRate(0) }, expectedKind: ftag.InvalidArgument},
		{name: "Pause", op: func(s *Set) error { return s.PauseActive() }, check: func(t *testing.T, f *fixture) {
			if f.engines[0].IsPlaying() {
				t.Errorf("engine still playing")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_ = f.set.LoadInto(context.Background(), domain.SlotA, video("/a.mp4"))
			_ = f.set.PlayActive()

			err := tt.op(f.set)
			if tt.expectedKind != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if ftag.Get(err) != tt.expectedKind {
					t.Errorf("expected kind %s, got %s", tt.expectedKind, ftag.Get(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestSet_MissingEngine(t *testing.T) {
	f := newFixture(t)
	f.set.slots[domain.SlotA].engine = nil
	f.set.slots[domain.SlotA].item = &domain.MediaItem{Path: "/a.mp4"}

	for name, op := range map[string]func() error{
		"play":   f.set.PlayActive,
		"pause":  f.set.PauseActive,
		"seek":   func() error { return f.set.SeekActive(10) },
		"volume": func() error { return f.set.SetVolume(10) },
		"speed":  func() error { return f.set.SetRate(2) },
	} {
		if err := op(); ftag.Get(err) != ftag.NotFound {
			t.Errorf("%s: expected NOT_FOUND, got %v", name, err)
		}
	}
}

func TestSet_StopSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.set.LoadInto(ctx, domain.SlotA, video("/a.mp4"))
	_ = f.set.LoadInto(ctx, domain.SlotB, picture("/b.png"))
	f.clock.RunPending()
	_ = f.set.Start(domain.SlotA)
	_ = f.set.Start(domain.SlotB)
	f.rec.Reset()

	if err := f.set.StopSlot(domain.SlotA); err != nil {
		t.Fatal(err)
	}
	if f.engines[domain.SlotA].IsPlaying() || f.surfaces[domain.SlotA].Visible() {
		t.Error("slot 0 should be stopped and hidden")
	}

	if err := f.set.StopSlot(domain.SlotB); err != nil {
		t.Fatal(err)
	}
	if f.surfaces[domain.SlotB].HasImage() {
		t.Error("slot 1 image should be cleared")
	}

	lines := f.rec.OfType(status.TypePlayerData)
	if len(lines) != 2 {
		t.Fatalf("expected 2 player_data lines, got %d", len(lines))
	}
	if ev := lines[1].Data.(status.PlayerData).Event; ev != status.EventStopImage {
		t.Errorf("expected stop_image, got %s", ev)
	}

	if err := f.set.StopSlot(5); ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT for slot 5, got %v", err)
	}
}

func TestSet_PlayStoppedImageShowsItAgain(t *testing.T) {
	f := newFixture(t)
	_ = f.set.LoadInto(context.Background(), domain.SlotA, picture("/a.png"))
	f.clock.RunPending()
	_ = f.set.StopSlot(domain.SlotA)

	if err := f.set.PlayActive(); err != nil {
		t.Fatal(err)
	}
	if !f.surfaces[domain.SlotA].HasImage() || !f.surfaces[domain.SlotA].Visible() {
		t.Error("image should be displayed again")
	}
	if f.set.Slot(domain.SlotA).State() != domain.StatePlaying {
		t.Errorf("unexpected state %s", f.set.Slot(domain.SlotA).State())
	}
}

func TestSet_FreeSlot(t *testing.T) {
	f := newFixture(t)
	if f.set.FreeSlot() != domain.SlotA {
		t.Error("idle active slot should be reused")
	}

	_ = f.set.LoadInto(context.Background(), domain.SlotA, video("/a.mp4"))
	_ = f.set.PlayActive()
	if f.set.FreeSlot() != domain.SlotB {
		t.Error("playing active slot should hand over to the other slot")
	}

	f.set.SetActive(domain.SlotB)
	_ = f.set.LoadInto(context.Background(), domain.SlotB, picture("/b.png"))
	f.clock.RunPending()
	if f.set.FreeSlot() != domain.SlotA {
		t.Error("slot showing an image is busy")
	}
}

func TestSet_ApplyEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.set.LoadInto(ctx, domain.SlotA, video("/a.mp4"))
	_ = f.set.LoadInto(ctx, domain.SlotB, picture("/b.png"))
	f.clock.RunPending()
	f.rec.Reset()

	if !f.set.ApplyEvent(domain.EngineEvent{Slot: domain.SlotA, Kind: domain.EventPlaying}) {
		t.Fatal("event should apply")
	}
	if f.set.Slot(domain.SlotA).State() != domain.StatePlaying {
		t.Errorf("unexpected state %s", f.set.Slot(domain.SlotA).State())
	}
	if ev := f.rec.Lines()[0].Data.(status.PlayerData).Event; ev != "MediaPlayerPlaying" {
		t.Errorf("unexpected event name %s", ev)
	}

	// the engine behind an image stopping is not news
	if f.set.ApplyEvent(domain.EngineEvent{Slot: domain.SlotB, Kind: domain.EventStopped}) {
		t.Error("engine event on image slot should be ignored")
	}
	if f.set.ApplyEvent(domain.EngineEvent{Slot: 3, Kind: domain.EventStopped}) {
		t.Error("event on invalid slot should be ignored")
	}
	if f.set.ApplyEvent(domain.EngineEvent{Slot: domain.SlotB, Kind: domain.EventDwellElapsed}) {
		t.Error("dwell expiry on the standby slot should be ignored")
	}
	if f.set.ApplyEvent(domain.EngineEvent{Slot: domain.SlotA, Kind: domain.EventDwellElapsed}) {
		t.Error("dwell expiry on a video slot should be ignored")
	}

	f.set.SetActive(domain.SlotB)
	if !f.set.ApplyEvent(domain.EngineEvent{Slot: domain.SlotB, Kind: domain.EventDwellElapsed}) {
		t.Error("dwell expiry should apply to the active image slot")
	}

	_ = f.set.StopSlot(domain.SlotB)
	if f.set.ApplyEvent(domain.EngineEvent{Slot: domain.SlotB, Kind: domain.EventDwellElapsed}) {
		t.Error("dwell expiry after a stop should be ignored")
	}
}

func TestSet_SetFullscreenAndBackground(t *testing.T) {
	f := newFixture(t)
	_ = f.set.LoadInto(context.Background(), domain.SlotB, picture("/b.png"))
	f.clock.RunPending()

	if err := f.set.SetFullscreen(true); err != nil {
		t.Fatal(err)
	}
	for i, e := range f.engines {
		if !e.Snapshot().Fullscreen {
			t.Errorf("engine %d not fullscreen", i)
		}
	}
	if !f.set.Snapshot(domain.SlotA, status.EventNone).Fullscreen {
		t.Error("player_data should report fullscreen")
	}

	f.surfaces[domain.SlotB].ResetCalls()
	f.surfaces[domain.SlotB].Bounds.Max.X = 1024
	if err := f.set.SetBackground(color.White); err != nil {
		t.Fatal(err)
	}
	if calls := f.surfaces[domain.SlotB].Calls(); len(calls) != 1 || calls[0] != "set_image" {
		t.Errorf("expected image recomposed, got %v", calls)
	}
	if f.surfaces[domain.SlotB].Frame().Bounds().Dx() != 1024 {
		t.Error("frame should follow the new geometry")
	}
}

func TestSet_EnumerateAudioDevices(t *testing.T) {
	f := newFixture(t)
	f.engines[domain.SlotA].Devices = []domain.AudioDevice{
		{ID: "", Name: ""},
		{ID: "hw:1", Name: "USB"},
	}

	devices, err := f.set.EnumerateAudioDevices()
	if err != nil {
		t.Fatal(err)
	}
	if devices[0].ID != "default" || devices[1].ID != "hw:1" {
		t.Errorf("unexpected devices: %+v", devices)
	}
	lines := f.rec.OfType(status.TypeAudioDevices)
	if len(lines) != 1 || len(lines[0].Data.(status.AudioDevices).Devices) != 2 {
		t.Errorf("unexpected audiodevices lines: %+v", lines)
	}
}

// runLoop drains a real loop until the test ends
func runLoop(t *testing.T, l *loop.Loop) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case fn := <-l.Tasks():
				fn()
			}
		}
	}()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSet_SetAudioDevice_RetriesThenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineA := mocks.NewMockMediaEngine(ctrl)
	engineB := mocks.NewMockMediaEngine(ctrl)
	rejected := errors.New("device rejected")

	var attempts []time.Time
	engineA.EXPECT().SetAudioDevice("bogus-id").DoAndReturn(func(string) error {
		attempts = append(attempts, time.Now())
		return rejected
	}).Times(3)
	engineB.EXPECT().SetAudioDevice("bogus-id").Return(rejected).Times(3)
	engineA.EXPECT().Release().Return(nil)
	engineB.EXPECT().Release().Return(nil)

	l := loop.New(zap.NewNop())
	runLoop(t, l)

	rec := &statustest.Recorder{}
	interval := 20 * time.Millisecond
	s := NewSet(Deps{
		Logger:     zap.NewNop(),
		Reporter:   rec,
		Dispatcher: l,
		Engines:    [domain.SlotCount]domain.MediaEngine{engineA, engineB},
		Surfaces:   [domain.SlotCount]domain.Surface{fakes.NewSurface(8, 8), fakes.NewSurface(8, 8)},
		Retry:      RetryPolicy{Attempts: 3, Interval: interval},
	})

	done := make(chan error, 1)
	l.Post(func() { done <- s.SetAudioDevice("bogus-id") })
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool { return len(rec.OfType(status.TypeError)) > 0 })
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}

	warns := rec.OfType(status.TypeWarn)
	if len(warns) != 2 {
		t.Fatalf("expected 2 warn lines, got %d", len(warns))
	}
	if warns[0].Data != "Retrying to set audio device: bogus-id (Attempt 1/3)" {
		t.Errorf("unexpected warn: %v", warns[0].Data)
	}
	if got := len(rec.OfType(status.TypeError)); got != 1 {
		t.Errorf("expected exactly 1 error line, got %d", got)
	}
	for i := 1; i < len(attempts); i++ {
		if gap := attempts[i].Sub(attempts[i-1]); gap < interval {
			t.Errorf("attempts %d and %d only %v apart", i-1, i, gap)
		}
	}
}

func TestSet_SetAudioDevice_SucceedsAfterRetry(t *testing.T) {
	f := newFixture(t)
	l := loop.New(zap.NewNop())
	runLoop(t, l)
	f.set.dispatcher = l

	f.set.retry.Interval = 50 * time.Millisecond
	f.engines[domain.SlotB].DeviceErr = errors.New("busy")

	done := make(chan error, 1)
	l.Post(func() { done <- f.set.SetAudioDevice("hw:1") })
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool { return len(f.rec.OfType(status.TypeWarn)) > 0 })
	l.Post(func() { f.engines[domain.SlotB].DeviceErr = nil })
	waitFor(t, func() bool { return len(f.rec.OfType(status.TypeInfo)) > 0 })

	if f.engines[domain.SlotA].Device() != "hw:1" || f.engines[domain.SlotB].Device() != "hw:1" {
		t.Error("device should be applied to both engines")
	}
	if len(f.rec.OfType(status.TypeError)) != 0 {
		t.Error("no error expected after a successful retry")
	}
	_ = f.set.Close(context.Background())
}

func TestSet_SetAudioDevice_Empty(t *testing.T) {
	f := newFixture(t)
	if err := f.set.SetAudioDevice("  "); ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}
