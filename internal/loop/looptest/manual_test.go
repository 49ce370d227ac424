package looptest

import (
	"testing"
	"time"
)

func TestManual_AdvanceFiresInOrder(t *testing.T) {
	m := &Manual{}
	var got []string

	m.After(30*time.Millisecond, func() { got = append(got, "c") })
	m.After(10*time.Millisecond, func() {
		got = append(got, "a")
		m.After(10*time.Millisecond, func() { got = append(got, "b") })
	})
	cancel := m.After(20*time.Millisecond, func() { got = append(got, "x") })
	cancel()

	m.Advance(25 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order: %v", got)
	}
	if m.PendingTimers() != 1 {
		t.Errorf("expected 1 pending timer, got %d", m.PendingTimers())
	}

	m.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("unexpected order: %v", got)
	}
	if m.Now() != 35*time.Millisecond {
		t.Errorf("unexpected clock: %v", m.Now())
	}
}

func TestManual_RunPending(t *testing.T) {
	m := &Manual{}
	count := 0
	m.Post(func() {
		count++
		m.Post(func() { count++ })
	})
	if ran := m.RunPending(); ran != 2 || count != 2 {
		t.Errorf("expected 2 tasks, ran %d count %d", ran, count)
	}
}

func TestManual_GoQueuesResult(t *testing.T) {
	m := &Manual{}
	worked, applied := false, false
	m.Go(func() func() {
		worked = true
		return func() { applied = true }
	})
	if !worked || applied {
		t.Fatalf("work should run at once and its result wait for RunPending: worked=%v applied=%v", worked, applied)
	}
	m.RunPending()
	if !applied {
		t.Error("result should run with the pending tasks")
	}
}
