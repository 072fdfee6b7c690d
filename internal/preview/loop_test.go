package preview

import (
	"testing"
	"time"
)

func TestLoop_RunsUntilStopped(t *testing.T) {
	l := New(0)
	now := time.Unix(0, 0)

	if l.Tick(now) {
		t.Fatalf("tick on a stopped loop ran a step")
	}

	calls := 0
	l.Start(func() { calls++ })
	for i := 0; i < 3; i++ {
		if !l.Tick(now) {
			t.Fatalf("tick %d did not run", i)
		}
	}
	if calls != 3 {
		t.Fatalf("calls=%d want 3", calls)
	}

	l.Stop()
	if l.Running() {
		t.Fatalf("loop still running after Stop")
	}
	l.Tick(now)
	if calls != 3 {
		t.Fatalf("step ran after Stop: calls=%d", calls)
	}
}

func TestLoop_StartReplacesPrevious(t *testing.T) {
	l := New(0)
	now := time.Unix(0, 0)

	a, b := 0, 0
	g1 := l.Start(func() { a++ })
	l.Tick(now)
	g2 := l.Start(func() { b++ })
	l.Tick(now)

	if a != 1 || b != 1 {
		t.Fatalf("a=%d b=%d want 1,1", a, b)
	}
	if g1 == g2 {
		t.Fatalf("restart kept generation %d", g1)
	}
}

func TestLoop_StepCanStopItself(t *testing.T) {
	l := New(0)
	now := time.Unix(0, 0)

	calls := 0
	l.Start(func() {
		calls++
		l.Stop()
	})
	l.Tick(now)
	l.Tick(now)
	if calls != 1 {
		t.Fatalf("calls=%d want 1", calls)
	}
}

func TestLoop_Throttled(t *testing.T) {
	l := New(10) // one step every 100ms
	start := time.Unix(100, 0)

	calls := 0
	l.Start(func() { calls++ })

	l.Tick(start)
	l.Tick(start.Add(10 * time.Millisecond))
	l.Tick(start.Add(20 * time.Millisecond))
	if calls != 1 {
		t.Fatalf("calls=%d want 1 within the first 100ms", calls)
	}

	l.Tick(start.Add(150 * time.Millisecond))
	if calls != 2 {
		t.Fatalf("calls=%d want 2 after 150ms", calls)
	}
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	l := New(0)
	l.Stop()
	g := l.Generation()
	l.Stop()
	if l.Generation() != g {
		t.Fatalf("Stop on idle loop changed generation")
	}
}
