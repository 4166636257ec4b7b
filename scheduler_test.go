package motion

import (
	"slices"
	"testing"
	"time"
)

func TestLoopTimersFireInDeadlineOrder(t *testing.T) {
	l := NewLoop()
	var got []string
	l.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	l.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	l.AfterFunc(200*time.Millisecond, func() { got = append(got, "b") })

	l.Advance(250 * time.Millisecond)
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	if l.PendingTimers() != 1 {
		t.Errorf("PendingTimers = %d, want 1", l.PendingTimers())
	}

	l.Advance(300 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("fired %v, want %v", got, want)
	}
}

func TestLoopEqualDeadlinesKeepInsertionOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := range 5 {
		l.AfterFunc(50*time.Millisecond, func() { got = append(got, i) })
	}
	l.Advance(50 * time.Millisecond)
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("fired %v, want %v", got, want)
	}
}

func TestLoopNowInsideTimerIsDeadline(t *testing.T) {
	l := NewLoop()
	var seen []time.Duration
	l.AfterFunc(120*time.Millisecond, func() { seen = append(seen, l.Now()) })
	l.AfterFunc(480*time.Millisecond, func() { seen = append(seen, l.Now()) })

	l.Advance(time.Second)
	want := []time.Duration{120 * time.Millisecond, 480 * time.Millisecond}
	if !slices.Equal(seen, want) {
		t.Errorf("Now inside timers = %v, want %v", seen, want)
	}
	if l.Now() != time.Second {
		t.Errorf("Now after Advance = %v, want 1s", l.Now())
	}
}

func TestLoopTimerScheduledByTimerFiresInSameAdvance(t *testing.T) {
	l := NewLoop()
	var at time.Duration
	l.AfterFunc(100*time.Millisecond, func() {
		l.AfterFunc(100*time.Millisecond, func() { at = l.Now() })
	})
	l.Advance(500 * time.Millisecond)
	if at != 200*time.Millisecond {
		t.Errorf("nested timer fired at %v, want 200ms", at)
	}
}

func TestLoopNegativeDelayFiresNextAdvance(t *testing.T) {
	l := NewLoop()
	l.Advance(time.Second)
	fired := false
	l.AfterFunc(-time.Second, func() { fired = true })
	if fired {
		t.Fatal("timer fired synchronously")
	}
	l.Advance(time.Second)
	if !fired {
		t.Error("zero-delay timer should fire on the next Advance")
	}
}

func TestLoopFrameRequestsAreOneShot(t *testing.T) {
	l := NewLoop()
	calls := 0
	l.RequestFrame(func(time.Duration) { calls++ })
	l.Step(16 * time.Millisecond)
	l.Step(16 * time.Millisecond)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if l.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", l.Frames())
	}
}

func TestLoopFrameRequestedDuringFrameRunsNextFrame(t *testing.T) {
	l := NewLoop()
	var stamps []time.Duration
	var fn FrameCallback
	fn = func(now time.Duration) {
		stamps = append(stamps, now)
		l.RequestFrame(fn)
	}
	l.RequestFrame(fn)

	l.Advance(10 * time.Millisecond)
	l.Advance(20 * time.Millisecond)
	l.Advance(35 * time.Millisecond)

	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 35 * time.Millisecond}
	if !slices.Equal(stamps, want) {
		t.Errorf("frame stamps = %v, want %v", stamps, want)
	}
	if l.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want 1", l.PendingFrames())
	}
}

func TestLoopCancelFrame(t *testing.T) {
	l := NewLoop()
	ran := false
	h := l.RequestFrame(func(time.Duration) { ran = true })
	l.CancelFrame(h)
	l.CancelFrame(h)
	l.CancelFrame(0)
	l.Step(16 * time.Millisecond)
	if ran {
		t.Error("cancelled frame ran")
	}
}

func TestLoopCancelFrameWithinSameFrame(t *testing.T) {
	l := NewLoop()
	ran := false
	var later FrameHandle
	l.RequestFrame(func(time.Duration) { l.CancelFrame(later) })
	later = l.RequestFrame(func(time.Duration) { ran = true })
	l.Step(16 * time.Millisecond)
	if ran {
		t.Error("frame cancelled earlier in the same batch still ran")
	}
	if l.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", l.PendingFrames())
	}
}

func TestLoopTimersRunBeforeFrame(t *testing.T) {
	l := NewLoop()
	var order []string
	l.AfterFunc(10*time.Millisecond, func() { order = append(order, "timer") })
	l.RequestFrame(func(time.Duration) { order = append(order, "frame") })
	l.Advance(16 * time.Millisecond)
	if want := []string{"timer", "frame"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestLoopAdvanceNeverRewinds(t *testing.T) {
	l := NewLoop()
	l.Advance(time.Second)
	l.Advance(500 * time.Millisecond)
	if l.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", l.Now())
	}
}

func TestLoopRunForLandsOnTarget(t *testing.T) {
	l := NewLoop()
	frames := 0
	var fn FrameCallback
	fn = func(time.Duration) {
		frames++
		l.RequestFrame(fn)
	}
	l.RequestFrame(fn)

	l.RunFor(100*time.Millisecond, 16*time.Millisecond)
	if l.Now() != 100*time.Millisecond {
		t.Errorf("Now = %v, want 100ms", l.Now())
	}
	// 6 full steps of 16ms, then a final 4ms step.
	if frames != 7 {
		t.Errorf("frames = %d, want 7", frames)
	}
}

func TestLoopImplementsScheduler(t *testing.T) {
	var _ Scheduler = NewLoop()
}
