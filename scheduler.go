package motion

import (
	"container/heap"
	"time"
)

// FrameCallback is invoked once for a requested frame with the frame's
// timestamp.
type FrameCallback func(now time.Duration)

// FrameHandle identifies a pending frame request. The zero handle is never
// issued.
type FrameHandle uint64

// Scheduler is the pair of uncoordinated clocks animation code runs on: a
// per-frame callback queue and one-shot delayed callbacks. All callbacks run
// on the scheduler's single thread of control.
type Scheduler interface {
	// Now returns the time elapsed since the scheduler's origin. Inside a
	// timer callback it is the timer's deadline; inside a frame callback it is
	// the frame timestamp.
	Now() time.Duration
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn FrameCallback) FrameHandle
	// CancelFrame drops a pending frame request. Unknown or already-run
	// handles are ignored.
	CancelFrame(h FrameHandle)
	// AfterFunc schedules fn to run once after delay. Timers cannot be
	// cancelled.
	AfterFunc(delay time.Duration, fn func())
}

type frameRequest struct {
	handle FrameHandle
	fn     FrameCallback
}

type timer struct {
	deadline time.Duration
	seq      uint64
	fn       func()
}

// timerQueue is a min-heap ordered by deadline, then insertion order.
type timerQueue []timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].seq < q[j].seq
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any) { *q = append(*q, x.(timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = timer{}
	*q = old[:n-1]
	return t
}

// Loop is a deterministic, manually advanced Scheduler. The host owns the
// clock and calls Advance from a single goroutine: the Ebitengine host once
// per tick, the terminal host on its ticker, tests with synthetic times.
type Loop struct {
	now        time.Duration
	frames     []frameRequest
	running    []frameRequest // batch of the frame in progress
	nextHandle FrameHandle
	timers     timerQueue
	nextSeq    uint64
	frameCount uint64
}

// NewLoop creates a Loop whose clock starts at zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now implements Scheduler.
func (l *Loop) Now() time.Duration {
	return l.now
}

// RequestFrame implements Scheduler. Requests made while a frame is running
// are served by the following frame.
func (l *Loop) RequestFrame(fn FrameCallback) FrameHandle {
	l.nextHandle++
	l.frames = append(l.frames, frameRequest{handle: l.nextHandle, fn: fn})
	return l.nextHandle
}

// CancelFrame implements Scheduler. A request cancelled by an earlier
// callback of the same frame does not run.
func (l *Loop) CancelFrame(h FrameHandle) {
	for i := range l.running {
		if l.running[i].handle == h {
			l.running[i].fn = nil
			return
		}
	}
	for i, r := range l.frames {
		if r.handle == h {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// AfterFunc implements Scheduler. Negative delays are treated as zero; a
// zero-delay timer fires on the next Advance.
func (l *Loop) AfterFunc(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	l.nextSeq++
	heap.Push(&l.timers, timer{deadline: l.now + delay, seq: l.nextSeq, fn: fn})
}

// Advance moves the clock to now. Every timer due at or before now fires in
// deadline order with the clock set to its deadline, including timers
// scheduled by those callbacks. Then one frame runs at now. Advancing to a
// time earlier than the current clock only fires due timers and runs the
// frame at the current time.
func (l *Loop) Advance(now time.Duration) {
	if now < l.now {
		now = l.now
	}
	for len(l.timers) > 0 && l.timers[0].deadline <= now {
		t := heap.Pop(&l.timers).(timer)
		if t.deadline > l.now {
			l.now = t.deadline
		}
		t.fn()
	}
	l.now = now
	l.runFrame()
}

// Step advances the clock by d. See Advance.
func (l *Loop) Step(d time.Duration) {
	l.Advance(l.now + d)
}

// RunFor advances the clock by total in frame-sized steps. The last step is
// shortened so the clock lands exactly on the target.
func (l *Loop) RunFor(total, frame time.Duration) {
	if frame <= 0 {
		l.Step(total)
		return
	}
	target := l.now + total
	for l.now+frame < target {
		l.Step(frame)
	}
	l.Advance(target)
}

func (l *Loop) runFrame() {
	if len(l.frames) == 0 {
		return
	}
	l.running = l.frames
	l.frames = nil
	l.frameCount++
	for i := range l.running {
		if fn := l.running[i].fn; fn != nil {
			fn(l.now)
		}
	}
	l.running = nil
}

// PendingTimers returns the number of timers that have not fired yet.
func (l *Loop) PendingTimers() int {
	return len(l.timers)
}

// PendingFrames returns the number of frame callbacks waiting for the next frame.
func (l *Loop) PendingFrames() int {
	return len(l.frames)
}

// Frames returns how many frames with at least one callback have run.
func (l *Loop) Frames() uint64 {
	return l.frameCount
}
