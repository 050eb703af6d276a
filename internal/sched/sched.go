// Package sched is a single-threaded cooperative scheduler driven by a virtual
// clock. It stands in for a host event loop: periodic timers, one-shot timers and
// per-frame callbacks, each with a cancellation handle.
//
// A Scheduler is not safe for concurrent use. Exactly one goroutine owns it and
// calls Advance once per rendered frame; every callback runs on that goroutine.
package sched

import (
	"container/heap"
	"time"
)

// TimerID identifies a periodic or one-shot timer. The zero value is never issued,
// so it can be used as "no timer".
type TimerID uint64

// FrameID identifies a pending frame callback. The zero value is never issued.
type FrameID uint64

type timer struct {
	id     TimerID
	due    time.Duration
	period time.Duration // zero for one-shot timers
	seq    uint64        // tie-break for timers due at the same instant
	fn     func()
	index  int
}

type frameRequest struct {
	id FrameID
	fn func()
}

// Scheduler runs callbacks against a virtual clock.
type Scheduler struct {
	now     time.Duration
	queue   timerQueue
	timers  map[TimerID]*timer
	frames  []frameRequest
	running []frameRequest // batch of the frame currently executing
	nextID  uint64
	seq     uint64
	frameNo uint64
}

// New creates a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Frame returns how many frames have been run.
func (s *Scheduler) Frame() uint64 {
	return s.frameNo
}

// AfterFunc schedules fn to run once, d after now.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) TimerID {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every period, first at now+period.
// A non-positive period is raised to one nanosecond.
func (s *Scheduler) Every(period time.Duration, fn func()) TimerID {
	if period <= 0 {
		period = time.Nanosecond
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:     TimerID(s.nextID),
		due:    s.now + d,
		period: period,
		seq:    s.seq,
		fn:     fn,
	}
	s.timers[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel stops a timer. Cancelling a zero, unknown or already-fired timer is a no-op.
func (s *Scheduler) Cancel(id TimerID) {
	t, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
}

// Active reports whether the timer is still scheduled.
func (s *Scheduler) Active(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// PendingTimers returns the number of scheduled timers.
func (s *Scheduler) PendingTimers() int {
	return len(s.timers)
}

// RequestFrame schedules fn to run on the next frame.
// Requests made while a frame is running are deferred to the following frame.
func (s *Scheduler) RequestFrame(fn func()) FrameID {
	s.nextID++
	id := FrameID(s.nextID)
	s.frames = append(s.frames, frameRequest{id: id, fn: fn})
	return id
}

// CancelFrame drops a pending frame request. Zero and unknown IDs are ignored.
func (s *Scheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i, f := range s.frames {
		if f.id == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
	for i := range s.running {
		if s.running[i].id == id {
			s.running[i].fn = nil
			return
		}
	}
}

// PendingFrames returns the number of frame requests waiting for the next frame.
func (s *Scheduler) PendingFrames() int {
	return len(s.frames)
}

// Advance moves the clock forward by dt. Timers that fall due fire in due-time
// order with Now() set to their due time; then every frame callback requested
// before this call runs once.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.runTimers(s.now + dt)
	s.runFrame()
}

// AdvanceTimers moves the clock forward by dt without running a frame.
func (s *Scheduler) AdvanceTimers(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.runTimers(s.now + dt)
}

func (s *Scheduler) runTimers(target time.Duration) {
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*timer)
		s.now = t.due
		if t.period > 0 {
			s.seq++
			t.due += t.period
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.timers, t.id)
		}
		t.fn()
	}
	s.now = target
}

func (s *Scheduler) runFrame() {
	s.frameNo++
	s.running = s.frames
	s.frames = nil
	for i := range s.running {
		if fn := s.running[i].fn; fn != nil {
			fn()
		}
	}
	s.running = nil
}
