// Package scheduler runs deferred callbacks against a clock that only moves
// when the game loop advances it. Nothing here starts goroutines: a pending
// timer is just an entry in a heap until Advance reaches its due time.
package scheduler

import (
	"container/heap"
	"time"
)

// Handle identifies one scheduled callback.
type Handle struct {
	s     *Scheduler
	fn    func()
	owner any
	due   time.Duration
	seq   uint64
	index int // position in the heap, -1 once fired or canceled
}

// Cancel stops the callback from firing. Safe on nil, fired and canceled handles.
func (h *Handle) Cancel() {
	if h == nil || h.s == nil {
		return
	}
	h.s.Cancel(h)
}

// Active reports whether the callback is still waiting to fire.
func (h *Handle) Active() bool {
	return h != nil && h.index >= 0
}

// Due returns the clock time the callback fires at.
func (h *Handle) Due() time.Duration {
	if h == nil {
		return 0
	}
	return h.due
}

// Scheduler is a cooperative timer wheel driven by Advance.
// Timers due at the same instant fire in the order they were scheduled.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the total time advanced so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After schedules fn to run once d has elapsed on the clock.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	return s.AfterFor(nil, d, fn)
}

// AfterFor is After with an owner key, so every timer of that owner can be
// dropped at once with CancelOwner.
func (s *Scheduler) AfterFor(owner any, d time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	h := &Handle{
		s:     s,
		fn:    fn,
		owner: owner,
		due:   s.now + d,
		seq:   s.seq,
	}
	heap.Push(&s.queue, h)
	return h
}

// Cancel removes h from the queue. It is a no-op for handles that already
// fired or were canceled, and for handles from another scheduler.
func (s *Scheduler) Cancel(h *Handle) {
	if h == nil || h.s != s || h.index < 0 {
		return
	}
	heap.Remove(&s.queue, h.index)
	h.fn = nil
}

// CancelOwner cancels every pending timer scheduled with the given owner and
// returns how many were removed.
func (s *Scheduler) CancelOwner(owner any) int {
	if owner == nil {
		return 0
	}
	var doomed []*Handle
	for _, h := range s.queue {
		if h.owner == owner {
			doomed = append(doomed, h)
		}
	}
	for _, h := range doomed {
		s.Cancel(h)
	}
	return len(doomed)
}

// Advance moves the clock forward by dt and fires every timer due at or
// before the new time. Callbacks may schedule or cancel timers; new timers
// that fall due within this advance fire before it returns.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > s.now {
			break
		}
		heap.Pop(&s.queue)
		fn := next.fn
		next.fn = nil
		if fn != nil {
			fn()
			fired++
		}
	}
	return fired
}

type timerQueue []*Handle

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	h := x.(*Handle)
	h.index = len(*q)
	*q = append(*q, h)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	h := old[n-1]
	old[n-1] = nil
	h.index = -1
	*q = old[:n-1]
	return h
}
