// Package sched provides the delayed-task primitive the game core is driven by.
// Time is virtual: callbacks fire only when the owner advances the clock, so the
// platform tick loop and tests decide when "later" happens.
package sched

import (
	"container/heap"
	"time"
)

// Scheduler runs a function after a delay.
type Scheduler interface {
	// AfterFunc schedules f to run once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. Returns false if it already fired or was stopped.
	Stop() bool
}

// Clock is a virtual clock implementing Scheduler.
// It is not safe for concurrent use; a single owner advances it and every
// callback runs on the owner's goroutine.
type Clock struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewClock creates a clock at virtual time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the virtual time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of callbacks waiting to fire.
func (c *Clock) Pending() int {
	return c.queue.Len()
}

// AfterFunc schedules f to run when the clock reaches Now()+d.
// Negative delays are treated as zero.
func (c *Clock) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &clockTimer{
		clock: c,
		at:    c.now + d,
		seq:   c.seq,
		fn:    f,
		index: -1,
	}
	heap.Push(&c.queue, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in deadline order.
// Callbacks with equal deadlines fire in the order they were scheduled.
// Callbacks scheduled while advancing fire in the same call if they fall due.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := c.now + d

	for c.queue.Len() > 0 && c.queue[0].at <= target {
		t := heap.Pop(&c.queue).(*clockTimer)
		c.now = t.at
		t.fn()
	}

	c.now = target
}

// clockTimer is a scheduled callback on a Clock.
type clockTimer struct {
	clock *Clock
	at    time.Duration
	seq   uint64
	fn    func()
	index int // Position in the heap, -1 once fired or stopped
}

// Stop removes the callback from the clock.
func (t *clockTimer) Stop() bool {
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.clock.queue, t.index)
	return true
}

// timerQueue is a min-heap ordered by deadline, then scheduling order.
type timerQueue []*clockTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*clockTimer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
