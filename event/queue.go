package event

import (
	"sync/atomic"

	"github.com/lixenwraith/term-snake/constant"
)

// slot holds one event; ready is set once the write is complete
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a fixed ring of notifications
// Any goroutine may Push; only the game loop calls Consume
// When full the oldest unread events are overwritten
type EventQueue struct {
	ring [constant.EventQueueSize]slot
	read atomic.Uint64
	next atomic.Uint64
}

// NewEventQueue returns an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (eq *EventQueue) at(i uint64) *slot {
	return &eq.ring[i&constant.EventBufferMask]
}

// Push appends ev
func (eq *EventQueue) Push(ev GameEvent) {
	i := eq.next.Add(1) - 1
	s := eq.at(i)
	s.ev = ev
	s.ready.Store(true)

	// Drag the reader forward past anything just overwritten
	for {
		r := eq.read.Load()
		if i+1-r <= constant.EventQueueSize || eq.read.CompareAndSwap(r, i+1-constant.EventQueueSize) {
			return
		}
	}
}

// Emit pushes an event built from its parts
func (eq *EventQueue) Emit(t EventType, payload any, frame int64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Consume returns every ready event in push order, or nil
// Stops early at a slot whose writer has not finished
func (eq *EventQueue) Consume() []GameEvent {
	r, w := eq.read.Load(), eq.next.Load()
	if r == w {
		return nil
	}
	if w-r > constant.EventQueueSize {
		r = w - constant.EventQueueSize
	}

	var out []GameEvent
	for i := r; i < w; i++ {
		s := eq.at(i)
		if !s.ready.Load() {
			break
		}
		out = append(out, s.ev)
		s.ready.Store(false)
	}

	// A concurrent Push may already have dragged the reader further
	done := r + uint64(len(out))
	for {
		cur := eq.read.Load()
		if cur >= done || eq.read.CompareAndSwap(cur, done) {
			return out
		}
	}
}

// Len returns the unread count, capped at capacity
func (eq *EventQueue) Len() int {
	n := eq.next.Load() - eq.read.Load()
	return int(min(n, constant.EventQueueSize))
}
