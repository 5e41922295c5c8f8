package engine

import "github.com/lixenwraith/term-snake/core"

// DirectionQueue buffers steering inputs between grid steps
type DirectionQueue struct {
	items []core.Direction
}

// Enqueue accepts d unless it is zero, reverses the current travel direction,
// or repeats the last queued entry. Returns whether d was queued
func (q *DirectionQueue) Enqueue(d, current core.Direction) bool {
	if d.IsZero() || d.Reverses(current) {
		return false
	}
	if n := len(q.items); n > 0 && q.items[n-1] == d {
		return false
	}
	q.items = append(q.items, d)
	return true
}

// Pop removes and returns the oldest entry
func (q *DirectionQueue) Pop() (core.Direction, bool) {
	if len(q.items) == 0 {
		return core.DirNone, false
	}
	d := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return d, true
}

// Clear drops all pending entries
func (q *DirectionQueue) Clear() {
	q.items = nil
}

// Len returns the pending entry count
func (q *DirectionQueue) Len() int {
	return len(q.items)
}

// Items returns a copy of the pending entries, oldest first
func (q *DirectionQueue) Items() []core.Direction {
	return append([]core.Direction(nil), q.items...)
}
