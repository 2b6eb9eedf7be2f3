// Package sched implements the one-shot delayed-callback capability the
// game runtime provides. The queue is cooperative: callbacks fire
// synchronously from Advance, never from their own goroutine, so they
// interleave with tick processing instead of preempting it.
package sched

import (
	"sort"
	"time"
)

type entry struct {
	due time.Duration // elapsed time at which the entry fires
	seq int           // registration order, breaks ties between equal dues
	fn  func()
}

// Queue schedules callbacks against an elapsed-time counter fed by the
// caller. Each entry fires exactly once; there is no cancellation.
type Queue struct {
	elapsed time.Duration
	seq     int
	pending []entry
}

// After registers fn to fire once d has elapsed from now.
func (q *Queue) After(d time.Duration, fn func()) {
	q.seq++
	q.pending = append(q.pending, entry{due: q.elapsed + d, seq: q.seq, fn: fn})
}

// Advance moves the clock forward by d and fires every due entry, ordered
// by due time ascending and by registration order for equal due times.
// Callbacks may register further entries; those are only fired by this
// call if they are already due.
func (q *Queue) Advance(d time.Duration) {
	q.elapsed += d
	for {
		var due []entry
		var rest []entry
		for _, e := range q.pending {
			if e.due <= q.elapsed {
				due = append(due, e)
			} else {
				rest = append(rest, e)
			}
		}
		if len(due) == 0 {
			return
		}
		q.pending = rest
		sort.Slice(due, func(i, j int) bool {
			if due[i].due != due[j].due {
				return due[i].due < due[j].due
			}
			return due[i].seq < due[j].seq
		})
		for _, e := range due {
			e.fn()
		}
	}
}

// Pending reports how many entries have not fired yet.
func (q *Queue) Pending() int { return len(q.pending) }

// Elapsed reports the total time advanced so far.
func (q *Queue) Elapsed() time.Duration { return q.elapsed }
