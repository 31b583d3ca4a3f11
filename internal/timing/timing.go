// Package timing measures the phases of a ding run.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Timer records checkpoints relative to its start
type Timer struct {
	start time.Time
	last  time.Time
	marks []mark
}

type mark struct {
	label string
	// since is the time since the previous checkpoint
	since time.Duration
	at    time.Duration
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	now := time.Now()
	return &Timer{start: now, last: now}
}

// Mark records a checkpoint and returns the duration of the phase it closes
func (t *Timer) Mark(label string) time.Duration {
	now := time.Now()
	m := mark{label: label, since: now.Sub(t.last), at: now.Sub(t.start)}
	t.marks = append(t.marks, m)
	t.last = now
	return m.since
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Get returns the elapsed time at the first checkpoint named label
func (t *Timer) Get(label string) (time.Duration, bool) {
	for _, m := range t.marks {
		if m.label == label {
			return m.at, true
		}
	}
	return 0, false
}

// Summary formats the total and the duration of each phase, in order
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %s", ms(t.Elapsed()))
	for i, m := range t.marks {
		if i == 0 {
			b.WriteString(" (")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", m.label, ms(m.since))
	}
	if len(t.marks) > 0 {
		b.WriteString(")")
	}
	return b.String()
}

// Reset restarts the timer and drops all checkpoints
func (t *Timer) Reset() {
	t.start = time.Now()
	t.last = t.start
	t.marks = nil
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000.0)
}
