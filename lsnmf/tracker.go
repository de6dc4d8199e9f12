// Package lsnmf: run tracking. The Tracker keeps an ordered log of per-trial
// factor snapshots; appends are serialized so callers may run trials from
// multiple goroutines while trial state itself stays fully isolated.

package lsnmf

import (
	"sync"

	"github.com/YW81/nimfa/matrix"
)

// Snapshot is a deep copy of one trial's final factor pair.
type Snapshot struct {
	W *matrix.Dense
	H *matrix.Dense
}

// Tracker records Snapshots in trial order. The zero value is ready to use.
type Tracker struct {
	mu   sync.Mutex
	runs []Snapshot
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker { return &Tracker{} }

// Add appends deep copies of w and h as the next snapshot.
func (t *Tracker) Add(w, h *matrix.Dense) {
	snap := Snapshot{
		W: w.Clone().(*matrix.Dense),
		H: h.Clone().(*matrix.Dense),
	}
	t.mu.Lock()
	t.runs = append(t.runs, snap)
	t.mu.Unlock()
}

// Len returns the number of recorded snapshots.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.runs)
}

// Runs returns the recorded snapshots in append order. The slice is a copy;
// the snapshots themselves are the stored deep copies.
func (t *Tracker) Runs() []Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Snapshot, len(t.runs))
	copy(out, t.runs)

	return out
}
