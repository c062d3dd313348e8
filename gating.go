// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "sync/atomic"

// gatingSequences is the atomically-swapped immutable array of consumer
// Sequences that throttle producers. The whole array is replaced by CAS
// rather than mutated in place, so readers always see a consistent
// snapshot without locking.
//
// atomix has no atomic pointer-to-slice primitive (it covers scalars
// only), so this one structural piece uses sync/atomic.Pointer directly,
// mirroring the role Java's AtomicReferenceFieldUpdater plays over the
// cursor array in the original RingBuffer.
type gatingSequences struct {
	snapshot atomic.Pointer[[]*Sequence]
}

func newGatingSequences() *gatingSequences {
	g := &gatingSequences{}
	empty := make([]*Sequence, 0)
	g.snapshot.Store(&empty)
	return g
}

// Load returns the current snapshot. Callers must not mutate it.
func (g *gatingSequences) Load() []*Sequence {
	return *g.snapshot.Load()
}

// Add appends seqs to the gating set, first seeding each to cursor so a
// newly attached consumer does not retroactively throttle the producer
// for sequences already claimed, then re-seeding after the CAS succeeds
// to close the window where cursor advanced between snapshot and swap.
func (g *gatingSequences) Add(cursor *Sequence, seqs ...*Sequence) {
	for {
		oldPtr := g.snapshot.Load()
		current := *oldPtr
		cursorValue := cursor.Get()
		for _, s := range seqs {
			s.Set(cursorValue)
		}

		updated := make([]*Sequence, 0, len(current)+len(seqs))
		updated = append(updated, current...)
		updated = append(updated, seqs...)

		if g.snapshot.CompareAndSwap(oldPtr, &updated) {
			break
		}
	}

	cursorValue := cursor.Get()
	for _, s := range seqs {
		s.Set(cursorValue)
	}
}

// Remove CAS-replaces the snapshot with one that omits every occurrence
// of target, retrying until it wins the race or finds target absent. It
// reports whether target was present.
func (g *gatingSequences) Remove(target *Sequence) bool {
	for {
		oldPtr := g.snapshot.Load()
		current := *oldPtr
		removed := 0
		updated := make([]*Sequence, 0, len(current))
		for _, s := range current {
			if s == target {
				removed++
				continue
			}
			updated = append(updated, s)
		}
		if removed == 0 {
			return false
		}
		if g.snapshot.CompareAndSwap(oldPtr, &updated) {
			return true
		}
	}
}

// Minimum returns the minimum of minimum and every Sequence currently in
// the snapshot.
func (g *gatingSequences) Minimum(minimum int64) int64 {
	min := minimum
	for _, s := range g.Load() {
		if v := s.Get(); v < min {
			min = v
		}
	}
	return min
}
