// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "testing"

func TestGatingSequencesAddSeedsToCursor(t *testing.T) {
	g := newGatingSequences()
	cursor := NewSequence(100)

	a := NewSequenceInitial()
	b := NewSequenceInitial()
	g.Add(cursor, a, b)

	if got := a.Get(); got != 100 {
		t.Fatalf("a: got %d, want 100", got)
	}
	if got := b.Get(); got != 100 {
		t.Fatalf("b: got %d, want 100", got)
	}
	if got := len(g.Load()); got != 2 {
		t.Fatalf("Load: got %d entries, want 2", got)
	}
}

func TestGatingSequencesRemove(t *testing.T) {
	g := newGatingSequences()
	cursor := NewSequence(0)

	a := NewSequenceInitial()
	b := NewSequenceInitial()
	g.Add(cursor, a, b)

	if !g.Remove(a) {
		t.Fatalf("Remove(a): want true")
	}
	if g.Remove(a) {
		t.Fatalf("Remove(a) again: want false, already removed")
	}
	remaining := g.Load()
	if len(remaining) != 1 || remaining[0] != b {
		t.Fatalf("Load after remove: got %v, want [b]", remaining)
	}
}

func TestGatingSequencesMinimum(t *testing.T) {
	g := newGatingSequences()
	cursor := NewSequence(0)

	a := NewSequence(5)
	b := NewSequence(2)
	g.Add(cursor, a, b)
	// Add re-seeds to cursor, so set distinct values after attaching.
	a.Set(5)
	b.Set(2)

	if got := g.Minimum(100); got != 2 {
		t.Fatalf("Minimum: got %d, want 2", got)
	}
	if got := g.Minimum(1); got != 1 {
		t.Fatalf("Minimum with lower floor: got %d, want 1", got)
	}
}

func TestGatingSequencesIdempotentAddRemove(t *testing.T) {
	g := newGatingSequences()
	cursor := NewSequence(0)

	before := len(g.Load())
	x := NewSequenceInitial()
	g.Add(cursor, x)
	g.Remove(x)
	after := len(g.Load())

	if before != after {
		t.Fatalf("membership count: got %d after add+remove, want %d", after, before)
	}
}
