// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "code.hybscloud.com/atomix"

// InitialSequenceValue is the value a Sequence holds before anything has
// been claimed or published on it.
const InitialSequenceValue int64 = -1

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// Sequence is a single cache-line-isolated 64-bit monotonically growing
// counter. It is the only shared mutable primitive in the core: producer
// cursors, consumer progress markers, and gating entries are all
// Sequences.
//
// Every load is acquire and every store is release, so a consumer that
// observes a published Sequence value also observes every write the
// publishing goroutine made before the store.
type Sequence struct {
	_     pad
	value atomix.Int64
	_     pad
}

// NewSequence returns a Sequence initialized to the given value.
func NewSequence(initial int64) *Sequence {
	s := &Sequence{}
	s.value.StoreRelaxed(initial)
	return s
}

// NewSequenceInitial returns a Sequence initialized to InitialSequenceValue,
// meaning "nothing published yet".
func NewSequenceInitial() *Sequence {
	return NewSequence(InitialSequenceValue)
}

// Get loads the current value (acquire).
func (s *Sequence) Get() int64 {
	return s.value.LoadAcquire()
}

// Set stores a new value (release).
func (s *Sequence) Set(v int64) {
	s.value.StoreRelease(v)
}

// SetVolatile stores a new value with the same release semantics as Set.
// It exists to mirror the reference API's distinction between a plain
// store and one that must be visible to producers computing a minimum
// gating sequence; on this implementation both are full release stores.
func (s *Sequence) SetVolatile(v int64) {
	s.value.StoreRelease(v)
}

// CompareAndSet atomically sets the value to new if it currently equals
// expected, and reports whether it succeeded.
func (s *Sequence) CompareAndSet(expected, new int64) bool {
	return s.value.CompareAndSwapAcqRel(expected, new)
}

// IncrementAndGet atomically adds 1 and returns the new value.
func (s *Sequence) IncrementAndGet() int64 {
	return s.value.AddAcqRel(1)
}

// AddAndGet atomically adds delta and returns the new value.
func (s *Sequence) AddAndGet(delta int64) int64 {
	return s.value.AddAcqRel(delta)
}

// sequenceLike is implemented by both *Sequence and sequenceGroup so wait
// strategies can treat a single dependency and a set of dependencies
// uniformly.
type sequenceLike interface {
	Get() int64
}

// sequenceGroup is an immutable list of Sequences treated as their
// minimum. Used as a SequenceBarrier's dependent-sequence target when the
// barrier declares more than one upstream dependency.
type sequenceGroup []*Sequence

func (g sequenceGroup) Get() int64 {
	min := g[0].Get()
	for _, s := range g[1:] {
		if v := s.Get(); v < min {
			min = v
		}
	}
	return min
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
