// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "code.hybscloud.com/spin"

// sequencer is the claim protocol: reserve one or n contiguous sequences
// without overtaking the slowest gating consumer.
type sequencer interface {
	Next(n int64) (int64, error)
	TryNext(n int64) (int64, error)
	HasAvailableCapacity(n int64) bool
	Claim(sequence int64) error
	Cursor() *Sequence
	GatingSequences() *gatingSequences
}

// SingleProducerSequencer claims sequences under the single-writer
// contract: exactly one goroutine may call Next/TryNext/Claim. There is
// no CAS here at all; nextValue and cachedGatingSequence are plain int64
// under that discipline, matching the reference implementation.
type SingleProducerSequencer struct {
	bufferSize int64
	gating     *gatingSequences

	nextValue            int64
	cachedGatingSequence int64

	cursor *Sequence
}

func newSingleProducerSequencer(bufferSize int64) *SingleProducerSequencer {
	return &SingleProducerSequencer{
		bufferSize:           bufferSize,
		gating:               newGatingSequences(),
		nextValue:            InitialSequenceValue,
		cachedGatingSequence: InitialSequenceValue,
		cursor:               NewSequenceInitial(),
	}
}

func (s *SingleProducerSequencer) Cursor() *Sequence              { return s.cursor }
func (s *SingleProducerSequencer) GatingSequences() *gatingSequences { return s.gating }

func (s *SingleProducerSequencer) Next(n int64) (int64, error) {
	next := s.nextValue + n
	wrapPoint := next - s.bufferSize

	if wrapPoint > s.cachedGatingSequence || s.cachedGatingSequence > s.nextValue {
		sw := spin.Wait{}
		for {
			gating := s.gating.Minimum(s.nextValue)
			if wrapPoint <= gating {
				s.cachedGatingSequence = gating
				break
			}
			sw.Once()
		}
	}

	s.nextValue = next
	return next, nil
}

func (s *SingleProducerSequencer) TryNext(n int64) (int64, error) {
	if !s.HasAvailableCapacity(n) {
		return InitialSequenceValue, ErrInsufficientCapacity
	}
	next := s.nextValue + n
	s.nextValue = next
	return next, nil
}

func (s *SingleProducerSequencer) HasAvailableCapacity(n int64) bool {
	next := s.nextValue + n
	wrapPoint := next - s.bufferSize

	if wrapPoint > s.cachedGatingSequence || s.cachedGatingSequence > s.nextValue {
		gating := s.gating.Minimum(s.nextValue)
		s.cachedGatingSequence = gating
		if wrapPoint > gating {
			return false
		}
	}
	return true
}

// Claim administratively sets nextValue without consulting gating. Only
// legal before any consumer has attached; used by RingBuffer.InitialiseTo.
func (s *SingleProducerSequencer) Claim(sequence int64) error {
	if len(s.gating.Load()) != 0 {
		return ErrIllegalState
	}
	s.nextValue = sequence
	s.cachedGatingSequence = sequence
	return nil
}

// MultiProducerSequencer claims sequences from any number of concurrent
// producer goroutines via CAS on a shared cursor.
type MultiProducerSequencer struct {
	bufferSize int64
	gating     *gatingSequences

	cursor              *Sequence
	gatingSequenceCache *Sequence
}

func newMultiProducerSequencer(bufferSize int64) *MultiProducerSequencer {
	return &MultiProducerSequencer{
		bufferSize:          bufferSize,
		gating:              newGatingSequences(),
		cursor:              NewSequenceInitial(),
		gatingSequenceCache: NewSequenceInitial(),
	}
}

func (s *MultiProducerSequencer) Cursor() *Sequence                 { return s.cursor }
func (s *MultiProducerSequencer) GatingSequences() *gatingSequences { return s.gating }

func (s *MultiProducerSequencer) Next(n int64) (int64, error) {
	sw := spin.Wait{}
	for {
		current := s.cursor.Get()
		next := current + n
		wrapPoint := next - s.bufferSize
		cachedGate := s.gatingSequenceCache.Get()

		if wrapPoint > cachedGate || cachedGate > current {
			gatingSequence := s.gating.Minimum(current)
			if wrapPoint > gatingSequence {
				sw.Once()
				continue
			}
			s.gatingSequenceCache.Set(gatingSequence)
			continue
		}

		if s.cursor.CompareAndSet(current, next) {
			return next, nil
		}
	}
}

func (s *MultiProducerSequencer) TryNext(n int64) (int64, error) {
	for {
		current := s.cursor.Get()
		next := current + n
		wrapPoint := next - s.bufferSize

		gatingSequence := s.gating.Minimum(current)
		if wrapPoint > gatingSequence {
			return InitialSequenceValue, ErrInsufficientCapacity
		}
		s.gatingSequenceCache.Set(gatingSequence)

		if s.cursor.CompareAndSet(current, next) {
			return next, nil
		}
	}
}

func (s *MultiProducerSequencer) HasAvailableCapacity(n int64) bool {
	current := s.cursor.Get()
	next := current + n
	wrapPoint := next - s.bufferSize
	cachedGate := s.gatingSequenceCache.Get()

	if wrapPoint > cachedGate || cachedGate > current {
		gatingSequence := s.gating.Minimum(current)
		s.gatingSequenceCache.Set(gatingSequence)
		if wrapPoint > gatingSequence {
			return false
		}
	}
	return true
}

// Claim administratively seeds the cursor. Only legal before any
// consumer has attached.
func (s *MultiProducerSequencer) Claim(sequence int64) error {
	if len(s.gating.Load()) != 0 {
		return ErrIllegalState
	}
	s.cursor.Set(sequence)
	s.gatingSequenceCache.Set(sequence)
	return nil
}
