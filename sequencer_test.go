// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"errors"
	"sync"
	"testing"
)

func TestSingleProducerSequencerNext(t *testing.T) {
	s := newSingleProducerSequencer(8)
	for i := int64(0); i < 8; i++ {
		got, err := s.Next(1)
		if err != nil {
			t.Fatalf("Next(%d): %v", i, err)
		}
		if got != i {
			t.Fatalf("Next(%d): got %d, want %d", i, got, i)
		}
	}
}

func TestSingleProducerSequencerTryNextInsufficientCapacity(t *testing.T) {
	s := newSingleProducerSequencer(4)
	consumed := NewSequenceInitial()
	s.gating.Add(s.cursor, consumed)

	for i := 0; i < 4; i++ {
		if _, err := s.TryNext(1); err != nil {
			t.Fatalf("TryNext(%d): %v", i, err)
		}
	}

	if _, err := s.TryNext(1); !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("TryNext on full ring: got %v, want ErrInsufficientCapacity", err)
	}

	consumed.Set(0)
	if _, err := s.TryNext(1); err != nil {
		t.Fatalf("TryNext after consumer progress: %v", err)
	}
}

func TestSingleProducerSequencerClaimRejectedAfterGating(t *testing.T) {
	s := newSingleProducerSequencer(8)
	s.gating.Add(s.cursor, NewSequenceInitial())

	if err := s.Claim(5); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("Claim after gating attached: got %v, want ErrIllegalState", err)
	}
}

func TestMultiProducerSequencerNextDistinctUnderContention(t *testing.T) {
	s := newMultiProducerSequencer(1024)
	const goroutines = 8
	const perGoroutine = 2000

	seen := make([]bool, goroutines*perGoroutine)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				got, err := s.Next(1)
				if err != nil {
					t.Errorf("Next: %v", err)
					return
				}
				mu.Lock()
				if seen[got] {
					t.Errorf("duplicate sequence %d returned by concurrent Next", got)
				}
				seen[got] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	for i, ok := range seen {
		if !ok {
			t.Fatalf("sequence %d was never returned", i)
		}
	}
}

func TestMultiProducerSequencerTryNextRespectsGating(t *testing.T) {
	s := newMultiProducerSequencer(2)
	consumed := NewSequenceInitial()
	s.gating.Add(s.cursor, consumed)

	if _, err := s.TryNext(1); err != nil {
		t.Fatalf("TryNext(0): %v", err)
	}
	if _, err := s.TryNext(1); err != nil {
		t.Fatalf("TryNext(1): %v", err)
	}
	if _, err := s.TryNext(1); !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("TryNext on full ring: got %v, want ErrInsufficientCapacity", err)
	}
}
