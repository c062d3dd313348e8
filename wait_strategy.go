// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"runtime"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// WaitStrategy is the policy governing how a consumer idles while waiting
// for sequence to become available on cursor, and how a publisher wakes
// waiters once it has advanced cursor.
type WaitStrategy interface {
	// WaitFor blocks until dependentSequence advances to at least
	// sequence, or until alerted. It returns the dependentSequence value
	// it observed, which may exceed sequence. dependentSequence equals
	// cursor when there is no dependency. Of the strategies here, only
	// BlockingWaitStrategy reads cursor, parking until cursor reaches
	// sequence before it polls dependentSequence.
	WaitFor(sequence int64, cursor sequenceLike, dependentSequence sequenceLike, barrier *SequenceBarrier) (int64, error)

	// SignalAllWhenBlocking wakes any waiter parked by this strategy.
	// Called by publishers after advancing cursor.
	SignalAllWhenBlocking()
}

// BlockingWaitStrategy parks on a mutex and condition variable. Lowest
// CPU usage, highest wake-up latency of the four strategies.
type BlockingWaitStrategy struct {
	mu   sync.Mutex
	cond *sync.Cond
}

// NewBlockingWaitStrategy returns a BlockingWaitStrategy.
func NewBlockingWaitStrategy() *BlockingWaitStrategy {
	w := &BlockingWaitStrategy{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *BlockingWaitStrategy) WaitFor(sequence int64, cursor sequenceLike, dependentSequence sequenceLike, barrier *SequenceBarrier) (int64, error) {
	available := cursor.Get()
	if available < sequence {
		w.mu.Lock()
		for {
			available = cursor.Get()
			if available >= sequence {
				break
			}
			if err := barrier.CheckAlert(); err != nil {
				w.mu.Unlock()
				return available, err
			}
			w.cond.Wait()
		}
		w.mu.Unlock()
	}

	for {
		if available = dependentSequence.Get(); available >= sequence {
			return available, nil
		}
		if err := barrier.CheckAlert(); err != nil {
			return available, err
		}
	}
}

func (w *BlockingWaitStrategy) SignalAllWhenBlocking() {
	w.mu.Lock()
	w.cond.Broadcast()
	w.mu.Unlock()
}

// SleepingWaitStrategy spins a bounded number of times, then yields a
// bounded number of times, then parks with a bounded exponential
// back-off via iox.Backoff. Balances CPU usage against latency; does not
// require producers to signal.
type SleepingWaitStrategy struct {
	spinTries  int
	yieldTries int
}

// NewSleepingWaitStrategy returns a SleepingWaitStrategy with the
// reference spin/yield budget (100 spins, then 100 Gosched calls) before
// falling back to backoff-paced parking.
func NewSleepingWaitStrategy() *SleepingWaitStrategy {
	return &SleepingWaitStrategy{spinTries: 100, yieldTries: 100}
}

func (w *SleepingWaitStrategy) WaitFor(sequence int64, cursor sequenceLike, dependentSequence sequenceLike, barrier *SequenceBarrier) (int64, error) {
	counter := w.spinTries + w.yieldTries
	var backoff iox.Backoff
	sw := spin.Wait{}

	for {
		available := dependentSequence.Get()
		if available >= sequence {
			return available, nil
		}
		if err := barrier.CheckAlert(); err != nil {
			return available, err
		}

		switch {
		case counter > w.yieldTries:
			sw.Once()
		case counter > 0:
			runtime.Gosched()
		default:
			backoff.Wait()
		}
		if counter > 0 {
			counter--
		}
	}
}

func (w *SleepingWaitStrategy) SignalAllWhenBlocking() {}

// YieldingWaitStrategy spins briefly with CPU pause instructions, then
// yields to the scheduler for the remainder of the wait. Lower latency
// than Sleeping, higher CPU usage.
type YieldingWaitStrategy struct {
	spinTries int
}

// NewYieldingWaitStrategy returns a YieldingWaitStrategy with the
// reference spin budget (100 spins) before falling back to Gosched.
func NewYieldingWaitStrategy() *YieldingWaitStrategy {
	return &YieldingWaitStrategy{spinTries: 100}
}

func (w *YieldingWaitStrategy) WaitFor(sequence int64, cursor sequenceLike, dependentSequence sequenceLike, barrier *SequenceBarrier) (int64, error) {
	counter := w.spinTries
	sw := spin.Wait{}

	for {
		available := dependentSequence.Get()
		if available >= sequence {
			return available, nil
		}
		if err := barrier.CheckAlert(); err != nil {
			return available, err
		}

		if counter > 0 {
			sw.Once()
			counter--
		} else {
			runtime.Gosched()
		}
	}
}

func (w *YieldingWaitStrategy) SignalAllWhenBlocking() {}

// BusySpinWaitStrategy spins tightly with no yield. Lowest latency,
// pins one CPU per waiting consumer.
type BusySpinWaitStrategy struct{}

// NewBusySpinWaitStrategy returns a BusySpinWaitStrategy.
func NewBusySpinWaitStrategy() *BusySpinWaitStrategy {
	return &BusySpinWaitStrategy{}
}

func (w *BusySpinWaitStrategy) WaitFor(sequence int64, cursor sequenceLike, dependentSequence sequenceLike, barrier *SequenceBarrier) (int64, error) {
	sw := spin.Wait{}
	for {
		available := dependentSequence.Get()
		if available >= sequence {
			return available, nil
		}
		if err := barrier.CheckAlert(); err != nil {
			return available, err
		}
		sw.Once()
	}
}

func (w *BusySpinWaitStrategy) SignalAllWhenBlocking() {}
