// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "code.hybscloud.com/atomix"

// availabilityScanner answers "what is the highest sequence, starting at
// lower, that is contiguously available up to upper?" Implemented by the
// multi-producer publisher; the single-producer publisher's scan is
// trivially upper, since the cursor only advances once the slot is
// written.
type availabilityScanner interface {
	HighestPublishedSequence(lower, upper int64) int64
}

// SequenceBarrier is the consumer-facing view of a RingBuffer: it waits
// for a target sequence to become available and not run ahead of any
// declared upstream dependency, and surfaces cooperative cancellation
// through Alert.
type SequenceBarrier struct {
	cursor            *Sequence
	dependentSequence sequenceLike
	hasDependencies   bool
	waitStrategy      WaitStrategy
	scanner           availabilityScanner
	alerted           atomix.Bool
}

func newSequenceBarrier(cursor *Sequence, waitStrategy WaitStrategy, scanner availabilityScanner, dependencies []*Sequence) *SequenceBarrier {
	b := &SequenceBarrier{
		cursor:       cursor,
		waitStrategy: waitStrategy,
		scanner:      scanner,
	}
	if len(dependencies) == 0 {
		b.dependentSequence = cursor
	} else {
		b.dependentSequence = sequenceGroup(dependencies)
		b.hasDependencies = true
	}
	return b
}

// WaitFor blocks until sequence is available, or returns ErrAlert if
// alerted first. The returned value may exceed sequence: callers should
// drain every sequence up to and including it.
func (b *SequenceBarrier) WaitFor(sequence int64) (int64, error) {
	if err := b.CheckAlert(); err != nil {
		return InitialSequenceValue, err
	}

	available, err := b.waitStrategy.WaitFor(sequence, b.cursor, b.dependentSequence, b)
	if err != nil {
		return available, err
	}
	if available < sequence {
		return available, nil
	}
	if !b.hasDependencies {
		if b.scanner == nil {
			return available, nil
		}
		return b.scanner.HighestPublishedSequence(sequence, available), nil
	}
	return minInt64(available, b.dependentSequence.Get()), nil
}

// Alert raises the cancellation flag and wakes any blocked WaitFor call.
func (b *SequenceBarrier) Alert() {
	b.alerted.StoreRelease(true)
	b.waitStrategy.SignalAllWhenBlocking()
}

// ClearAlert lowers the cancellation flag.
func (b *SequenceBarrier) ClearAlert() {
	b.alerted.StoreRelease(false)
}

// CheckAlert returns ErrAlert if Alert has been called and not yet
// cleared.
func (b *SequenceBarrier) CheckAlert() error {
	if b.alerted.LoadAcquire() {
		return ErrAlert
	}
	return nil
}

// IsAlerted reports the current alert state without raising ErrAlert.
func (b *SequenceBarrier) IsAlerted() bool {
	return b.alerted.LoadAcquire()
}
