// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// publisher is the commit protocol: announce that a claimed sequence is
// readable, and answer "is sequence s available?" for a waiting reader.
type publisher interface {
	availabilityScanner
	Publish(sequence int64)
	PublishRange(lo, hi int64)
	EnsureAvailable(sequence int64)
}

// SingleProducerPublisher publishes by advancing the cursor directly:
// under the single-writer contract, cursor >= s already implies slot s
// was written, so EnsureAvailable is a no-op.
type SingleProducerPublisher struct {
	cursor       *Sequence
	waitStrategy WaitStrategy
}

func newSingleProducerPublisher(cursor *Sequence, waitStrategy WaitStrategy) *SingleProducerPublisher {
	return &SingleProducerPublisher{cursor: cursor, waitStrategy: waitStrategy}
}

func (p *SingleProducerPublisher) Publish(sequence int64) {
	p.cursor.Set(sequence)
	p.waitStrategy.SignalAllWhenBlocking()
}

func (p *SingleProducerPublisher) PublishRange(lo, hi int64) {
	p.cursor.Set(hi)
	p.waitStrategy.SignalAllWhenBlocking()
}

func (p *SingleProducerPublisher) EnsureAvailable(sequence int64) {}

func (p *SingleProducerPublisher) HighestPublishedSequence(lower, upper int64) int64 {
	return upper
}

// MultiProducerPublisher publishes through a per-slot availability
// buffer, since the shared cursor on a multi-producer ring is the
// highest *claimed* sequence, not the highest committed one: a producer
// holding an earlier sequence may still be writing its slot.
type MultiProducerPublisher struct {
	cursor       *Sequence
	waitStrategy WaitStrategy
	available    []atomix.Uint32
	mask         int64
	shift        uint
}

func newMultiProducerPublisher(cursor *Sequence, waitStrategy WaitStrategy, bufferSize int64) *MultiProducerPublisher {
	p := &MultiProducerPublisher{
		cursor:       cursor,
		waitStrategy: waitStrategy,
		available:    make([]atomix.Uint32, bufferSize),
		mask:         bufferSize - 1,
		shift:        uint(bits.TrailingZeros64(uint64(bufferSize))),
	}
	for i := range p.available {
		p.available[i].StoreRelaxed(^uint32(0))
	}
	return p
}

func (p *MultiProducerPublisher) setAvailable(sequence int64) {
	p.available[sequence&p.mask].StoreRelease(uint32(sequence >> p.shift))
}

func (p *MultiProducerPublisher) isAvailable(sequence int64) bool {
	return p.available[sequence&p.mask].LoadAcquire() == uint32(sequence>>p.shift)
}

func (p *MultiProducerPublisher) Publish(sequence int64) {
	p.setAvailable(sequence)
	p.waitStrategy.SignalAllWhenBlocking()
}

func (p *MultiProducerPublisher) PublishRange(lo, hi int64) {
	for s := lo; s <= hi; s++ {
		p.setAvailable(s)
	}
	p.waitStrategy.SignalAllWhenBlocking()
}

func (p *MultiProducerPublisher) EnsureAvailable(sequence int64) {
	sw := spin.Wait{}
	for !p.isAvailable(sequence) {
		sw.Once()
	}
}

// HighestPublishedSequence returns the highest sequence in [lower, upper]
// that is contiguously available starting at lower.
func (p *MultiProducerPublisher) HighestPublishedSequence(lower, upper int64) int64 {
	for s := lower; s <= upper; s++ {
		if !p.isAvailable(s) {
			return s - 1
		}
	}
	return upper
}
