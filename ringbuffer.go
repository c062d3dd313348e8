// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

// RingBuffer owns the preallocated slot array and the gating-sequence
// registry, and exposes the producer claim/publish surface and the
// consumer barrier surface over a single sequenced ring.
type RingBuffer[E any] struct {
	entries    []E
	bufferSize int64
	mask       int64

	seq          sequencer
	pub          publisher
	waitStrategy WaitStrategy
	multi        bool
}

func validateBufferSize(bufferSize int64) error {
	if bufferSize < 1 {
		return ErrInvalidConfiguration
	}
	if bufferSize&(bufferSize-1) != 0 {
		return ErrInvalidConfiguration
	}
	return nil
}

// NewSingleProducer constructs a RingBuffer under the single-writer
// contract: the caller must guarantee exactly one goroutine ever calls
// Next/TryNext/Publish/InitialiseTo on the returned RingBuffer.
func NewSingleProducer[E any](factory func() E, bufferSize int64, waitStrategy WaitStrategy) (*RingBuffer[E], error) {
	if err := validateBufferSize(bufferSize); err != nil {
		return nil, err
	}
	seq := newSingleProducerSequencer(bufferSize)
	pub := newSingleProducerPublisher(seq.cursor, waitStrategy)
	return newRingBuffer[E](factory, bufferSize, seq, pub, waitStrategy, false), nil
}

// NewMultiProducer constructs a RingBuffer that tolerates any number of
// concurrent producer goroutines.
func NewMultiProducer[E any](factory func() E, bufferSize int64, waitStrategy WaitStrategy) (*RingBuffer[E], error) {
	if err := validateBufferSize(bufferSize); err != nil {
		return nil, err
	}
	seq := newMultiProducerSequencer(bufferSize)
	pub := newMultiProducerPublisher(seq.cursor, waitStrategy, bufferSize)
	return newRingBuffer[E](factory, bufferSize, seq, pub, waitStrategy, true), nil
}

func newRingBuffer[E any](factory func() E, bufferSize int64, seq sequencer, pub publisher, waitStrategy WaitStrategy, multi bool) *RingBuffer[E] {
	entries := make([]E, bufferSize)
	for i := range entries {
		entries[i] = factory()
	}
	return &RingBuffer[E]{
		entries:      entries,
		bufferSize:   bufferSize,
		mask:         bufferSize - 1,
		seq:          seq,
		pub:          pub,
		waitStrategy: waitStrategy,
		multi:        multi,
	}
}

// Next claims the next sequence. Blocks until space is available.
func (rb *RingBuffer[E]) Next() (int64, error) {
	return rb.seq.Next(1)
}

// NextN claims the next n contiguous sequences, returning the highest of
// them. Blocks until space is available.
func (rb *RingBuffer[E]) NextN(n int64) (int64, error) {
	return rb.seq.Next(n)
}

// TryNext claims the next sequence without blocking, returning
// ErrInsufficientCapacity if it would have to wait.
func (rb *RingBuffer[E]) TryNext() (int64, error) {
	return rb.seq.TryNext(1)
}

// TryNextN claims the next n contiguous sequences without blocking.
func (rb *RingBuffer[E]) TryNextN(n int64) (int64, error) {
	return rb.seq.TryNext(n)
}

// Publish announces that sequence is readable.
func (rb *RingBuffer[E]) Publish(sequence int64) {
	rb.pub.Publish(sequence)
}

// PublishRange announces that every sequence in [lo, hi] is readable.
func (rb *RingBuffer[E]) PublishRange(lo, hi int64) {
	rb.pub.PublishRange(lo, hi)
}

// Get waits for sequence to become available and returns a pointer to
// its slot.
func (rb *RingBuffer[E]) Get(sequence int64) *E {
	rb.pub.EnsureAvailable(sequence)
	return &rb.entries[sequence&rb.mask]
}

// GetPreallocated returns a pointer to the slot at sequence without
// waiting for availability. Intended for producer use between claim and
// publish, when the caller already knows it owns the slot.
func (rb *RingBuffer[E]) GetPreallocated(sequence int64) *E {
	return &rb.entries[sequence&rb.mask]
}

// NewBarrier returns a SequenceBarrier over this ring, optionally gated
// on the given upstream consumer Sequences.
func (rb *RingBuffer[E]) NewBarrier(dependencies ...*Sequence) *SequenceBarrier {
	return newSequenceBarrier(rb.seq.Cursor(), rb.waitStrategy, rb.pub, dependencies)
}

// AddGatingSequences registers consumer Sequences that throttle
// producers from lapping unconsumed slots.
func (rb *RingBuffer[E]) AddGatingSequences(seqs ...*Sequence) {
	rb.seq.GatingSequences().Add(rb.seq.Cursor(), seqs...)
}

// RemoveGatingSequence unregisters a consumer Sequence, reporting
// whether it was present.
func (rb *RingBuffer[E]) RemoveGatingSequence(s *Sequence) bool {
	return rb.seq.GatingSequences().Remove(s)
}

// GetCursor returns the current cursor value. On a multi-producer ring
// this is the highest claimed sequence, not necessarily the highest
// published one; use a SequenceBarrier to observe committed progress.
func (rb *RingBuffer[E]) GetCursor() int64 {
	return rb.seq.Cursor().Get()
}

// GetBufferSize returns the fixed slot count.
func (rb *RingBuffer[E]) GetBufferSize() int64 {
	return rb.bufferSize
}

// HasAvailableCapacity reports whether n sequences could be claimed right
// now without blocking.
func (rb *RingBuffer[E]) HasAvailableCapacity(n int64) bool {
	return rb.seq.HasAvailableCapacity(n)
}

// HasAvilableCapacity is a forwarding alias for HasAvailableCapacity,
// kept for source compatibility with the reference spelling.
func (rb *RingBuffer[E]) HasAvilableCapacity(n int64) bool {
	return rb.HasAvailableCapacity(n)
}

// InitialiseTo seeds the cursor before any consumer has attached. Only
// valid on a single-producer ring with no gating sequences registered
// yet; returns ErrIllegalState otherwise.
func (rb *RingBuffer[E]) InitialiseTo(sequence int64) error {
	if rb.multi {
		return ErrIllegalState
	}
	if err := rb.seq.Claim(sequence); err != nil {
		return err
	}
	rb.pub.Publish(sequence)
	return nil
}

// PublishEvent claims a sequence, invokes translator on the preallocated
// slot, and publishes. The claimed sequence is published on every exit
// path, including a translator panic: leaving it unpublished would
// leave consumers blocked on it forever. A recovered panic is returned
// as *TranslatorFaultError.
func (rb *RingBuffer[E]) PublishEvent(translator EventTranslator[E]) (sequence int64, err error) {
	sequence, err = rb.seq.Next(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// TryPublishEvent is PublishEvent without blocking: it returns
// ErrInsufficientCapacity instead of waiting for space.
func (rb *RingBuffer[E]) TryPublishEvent(translator EventTranslator[E]) (sequence int64, err error) {
	sequence, err = rb.seq.TryNext(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence) })
	rb.pub.Publish(sequence)
	return sequence, err
}

func (rb *RingBuffer[E]) translate(sequence int64, run func(e *E)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TranslatorFaultError{Sequence: sequence, Cause: r}
		}
	}()
	run(rb.GetPreallocated(sequence))
	return nil
}

// PublishEventOneArg claims a sequence, invokes translator with arg0 on
// the preallocated slot, and publishes on every exit path.
func PublishEventOneArg[E, A any](rb *RingBuffer[E], translator EventTranslatorOneArg[E, A], arg0 A) (sequence int64, err error) {
	sequence, err = rb.seq.Next(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, arg0) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// TryPublishEventOneArg is PublishEventOneArg without blocking.
func TryPublishEventOneArg[E, A any](rb *RingBuffer[E], translator EventTranslatorOneArg[E, A], arg0 A) (sequence int64, err error) {
	sequence, err = rb.seq.TryNext(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, arg0) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// PublishEventTwoArg claims a sequence, invokes translator with arg0 and
// arg1 on the preallocated slot, and publishes on every exit path.
func PublishEventTwoArg[E, A, B any](rb *RingBuffer[E], translator EventTranslatorTwoArg[E, A, B], arg0 A, arg1 B) (sequence int64, err error) {
	sequence, err = rb.seq.Next(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, arg0, arg1) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// TryPublishEventTwoArg is PublishEventTwoArg without blocking.
func TryPublishEventTwoArg[E, A, B any](rb *RingBuffer[E], translator EventTranslatorTwoArg[E, A, B], arg0 A, arg1 B) (sequence int64, err error) {
	sequence, err = rb.seq.TryNext(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, arg0, arg1) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// PublishEventThreeArg claims a sequence, invokes translator with arg0,
// arg1 and arg2 on the preallocated slot, and publishes on every exit
// path.
func PublishEventThreeArg[E, A, B, C any](rb *RingBuffer[E], translator EventTranslatorThreeArg[E, A, B, C], arg0 A, arg1 B, arg2 C) (sequence int64, err error) {
	sequence, err = rb.seq.Next(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, arg0, arg1, arg2) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// TryPublishEventThreeArg is PublishEventThreeArg without blocking.
func TryPublishEventThreeArg[E, A, B, C any](rb *RingBuffer[E], translator EventTranslatorThreeArg[E, A, B, C], arg0 A, arg1 B, arg2 C) (sequence int64, err error) {
	sequence, err = rb.seq.TryNext(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, arg0, arg1, arg2) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// PublishEventVararg claims a sequence, invokes translator with args on
// the preallocated slot, and publishes on every exit path.
func PublishEventVararg[E any](rb *RingBuffer[E], translator EventTranslatorVararg[E], args ...any) (sequence int64, err error) {
	sequence, err = rb.seq.Next(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, args...) })
	rb.pub.Publish(sequence)
	return sequence, err
}

// TryPublishEventVararg is PublishEventVararg without blocking.
func TryPublishEventVararg[E any](rb *RingBuffer[E], translator EventTranslatorVararg[E], args ...any) (sequence int64, err error) {
	sequence, err = rb.seq.TryNext(1)
	if err != nil {
		return sequence, err
	}
	err = rb.translate(sequence, func(e *E) { translator(e, sequence, args...) })
	rb.pub.Publish(sequence)
	return sequence, err
}
