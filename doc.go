// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package disruptor implements a bounded, preallocated ring-buffer
// coordination engine for high-throughput, low-latency in-process event
// exchange between producer and consumer agents.
//
// # Overview
//
// A RingBuffer owns a fixed-size array of preallocated event slots.
// Producers claim sequences from a Sequencer, write into the slot at that
// sequence, and announce readiness through a Publisher. Consumers obtain a
// SequenceBarrier, wait for a target sequence to become available, read the
// slots in strictly increasing sequence order, and advance their own
// Sequence so upstream producers can reuse the slots they have consumed.
//
//	rb, err := disruptor.NewSingleProducer(func() Event { return Event{} }, 1024, disruptor.NewBlockingWaitStrategy())
//
//	seq, err := rb.Next()
//	*rb.GetPreallocated(seq) = Event{Value: 42}
//	rb.Publish(seq)
//
//	barrier := rb.NewBarrier()
//	available, err := barrier.WaitFor(seq)
//	if err != nil {
//	    // disruptor.ErrAlert: orderly shutdown
//	}
//	for s := seq; s <= available; s++ {
//	    process(rb.Get(s))
//	}
//
// # Producer modes
//
// NewSingleProducer requires the caller to guarantee that exactly one
// goroutine calls Next/TryNext/Publish. NewMultiProducer tolerates any
// number of producer goroutines at the cost of an availability buffer that
// tracks per-slot publication independently of claim order.
//
// # Memory ordering
//
// Every Sequence load is acquire and every store is release, built on
// [code.hybscloud.com/atomix]. Wait strategies built on
// [code.hybscloud.com/spin] spin with CPU pause instructions before
// yielding or parking; [code.hybscloud.com/iox] supplies the bounded
// exponential back-off used by the Sleeping wait strategy and by producer
// retry loops around InsufficientCapacity.
//
// # Cancellation
//
// SequenceBarrier.Alert is the sole cancellation channel. A blocked
// WaitFor call returns ErrAlert; callers are expected to check lifecycle
// state and either ClearAlert and resume, or exit.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions, and [code.hybscloud.com/iox] for semantic errors and
// back-off. No logging dependency is used: this is hot-path coordination
// code, and nothing else retrieved for this package logs from a producer
// or consumer hot path either.
package disruptor
