// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrInsufficientCapacity indicates a claim could not be satisfied without
// overtaking the slowest gating consumer.
//
// Returned by TryNext / TryPublishEvent. It is a control flow signal, not a
// failure: the caller should back off (e.g. with [iox.Backoff]) and retry,
// or drop the event.
//
// This wraps [iox.ErrWouldBlock] for ecosystem consistency with the rest of
// the pack's queue types.
var ErrInsufficientCapacity = fmt.Errorf("disruptor: insufficient capacity: %w", iox.ErrWouldBlock)

// ErrAlert is the cooperative cancellation signal for a blocked
// SequenceBarrier.WaitFor call. Raised by SequenceBarrier.Alert.
//
// Consumers observing ErrAlert are expected to check their own lifecycle
// and either call ClearAlert and resume, or exit.
var ErrAlert = errors.New("disruptor: alerted")

// ErrIllegalState indicates caller misuse rather than a recoverable runtime
// condition: InitialiseTo called after gating sequences already exist, or
// InitialiseTo called on a multi-producer ring.
var ErrIllegalState = errors.New("disruptor: illegal state")

// ErrInvalidConfiguration indicates bufferSize was less than 1 or not a
// power of two. Raised at construction and fatal to that RingBuffer.
var ErrInvalidConfiguration = errors.New("disruptor: invalid configuration")

// TranslatorFaultError wraps a panic recovered from a user-supplied
// EventTranslator. The core still publishes the claimed sequence: not
// publishing would leave consumers blocked on an uncommittable sequence
// forever. The fault is surfaced to the producer caller that invoked
// PublishEvent / TryPublishEvent.
type TranslatorFaultError struct {
	Sequence int64
	Cause    any
}

func (e *TranslatorFaultError) Error() string {
	return fmt.Sprintf("disruptor: translator fault at sequence %d: %v", e.Sequence, e.Cause)
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support, so it also
// recognizes ErrInsufficientCapacity.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}
