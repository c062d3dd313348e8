// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "testing"

func TestSingleProducerPublisherPublishAdvancesCursor(t *testing.T) {
	cursor := NewSequenceInitial()
	p := newSingleProducerPublisher(cursor, NewBusySpinWaitStrategy())

	p.Publish(41)
	if got := cursor.Get(); got != 41 {
		t.Fatalf("cursor: got %d, want 41", got)
	}
	if got := p.HighestPublishedSequence(0, 41); got != 41 {
		t.Fatalf("HighestPublishedSequence: got %d, want 41", got)
	}
}

func TestMultiProducerPublisherAvailabilityIndependentOfOrder(t *testing.T) {
	cursor := NewSequenceInitial()
	p := newMultiProducerPublisher(cursor, NewBusySpinWaitStrategy(), 8)

	// Publish sequence 2 before 0 and 1: availability must track each
	// slot independently of publish order.
	p.Publish(2)
	if p.isAvailable(0) || p.isAvailable(1) {
		t.Fatalf("sequences 0 and 1 reported available before being published")
	}
	if !p.isAvailable(2) {
		t.Fatalf("sequence 2 reported unavailable after being published")
	}

	if got := p.HighestPublishedSequence(0, 2); got != -1 {
		t.Fatalf("HighestPublishedSequence(0,2) with a hole at 0: got %d, want -1", got)
	}

	p.Publish(0)
	p.Publish(1)
	if got := p.HighestPublishedSequence(0, 2); got != 2 {
		t.Fatalf("HighestPublishedSequence(0,2) once contiguous: got %d, want 2", got)
	}
}

func TestMultiProducerPublisherAvailabilityAcrossWrap(t *testing.T) {
	cursor := NewSequenceInitial()
	p := newMultiProducerPublisher(cursor, NewBusySpinWaitStrategy(), 4)

	// Publish the first round, then reuse slot 0 for sequence 4 (next
	// round) and confirm the availability buffer distinguishes rounds.
	for s := int64(0); s < 4; s++ {
		p.Publish(s)
	}
	if !p.isAvailable(0) {
		t.Fatalf("sequence 0 round 0 should be available")
	}

	p.Publish(4)
	if !p.isAvailable(4) {
		t.Fatalf("sequence 4 round 1 should be available after republishing slot 0")
	}
}
