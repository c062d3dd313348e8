// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/frankies/disruptor"
)

func waitStrategies() map[string]func() disruptor.WaitStrategy {
	return map[string]func() disruptor.WaitStrategy{
		"Blocking": func() disruptor.WaitStrategy { return disruptor.NewBlockingWaitStrategy() },
		"Sleeping": func() disruptor.WaitStrategy { return disruptor.NewSleepingWaitStrategy() },
		"Yielding": func() disruptor.WaitStrategy { return disruptor.NewYieldingWaitStrategy() },
		"BusySpin": func() disruptor.WaitStrategy { return disruptor.NewBusySpinWaitStrategy() },
	}
}

func TestWaitStrategyWakesOnPublish(t *testing.T) {
	for name, newStrategy := range waitStrategies() {
		t.Run(name, func(t *testing.T) {
			rb, err := disruptor.NewSingleProducer(func() *int { v := 0; return &v }, 8, newStrategy())
			if err != nil {
				t.Fatalf("NewSingleProducer: %v", err)
			}
			barrier := rb.NewBarrier()

			done := make(chan int64, 1)
			go func() {
				available, err := barrier.WaitFor(0)
				if err != nil {
					t.Errorf("WaitFor: %v", err)
				}
				done <- available
			}()

			seq, err := rb.Next()
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			rb.Publish(seq)

			select {
			case available := <-done:
				if available < 0 {
					t.Fatalf("WaitFor returned %d, want >= 0", available)
				}
			case <-time.After(time.Second):
				t.Fatalf("WaitFor did not wake up within 1s")
			}
		})
	}
}

func TestWaitStrategyAlertUnblocks(t *testing.T) {
	for name, newStrategy := range waitStrategies() {
		t.Run(name, func(t *testing.T) {
			rb, err := disruptor.NewSingleProducer(func() *int { v := 0; return &v }, 8, newStrategy())
			if err != nil {
				t.Fatalf("NewSingleProducer: %v", err)
			}
			barrier := rb.NewBarrier()

			done := make(chan error, 1)
			go func() {
				_, err := barrier.WaitFor(1000)
				done <- err
			}()

			time.Sleep(10 * time.Millisecond)
			barrier.Alert()

			select {
			case err := <-done:
				if !errors.Is(err, disruptor.ErrAlert) {
					t.Fatalf("WaitFor error: got %v, want ErrAlert", err)
				}
			case <-time.After(100 * time.Millisecond):
				t.Fatalf("alerted WaitFor did not unblock within 100ms")
			}
		})
	}
}
