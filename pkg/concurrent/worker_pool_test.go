package concurrent

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolCollectsAllResults(t *testing.T) {
	pool := NewWorkerPool[int, int](4, 16)

	pool.Start(func(job int) int {
		return job * job
	})

	for i := 0; i < 16; i++ {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	sum := 0
	count := 0
	for res := range pool.CollectResults() {
		sum += res
		count++
	}

	assert.Equal(t, 16, count)
	assert.Equal(t, 1240, sum) // sum of squares 0..15
}

func TestPoolScheduleTimeout(t *testing.T) {
	pool := NewPool(1, 0, 1)
	defer pool.Close()

	block := make(chan struct{})
	pool.Schedule(func() {
		<-block
	})

	err := pool.ScheduleTimeout(10*time.Millisecond, func() {})
	assert.Equal(t, ErrScheduleTimeout, err)

	close(block)
}

func TestPoolRunsScheduledTasks(t *testing.T) {
	pool := NewPool(4, 4, 2)
	defer pool.Close()

	var ran atomic.Int32
	done := make(chan struct{}, 8)
	for i := 0; i < 8; i++ {
		pool.Schedule(func() {
			ran.Add(1)
			done <- struct{}{}
		})
	}

	for i := 0; i < 8; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduled task did not run")
		}
	}
	assert.Equal(t, int32(8), ran.Load())
}
