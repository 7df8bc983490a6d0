package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupeScheduler_CoalescesRapidCalls(t *testing.T) {
	var fired int32
	s := NewDedupeScheduler(20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	defer s.Stop()

	// серия быстрых вызовов должна свернуться в один запуск
	s.Schedule()
	s.Schedule()
	s.Schedule()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, time.Second, 5*time.Millisecond)

	// выжидаем ещё окно: повторного запуска быть не должно
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestDedupeScheduler_StopCancelsPending(t *testing.T) {
	var fired int32
	s := NewDedupeScheduler(20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	s.Schedule()
	s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestDedupeScheduler_FiresAgainAfterCompletion(t *testing.T) {
	var fired int32
	s := NewDedupeScheduler(10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	defer s.Stop()

	s.Schedule()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, time.Second, 2*time.Millisecond)

	s.Schedule()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 2
	}, time.Second, 2*time.Millisecond)
}
