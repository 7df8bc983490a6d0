package service

import (
	"sync"
	"time"
)

// DedupeScheduler - отложенный одноместный запуск очистки дубликатов.
// Повторный вызов Schedule до срабатывания сбрасывает таймер, поэтому
// пересекающиеся мутации не порождают параллельных очисток
type DedupeScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	fn    func()
}

func NewDedupeScheduler(delay time.Duration, fn func()) *DedupeScheduler {
	return &DedupeScheduler{delay: delay, fn: fn}
}

func (s *DedupeScheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fn)
}

func (s *DedupeScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
