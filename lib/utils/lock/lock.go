package lock

import (
	"context"
	"sync"
	"time"
)

var (
	mu    sync.Mutex
	locks = map[string]chan struct{}{}
)

func acquireChan(key string) chan struct{} {
	mu.Lock()
	defer mu.Unlock()
	ch, ok := locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		locks[key] = ch
	}
	return ch
}

// WithDelay выполняет safeCode под блокировкой по ключу.
// Если блокировку не удалось получить за wait, возвращает success=false.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	ch := acquireChan(key)
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	select {
	case ch <- struct{}{}:
	case <-timeout.C:
		return false, nil
	case <-ctx.Done():
		return false, nil
	}
	defer func() { <-ch }()
	return true, safeCode()
}
