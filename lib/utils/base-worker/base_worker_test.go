package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run(`job runs until context is done`, func(t *testing.T) {
		var calls int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) error {
				if atomic.AddInt32(&calls, 1) >= 3 {
					cancel()
				}
				return nil
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop")
		}
		require.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
	})

	t.Run(`panic and error do not stop worker`, func(t *testing.T) {
		var calls int32
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		worker.Run(ctx, func(ctx context.Context) error {
			switch atomic.AddInt32(&calls, 1) {
			case 1:
				panic("boom")
			case 2:
				return errors.New("job failed")
			default:
				cancel()
			}
			return nil
		})
		require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
}
