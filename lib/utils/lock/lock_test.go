package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`serializes same key`, func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			counter int
			running int
			maxRun  int
			guard   sync.Mutex
		)
		for n := 0; n < 10; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(context.Background(), "submission-1", 5*time.Second, func() error {
					guard.Lock()
					running++
					if running > maxRun {
						maxRun = running
					}
					guard.Unlock()
					time.Sleep(time.Millisecond)
					guard.Lock()
					running--
					counter++
					guard.Unlock()
					return nil
				})
				require.True(t, ok)
				require.Nil(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, 10, counter)
		require.Equal(t, 1, maxRun)
	})

	t.Run(`timeout while locked`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "submission-2", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(context.Background(), "submission-2", 10*time.Millisecond, func() error {
			return nil
		})
		close(release)
		require.False(t, ok)
		require.Nil(t, err)
	})
}
