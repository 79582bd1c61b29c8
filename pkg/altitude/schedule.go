package altitude

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs task every interval until the returned cancel is called.
// cancel must not return before an in-flight task has finished, and the task
// must never overlap with itself.
type Scheduler interface {
	Every(interval time.Duration, task func(ctx context.Context)) (cancel func())
}

type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, task func(ctx context.Context)) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				task(ctx)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}
