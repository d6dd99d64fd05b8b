package syncs

import "context"

// Semaphore bounds the number of concurrent holders.
type Semaphore chan struct{}

// NewSemaphore returns a semaphore with n slots, at least one.
func NewSemaphore(n int) Semaphore {
	return make(Semaphore, max(n, 1))
}

// Acquire blocks until a slot is free or ctx is done.
func (s Semaphore) Acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

func (s Semaphore) Release() {
	<-s
}
