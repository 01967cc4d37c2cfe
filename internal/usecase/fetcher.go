package usecase

import (
	"context"
	"sync"
	"time"
)

// Fetcher owns one fetched payload and its loading/error state, with manual
// refetch. Each screen holds its own fetchers; payloads are never shared by
// reference across screens. There is deliberately no in-flight cancellation:
// a superseded response may land after a newer one started and overwrite it,
// an accepted race at this request rate.
type Fetcher[T any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context) (T, error)

	data      T
	err       error
	loading   bool
	fetchedAt time.Time
}

func NewFetcher[T any](fetch func(ctx context.Context) (T, error)) *Fetcher[T] {
	return &Fetcher[T]{fetch: fetch}
}

// Load runs the fetch and stores either the payload or the error. A failed
// fetch keeps the previous payload so the screen can keep rendering stale
// data next to a retryable error panel.
func (f *Fetcher[T]) Load(ctx context.Context) error {
	f.mu.Lock()
	f.loading = true
	f.mu.Unlock()

	data, err := f.fetch(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	f.err = err
	if err == nil {
		f.data = data
		f.fetchedAt = time.Now()
	}
	return err
}

func (f *Fetcher[T]) Data() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *Fetcher[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Fetcher[T]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *Fetcher[T]) FetchedAt() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchedAt
}

// Poller re-runs a refresh function on a fixed interval until stopped. Used
// for the payment-status auto-refresh; Stop tears the timer down so a closed
// screen cannot leak it.
type Poller struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartPoller begins polling. The refresh function's errors are its own
// business (fetchers store them); polling always continues.
func StartPoller(ctx context.Context, interval time.Duration, refresh func(ctx context.Context)) *Poller {
	p := &Poller{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				refresh(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return p
}

// Stop ends polling and waits for the loop to exit. Safe to call twice.
func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stop) })
	<-p.done
}
