package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fee-console/internal/usecase"
)

func TestFetcher(t *testing.T) {
	t.Run("stores payload and fetch time", func(t *testing.T) {
		f := usecase.NewFetcher(func(ctx context.Context) (int, error) { return 42, nil })

		require.NoError(t, f.Load(context.Background()))
		assert.Equal(t, 42, f.Data())
		assert.NoError(t, f.Err())
		assert.False(t, f.FetchedAt().IsZero())
		assert.False(t, f.Loading())
	})

	t.Run("failed refetch keeps the previous payload", func(t *testing.T) {
		var fail bool
		f := usecase.NewFetcher(func(ctx context.Context) (string, error) {
			if fail {
				return "", errors.New("network down")
			}
			return "fresh", nil
		})

		require.NoError(t, f.Load(context.Background()))
		fail = true
		assert.Error(t, f.Load(context.Background()))

		assert.Equal(t, "fresh", f.Data())
		assert.Error(t, f.Err())
	})
}

func TestPoller(t *testing.T) {
	var ticks atomic.Int32
	p := usecase.StartPoller(context.Background(), 10*time.Millisecond, func(ctx context.Context) {
		ticks.Add(1)
	})

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)

	p.Stop()
	p.Stop() // idempotent

	settled := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load())
}
