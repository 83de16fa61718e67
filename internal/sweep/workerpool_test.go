package sweep

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	t.Run("runs submitted tasks", func(t *testing.T) {
		p := newPool(2)

		var mu sync.Mutex
		var executed int
		var wg sync.WaitGroup

		for i := 0; i < 5; i++ {
			wg.Add(1)
			err := p.submit(context.Background(), func() error {
				defer wg.Done()
				mu.Lock()
				executed++
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
		}

		wg.Wait()
		p.close()

		assert.Equal(t, 5, executed)
	})

	t.Run("task errors do not stop workers", func(t *testing.T) {
		p := newPool(1)

		var wg sync.WaitGroup
		wg.Add(2)
		err := p.submit(context.Background(), func() error {
			defer wg.Done()
			return assert.AnError
		})
		require.NoError(t, err)

		var ran bool
		err = p.submit(context.Background(), func() error {
			defer wg.Done()
			ran = true
			return nil
		})
		require.NoError(t, err)

		wg.Wait()
		p.close()

		assert.True(t, ran)
	})

	t.Run("submit refuses after context cancel", func(t *testing.T) {
		p := newPool(1)
		defer p.close()

		// saturate the single worker and the queue so submit has to block
		block := make(chan struct{})
		for i := 0; i < 2; i++ {
			_ = p.submit(context.Background(), func() error {
				<-block
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.submit(ctx, func() error {
			t.Error("task should not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		close(block)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		p := newPool(1)
		p.close()
		p.close()
	})
}
