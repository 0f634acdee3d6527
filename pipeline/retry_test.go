package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html>", nil
		}

		html, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, testDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", &cardmill.FetchError{URL: url, StatusCode: 503}
			}
			return "<html>", nil
		}

		html, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, testDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("retries transport errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("connection refused")
		}

		_, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, testDelays)
		require.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{403, 404, 429} {
			calls := 0
			fetch := func(_ context.Context, url string) (string, error) {
				calls++
				return "", &cardmill.FetchError{URL: url, StatusCode: status}
			}

			_, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, testDelays)
			require.Error(t, err)
			assert.Equal(t, 1, calls, "status %d", status)
			assert.Equal(t, status, cardmill.FetchStatusCode(err))
		}
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, url string) (string, error) {
			cancel()
			return "", &cardmill.FetchError{URL: url, StatusCode: 502}
		}

		_, err := pipeline.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, testDelays)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestHostLimiter_Wait(t *testing.T) {
	t.Parallel()

	limiter := pipeline.NewHostLimiter(1000)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx, "https://a.example.com/one"))
	require.NoError(t, limiter.Wait(ctx, "https://b.example.com/two"))
	require.NoError(t, limiter.Wait(ctx, "https://a.example.com/three"))
}
