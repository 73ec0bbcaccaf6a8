package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_RangeBounds(t *testing.T) {
	svc := NewSpeedService(0).(*speedService)

	svc.intN = func(n int) int { return 0 }
	r, err := svc.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MinSpeedKmh, r.SpeedKmh)

	svc.intN = func(n int) int { return n - 1 }
	r, err = svc.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MaxSpeedKmh-1, r.SpeedKmh)
	assert.NotEqual(t, uuid.Nil, r.ID)
}

func TestDetect_RealRandomStaysInRange(t *testing.T) {
	svc := NewSpeedService(0)
	for i := 0; i < 200; i++ {
		r, err := svc.Detect(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.SpeedKmh, MinSpeedKmh)
		assert.Less(t, r.SpeedKmh, MaxSpeedKmh)
	}
}

func TestDetect_WaitsConfiguredDelay(t *testing.T) {
	svc := NewSpeedService(2 * time.Second).(*speedService)
	var slept time.Duration
	svc.sleep = func(ctx context.Context, d time.Duration) error { slept = d; return nil }

	_, err := svc.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, slept)
}

func TestDetect_CanceledContext(t *testing.T) {
	svc := NewSpeedService(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Detect(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSleepCtx(t *testing.T) {
	require.NoError(t, sleepCtx(context.Background(), time.Millisecond))
	require.NoError(t, sleepCtx(context.Background(), 0))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, sleepCtx(ctx, time.Hour), context.DeadlineExceeded)
}
