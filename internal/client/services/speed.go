package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
	"github.com/google/uuid"
)

// Detected speeds fall in [MinSpeedKmh, MaxSpeedKmh).
const (
	MinSpeedKmh = 20
	MaxSpeedKmh = 80
)

// SpeedService simulates camera-based speed detection.
type SpeedService interface {
	Detect(ctx context.Context) (models.SpeedReading, error)
}

type speedService struct {
	delay time.Duration
	intN  func(n int) int
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewSpeedService(delay time.Duration) SpeedService {
	return &speedService{delay: delay, intN: rand.Intn, now: time.Now, sleep: sleepCtx}
}

// Detect waits for the processing delay, then reports a random speed.
// It returns ctx.Err() if ctx ends first.
func (s *speedService) Detect(ctx context.Context) (models.SpeedReading, error) {
	if err := s.sleep(ctx, s.delay); err != nil {
		return models.SpeedReading{}, err
	}
	return models.SpeedReading{
		ID:         uuid.New(),
		SpeedKmh:   MinSpeedKmh + s.intN(MaxSpeedKmh-MinSpeedKmh),
		DetectedAt: s.now(),
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
