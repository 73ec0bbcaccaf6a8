package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
	"github.com/dmitrijs2005/smarttraffic/internal/common"
)

// RouteService suggests a route between two places. The only
// implementation returns one fixed path through San Francisco.
type RouteService interface {
	FindRoute(ctx context.Context, origin, destination string) (models.Route, error)
}

var mockRoutePoints = []models.Coordinate{
	{Latitude: 37.78825, Longitude: -122.4324},
	{Latitude: 37.79825, Longitude: -122.4224},
	{Latitude: 37.80825, Longitude: -122.4124},
	{Latitude: 37.81825, Longitude: -122.4024},
}

var mockRouteRegion = models.Region{
	Latitude:       37.80325,
	Longitude:      -122.4174,
	LatitudeDelta:  0.0422,
	LongitudeDelta: 0.0221,
}

type routeService struct {
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

func NewRouteService(delay time.Duration) RouteService {
	return &routeService{delay: delay, sleep: sleepCtx}
}

func (r *routeService) FindRoute(ctx context.Context, origin, destination string) (models.Route, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return models.Route{}, fmt.Errorf("%w: please enter both origin and destination", common.ErrValidation)
	}

	if err := r.sleep(ctx, r.delay); err != nil {
		return models.Route{}, err
	}

	points := make([]models.Coordinate, len(mockRoutePoints))
	copy(points, mockRoutePoints)
	return models.Route{
		Origin:      origin,
		Destination: destination,
		Points:      points,
		Region:      mockRouteRegion,
	}, nil
}
