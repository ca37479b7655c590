package itinerary

import (
	"context"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/avelis/spacetravel/internal/repository"
	"go.uber.org/zap"
)

// ItineraryUseCase is the read side: the five itinerary queries. Every query
// returns an ordered slice, empty when nothing matches.
type ItineraryUseCase interface {
	ConnectedPorts(ctx context.Context, portName string) ([]domain.ConnectedPort, error)
	Departures(ctx context.Context, portName, startDay, endDay string) ([]domain.ScheduledDeparture, error)
	Arrivals(ctx context.Context, portName, startDay, endDay string) ([]domain.ScheduledDeparture, error)
	FlightsBetween(ctx context.Context, originID, destID int64) ([]domain.RouteFlight, error)
	FindFlights(ctx context.Context, in FindFlightsInput) ([]domain.RouteFlight, error)
}

// FindFlightsInput bounds the constrained flight search. MaxResults caps the
// row count; multi-hop itineraries across intermediate ports are not
// searched.
type FindFlightsInput struct {
	Day            string
	OriginID       int64
	DestID         int64
	DepartAfter    string
	MaxTravelHours float64
	MaxResults     int
}

type Cache interface {
	GetConnectedPorts(ctx context.Context, portName string) ([]domain.ConnectedPort, error)
	SetConnectedPorts(ctx context.Context, portName string, ports []domain.ConnectedPort) error
	GetRouteFlights(ctx context.Context, originID, destID int64) ([]domain.RouteFlight, error)
	SetRouteFlights(ctx context.Context, originID, destID int64, flights []domain.RouteFlight) error
}

type ItineraryService struct {
	repo  repository.ItineraryRepository
	cache Cache
	log   *zap.SugaredLogger
}

func NewItineraryService(repo repository.ItineraryRepository, cache Cache, log *zap.SugaredLogger) *ItineraryService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ItineraryService{repo: repo, cache: cache, log: log}
}

func (s *ItineraryService) ConnectedPorts(ctx context.Context, portName string) ([]domain.ConnectedPort, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetConnectedPorts(ctx, portName); err == nil && cached != nil {
			return cached, nil
		}
	}
	ports, err := s.repo.ConnectedPorts(ctx, portName)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetConnectedPorts(ctx, portName, ports); err != nil {
			s.log.Warnw("cache connected ports", "port", portName, "error", err)
		}
	}
	return ports, nil
}

func (s *ItineraryService) Departures(ctx context.Context, portName, startDay, endDay string) ([]domain.ScheduledDeparture, error) {
	days, err := expandDayRange(startDay, endDay)
	if err != nil {
		return nil, err
	}
	return s.repo.Departures(ctx, portName, days)
}

func (s *ItineraryService) Arrivals(ctx context.Context, portName, startDay, endDay string) ([]domain.ScheduledDeparture, error) {
	days, err := expandDayRange(startDay, endDay)
	if err != nil {
		return nil, err
	}
	return s.repo.Arrivals(ctx, portName, days)
}

func (s *ItineraryService) FlightsBetween(ctx context.Context, originID, destID int64) ([]domain.RouteFlight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRouteFlights(ctx, originID, destID); err == nil && cached != nil {
			return cached, nil
		}
	}
	flights, err := s.repo.FlightsBetween(ctx, originID, destID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRouteFlights(ctx, originID, destID, flights); err != nil {
			s.log.Warnw("cache route flights", "origin", originID, "dest", destID, "error", err)
		}
	}
	return flights, nil
}

// FindFlights searches the exact origin-to-destination route on one day for
// departures within three hours of DepartAfter, bounded by travel time and
// capped at MaxResults rows.
func (s *ItineraryService) FindFlights(ctx context.Context, in FindFlightsInput) ([]domain.RouteFlight, error) {
	day, err := domain.ParseWeekday(in.Day)
	if err != nil {
		return nil, &domain.ValidationError{Field: "day", Reason: err.Error()}
	}
	departAfter, err := domain.ParseTimeOfDay(in.DepartAfter)
	if err != nil {
		return nil, &domain.ValidationError{Field: "depart_after", Reason: err.Error()}
	}
	if in.MaxTravelHours <= 0 {
		return nil, &domain.ValidationError{Field: "max_travel_hours", Reason: "must be a positive number"}
	}
	if in.MaxResults <= 0 {
		return nil, &domain.ValidationError{Field: "max_results", Reason: "must be a positive integer"}
	}
	departBefore := domain.AddHoursClamped(departAfter, 3)
	return s.repo.FindFlights(ctx, string(day), in.OriginID, in.DestID, departAfter, departBefore, in.MaxTravelHours, in.MaxResults)
}

// expandDayRange turns two raw day tokens into the canonical Monday-first
// day list the repository binds and orders by.
func expandDayRange(startDay, endDay string) ([]string, error) {
	start, err := domain.ParseWeekday(startDay)
	if err != nil {
		return nil, &domain.ValidationError{Field: "start_day", Reason: err.Error()}
	}
	end, err := domain.ParseWeekday(endDay)
	if err != nil {
		return nil, &domain.ValidationError{Field: "end_day", Reason: err.Error()}
	}
	return domain.WeekdayStrings(domain.WeekdayRange(start, end)), nil
}

var _ ItineraryUseCase = (*ItineraryService)(nil)
