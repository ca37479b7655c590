package registry

import (
	"strings"

	"github.com/avelis/spacetravel/internal/domain"
)

// Pure entity validation. Referential checks need the store and live in the
// service methods; everything here rejects on the input alone.

func validatePlanet(p domain.Planet) error {
	if strings.TrimSpace(p.Name) == "" {
		return &domain.ValidationError{Field: "planet_name", Reason: "cannot be empty"}
	}
	if p.Size <= 0 {
		return &domain.ValidationError{Field: "size", Reason: "must be a positive integer"}
	}
	if p.Population < 0 {
		return &domain.ValidationError{Field: "population", Reason: "must be a non-negative integer"}
	}
	return nil
}

func validateStation(s domain.SpaceStation) error {
	if strings.TrimSpace(s.Name) == "" {
		return &domain.ValidationError{Field: "station_name", Reason: "cannot be empty"}
	}
	if s.Planet != nil && strings.TrimSpace(*s.Planet) == "" {
		return &domain.ValidationError{Field: "planet_associated", Reason: "must be a non-empty name or absent"}
	}
	if s.Capacity <= 0 {
		return &domain.ValidationError{Field: "capacity_limit", Reason: "must be a positive integer"}
	}
	return nil
}

func validateSpaceport(p domain.Spaceport) error {
	if strings.TrimSpace(p.Name) == "" {
		return &domain.ValidationError{Field: "port_name", Reason: "cannot be empty"}
	}
	if p.Planet == nil && p.Station == nil {
		return &domain.ValidationError{Field: "owner", Reason: "must be owned by either a planet or a station"}
	}
	if p.Planet != nil && p.Station != nil {
		return &domain.ValidationError{Field: "owner", Reason: "cannot belong to both a planet and a station"}
	}
	if p.Fee < 0 {
		return &domain.ValidationError{Field: "fee", Reason: "must be a non-negative integer"}
	}
	if p.Capacity <= 0 {
		return &domain.ValidationError{Field: "capacity", Reason: "must be a positive integer"}
	}
	if p.Station != nil && p.Name != *p.Station {
		return &domain.ValidationError{Field: "port_name", Reason: "must match the station name for a station-owned port"}
	}
	return nil
}

func validateSpacecraft(c domain.SpacecraftType) error {
	if strings.TrimSpace(c.Name) == "" {
		return &domain.ValidationError{Field: "type_name", Reason: "cannot be empty"}
	}
	if c.Capacity <= 0 {
		return &domain.ValidationError{Field: "capacity", Reason: "must be a positive integer"}
	}
	if c.MaxRange <= 0 {
		return &domain.ValidationError{Field: "max_range", Reason: "must be a positive integer"}
	}
	return nil
}

func validateRoute(r domain.Route) error {
	if r.OriginID == r.DestID {
		return &domain.ValidationError{Field: "dest_id", Reason: "origin and destination must differ"}
	}
	if r.Distance <= 0 {
		return &domain.ValidationError{Field: "dist", Reason: "must be a positive integer"}
	}
	return nil
}

// validateFlight covers the flight-local rules and normalizes the departure
// time and day tokens. One invalid day token fails the whole input.
func validateFlight(in FlightInput) (domain.Flight, error) {
	if strings.TrimSpace(in.Number) == "" {
		return domain.Flight{}, &domain.ValidationError{Field: "flight_number", Reason: "cannot be empty"}
	}
	if in.DurationHours <= 0 {
		return domain.Flight{}, &domain.ValidationError{Field: "flight_duration", Reason: "must be a positive number"}
	}
	departure, err := domain.ParseTimeOfDay(in.DepartureTime)
	if err != nil {
		return domain.Flight{}, &domain.ValidationError{Field: "departure_time", Reason: err.Error()}
	}
	if len(in.Days) == 0 {
		return domain.Flight{}, &domain.ValidationError{Field: "days", Reason: "at least one day is required"}
	}
	days, err := domain.ParseWeekdays(in.Days)
	if err != nil {
		return domain.Flight{}, &domain.ValidationError{Field: "days", Reason: err.Error()}
	}
	return domain.Flight{
		Number:         in.Number,
		RouteID:        in.RouteID,
		SpacecraftType: in.SpacecraftType,
		DepartureTime:  departure,
		DurationHours:  in.DurationHours,
		Days:           days,
	}, nil
}
