package repository

import (
	"context"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItineraryRepository answers the read-only itinerary queries. Day lists
// arrive pre-expanded in canonical Monday-first order; result ordering
// follows that list via array_position, never lexical day order.
type ItineraryRepository interface {
	ConnectedPorts(ctx context.Context, portName string) ([]domain.ConnectedPort, error)
	Departures(ctx context.Context, portName string, days []string) ([]domain.ScheduledDeparture, error)
	Arrivals(ctx context.Context, portName string, days []string) ([]domain.ScheduledDeparture, error)
	FlightsBetween(ctx context.Context, originID, destID int64) ([]domain.RouteFlight, error)
	FindFlights(ctx context.Context, day string, originID, destID int64, departAfter, departBefore string, maxDurationHours float64, limit int) ([]domain.RouteFlight, error)
}

type PGItineraryRepository struct {
	db *pgxpool.Pool
}

func NewItineraryRepository(db *pgxpool.Pool) *PGItineraryRepository {
	return &PGItineraryRepository{db: db}
}

func (r *PGItineraryRepository) ConnectedPorts(ctx context.Context, portName string) ([]domain.ConnectedPort, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT sp2.spaceport_id, sp2.port_name
		FROM spaceports sp
		JOIN routes r ON sp.spaceport_id IN (r.origin_id, r.dest_id)
		JOIN spaceports sp2
		  ON sp2.spaceport_id = CASE WHEN r.origin_id = sp.spaceport_id
		                             THEN r.dest_id
		                             ELSE r.origin_id END
		WHERE sp.port_name = $1
		ORDER BY sp2.port_name`, portName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ports := make([]domain.ConnectedPort, 0)
	for rows.Next() {
		var p domain.ConnectedPort
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		ports = append(ports, p)
	}
	return ports, rows.Err()
}

func (r *PGItineraryRepository) Departures(ctx context.Context, portName string, days []string) ([]domain.ScheduledDeparture, error) {
	return r.scheduled(ctx, `
		SELECT f.flight_number, fs.day_of_week, to_char(f.departure_time, 'HH24:MI:SS'), f.flight_duration
		FROM flights f
		JOIN flight_schedule fs ON f.flight_number = fs.flight_number
		JOIN routes r ON f.route_id = r.route_id
		JOIN spaceports sp ON r.origin_id = sp.spaceport_id
		WHERE sp.port_name = $1
		  AND fs.day_of_week = ANY($2)
		ORDER BY array_position($2::text[], fs.day_of_week), f.departure_time`, portName, days)
}

func (r *PGItineraryRepository) Arrivals(ctx context.Context, portName string, days []string) ([]domain.ScheduledDeparture, error) {
	return r.scheduled(ctx, `
		SELECT f.flight_number, fs.day_of_week, to_char(f.departure_time, 'HH24:MI:SS'), f.flight_duration
		FROM flights f
		JOIN flight_schedule fs ON f.flight_number = fs.flight_number
		JOIN routes r ON f.route_id = r.route_id
		JOIN spaceports sp ON r.dest_id = sp.spaceport_id
		WHERE sp.port_name = $1
		  AND fs.day_of_week = ANY($2)
		ORDER BY array_position($2::text[], fs.day_of_week), f.departure_time`, portName, days)
}

func (r *PGItineraryRepository) scheduled(ctx context.Context, query, portName string, days []string) ([]domain.ScheduledDeparture, error) {
	rows, err := r.db.Query(ctx, query, portName, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.ScheduledDeparture, 0)
	for rows.Next() {
		var d domain.ScheduledDeparture
		if err := rows.Scan(&d.FlightNumber, &d.Day, &d.DepartureTime, &d.DurationHours); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *PGItineraryRepository) FlightsBetween(ctx context.Context, originID, destID int64) ([]domain.RouteFlight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.flight_number, fs.day_of_week, to_char(f.departure_time, 'HH24:MI:SS'), f.flight_duration,
		       sp1.port_name, sp2.port_name, r.dist, f.spacecraft_type
		FROM flights f
		JOIN flight_schedule fs ON f.flight_number = fs.flight_number
		JOIN routes r ON f.route_id = r.route_id
		JOIN spaceports sp1 ON r.origin_id = sp1.spaceport_id
		JOIN spaceports sp2 ON r.dest_id = sp2.spaceport_id
		WHERE r.origin_id = $1 AND r.dest_id = $2
		ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], fs.day_of_week),
		         f.departure_time`, originID, destID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRouteFlights(rows)
}

func (r *PGItineraryRepository) FindFlights(ctx context.Context, day string, originID, destID int64, departAfter, departBefore string, maxDurationHours float64, limit int) ([]domain.RouteFlight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.flight_number, fs.day_of_week, to_char(f.departure_time, 'HH24:MI:SS'), f.flight_duration,
		       sp1.port_name, sp2.port_name, r.dist, f.spacecraft_type
		FROM flights f
		JOIN flight_schedule fs ON f.flight_number = fs.flight_number
		JOIN routes r ON f.route_id = r.route_id
		JOIN spaceports sp1 ON r.origin_id = sp1.spaceport_id
		JOIN spaceports sp2 ON r.dest_id = sp2.spaceport_id
		WHERE r.origin_id = $1
		  AND r.dest_id = $2
		  AND fs.day_of_week = $3
		  AND f.departure_time >= $4::time
		  AND f.departure_time <= $5::time
		  AND f.flight_duration <= $6
		ORDER BY f.departure_time
		LIMIT $7`, originID, destID, day, departAfter, departBefore, maxDurationHours, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRouteFlights(rows)
}

func scanRouteFlights(rows pgx.Rows) ([]domain.RouteFlight, error) {
	result := make([]domain.RouteFlight, 0)
	for rows.Next() {
		var f domain.RouteFlight
		if err := rows.Scan(&f.FlightNumber, &f.Day, &f.DepartureTime, &f.DurationHours,
			&f.OriginPort, &f.DestinationPort, &f.Distance, &f.SpacecraftType); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

var _ ItineraryRepository = (*PGItineraryRepository)(nil)
