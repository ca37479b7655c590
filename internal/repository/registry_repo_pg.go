package repository

import (
	"context"
	"errors"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistryRepository exposes the read probes the validator needs and starts
// staged write transactions. Probes never mutate.
type RegistryRepository interface {
	Begin(ctx context.Context) (RegistryTx, error)
	PlanetExists(ctx context.Context, name string) (bool, error)
	StationExists(ctx context.Context, name string) (bool, error)
	SpacecraftExists(ctx context.Context, name string) (bool, error)
	FlightExists(ctx context.Context, number string) (bool, error)
	PortPlanet(ctx context.Context, id int64) (planet *string, found bool, err error)
	RouteDistance(ctx context.Context, id int64) (distance int, found bool, err error)
	SpacecraftRange(ctx context.Context, name string) (maxRange int, found bool, err error)
}

// RegistryTx is one staged write. Inserts are invisible to other readers
// until Commit; Rollback discards everything staged.
type RegistryTx interface {
	InsertPlanet(ctx context.Context, p domain.Planet) error
	InsertStation(ctx context.Context, s domain.SpaceStation) error
	InsertSpaceport(ctx context.Context, p domain.Spaceport) (int64, error)
	InsertSpacecraft(ctx context.Context, c domain.SpacecraftType) error
	InsertRoute(ctx context.Context, r domain.Route) (int64, error)
	InsertFlight(ctx context.Context, f domain.Flight) error
	InsertScheduleDay(ctx context.Context, flightNumber string, day domain.Weekday) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PGRegistryRepository struct {
	db *pgxpool.Pool
}

func NewRegistryRepository(db *pgxpool.Pool) *PGRegistryRepository {
	return &PGRegistryRepository{db: db}
}

func (r *PGRegistryRepository) Begin(ctx context.Context) (RegistryTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	return &pgRegistryTx{tx: tx}, nil
}

func (r *PGRegistryRepository) PlanetExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM planets WHERE planet_name=$1)`, name)
}

func (r *PGRegistryRepository) StationExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM spacestations WHERE station_name=$1)`, name)
}

func (r *PGRegistryRepository) SpacecraftExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM spacecrafts WHERE type_name=$1)`, name)
}

func (r *PGRegistryRepository) FlightExists(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM flights WHERE flight_number=$1)`, number)
}

// PortPlanet resolves the owning planet of a spaceport. Station-owned ports
// report a nil planet.
func (r *PGRegistryRepository) PortPlanet(ctx context.Context, id int64) (*string, bool, error) {
	var planet *string
	err := r.db.QueryRow(ctx, `SELECT planet_name FROM spaceports WHERE spaceport_id=$1`, id).Scan(&planet)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return planet, true, nil
}

func (r *PGRegistryRepository) RouteDistance(ctx context.Context, id int64) (int, bool, error) {
	var dist int
	err := r.db.QueryRow(ctx, `SELECT dist FROM routes WHERE route_id=$1`, id).Scan(&dist)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return dist, true, nil
}

func (r *PGRegistryRepository) SpacecraftRange(ctx context.Context, name string) (int, bool, error) {
	var maxRange int
	err := r.db.QueryRow(ctx, `SELECT max_range FROM spacecrafts WHERE type_name=$1`, name).Scan(&maxRange)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return maxRange, true, nil
}

func (r *PGRegistryRepository) exists(ctx context.Context, query, key string) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, query, key).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

type pgRegistryTx struct {
	tx pgx.Tx
}

func (t *pgRegistryTx) InsertPlanet(ctx context.Context, p domain.Planet) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO planets (planet_name, size, population) VALUES ($1, $2, $3)`,
		p.Name, p.Size, p.Population)
	return err
}

func (t *pgRegistryTx) InsertStation(ctx context.Context, s domain.SpaceStation) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO spacestations (station_name, planet_associated, capacity_limit) VALUES ($1, $2, $3)`,
		s.Name, s.Planet, s.Capacity)
	return err
}

func (t *pgRegistryTx) InsertSpaceport(ctx context.Context, p domain.Spaceport) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `INSERT INTO spaceports (port_name, planet_name, station_name, capacity, fee)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING spaceport_id`, p.Name, p.Planet, p.Station, p.Capacity, p.Fee).Scan(&id)
	return id, err
}

func (t *pgRegistryTx) InsertSpacecraft(ctx context.Context, c domain.SpacecraftType) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO spacecrafts (type_name, capacity, max_range) VALUES ($1, $2, $3)`,
		c.Name, c.Capacity, c.MaxRange)
	return err
}

func (t *pgRegistryTx) InsertRoute(ctx context.Context, r domain.Route) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `INSERT INTO routes (origin_id, dest_id, dist) VALUES ($1, $2, $3) RETURNING route_id`,
		r.OriginID, r.DestID, r.Distance).Scan(&id)
	return id, err
}

func (t *pgRegistryTx) InsertFlight(ctx context.Context, f domain.Flight) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO flights (flight_number, route_id, spacecraft_type, departure_time, flight_duration)
		VALUES ($1, $2, $3, $4, $5)`, f.Number, f.RouteID, f.SpacecraftType, f.DepartureTime, f.DurationHours)
	return err
}

func (t *pgRegistryTx) InsertScheduleDay(ctx context.Context, flightNumber string, day domain.Weekday) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO flight_schedule (flight_number, day_of_week) VALUES ($1, $2)`,
		flightNumber, string(day))
	return err
}

func (t *pgRegistryTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *pgRegistryTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

var _ RegistryRepository = (*PGRegistryRepository)(nil)
var _ RegistryTx = (*pgRegistryTx)(nil)
