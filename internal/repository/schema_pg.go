package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaTables holds one DDL statement per table, in dependency order.
// EnsureSchema probes the catalog before each CREATE so a second run is a
// no-op.
var schemaTables = []struct {
	name string
	ddl  string
}{
	{"planets", `
		CREATE TABLE planets (
			planet_name VARCHAR(50) PRIMARY KEY,
			size        BIGINT NOT NULL CHECK (size > 0),
			population  BIGINT NOT NULL CHECK (population >= 0)
		)`},
	{"spacestations", `
		CREATE TABLE spacestations (
			station_name      VARCHAR(50) PRIMARY KEY,
			planet_associated VARCHAR(50) REFERENCES planets(planet_name),
			capacity_limit    INT NOT NULL CHECK (capacity_limit > 0)
		)`},
	{"spaceports", `
		CREATE TABLE spaceports (
			spaceport_id BIGSERIAL PRIMARY KEY,
			port_name    VARCHAR(100) NOT NULL,
			planet_name  VARCHAR(50) REFERENCES planets(planet_name),
			station_name VARCHAR(50) REFERENCES spacestations(station_name),
			capacity     INT NOT NULL,
			fee          INT NOT NULL,
			UNIQUE (station_name),
			UNIQUE (planet_name, port_name),
			CONSTRAINT chk_spaceport_capacity CHECK (capacity > 0),
			CONSTRAINT chk_spaceport_fee CHECK (fee >= 0),
			CONSTRAINT chk_spaceport_owner CHECK (
				(planet_name IS NULL) <> (station_name IS NULL)
			)
		)`},
	{"spacecrafts", `
		CREATE TABLE spacecrafts (
			type_name VARCHAR(100) PRIMARY KEY,
			capacity  INT NOT NULL,
			max_range INT NOT NULL,
			CONSTRAINT chk_sc_capacity CHECK (capacity > 0),
			CONSTRAINT chk_sc_range CHECK (max_range > 0)
		)`},
	{"routes", `
		CREATE TABLE routes (
			route_id  BIGSERIAL PRIMARY KEY,
			origin_id BIGINT NOT NULL REFERENCES spaceports(spaceport_id),
			dest_id   BIGINT NOT NULL REFERENCES spaceports(spaceport_id),
			dist      INT NOT NULL,
			CONSTRAINT chk_route_distance CHECK (dist > 0),
			CONSTRAINT chk_route_endpoints CHECK (origin_id <> dest_id)
		)`},
	{"flights", `
		CREATE TABLE flights (
			flight_number   VARCHAR(20) PRIMARY KEY,
			route_id        BIGINT NOT NULL REFERENCES routes(route_id),
			spacecraft_type VARCHAR(100) NOT NULL REFERENCES spacecrafts(type_name),
			departure_time  TIME NOT NULL,
			flight_duration NUMERIC(4,2) NOT NULL,
			CONSTRAINT chk_flight_duration CHECK (flight_duration > 0)
		)`},
	{"flight_schedule", `
		CREATE TABLE flight_schedule (
			flight_number VARCHAR(20) NOT NULL REFERENCES flights(flight_number),
			day_of_week   VARCHAR(9) NOT NULL CHECK (day_of_week IN (
				'Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'
			)),
			PRIMARY KEY (flight_number, day_of_week)
		)`},
}

// EnsureSchema creates every missing table. Existing tables are left
// untouched, so the call is safe to repeat on startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, t := range schemaTables {
		var reg *string
		if err := db.QueryRow(ctx, `SELECT to_regclass($1)`, t.name).Scan(&reg); err != nil {
			return fmt.Errorf("probe table %s: %w", t.name, err)
		}
		if reg != nil {
			continue
		}
		if _, err := db.Exec(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}
