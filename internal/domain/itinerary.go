package domain

// ConnectedPort is one port directly reachable from another via a route in
// either direction.
type ConnectedPort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ScheduledDeparture is one row of the departure/arrival range queries.
type ScheduledDeparture struct {
	FlightNumber  string  `json:"flight_number"`
	Day           Weekday `json:"day"`
	DepartureTime string  `json:"departure_time"`
	DurationHours float64 `json:"duration_hours"`
}

// RouteFlight is one row of the point-to-point and flight-finder queries.
type RouteFlight struct {
	FlightNumber    string  `json:"flight_number"`
	Day             Weekday `json:"day"`
	DepartureTime   string  `json:"departure_time"`
	DurationHours   float64 `json:"duration_hours"`
	OriginPort      string  `json:"origin_port"`
	DestinationPort string  `json:"destination_port"`
	Distance        int     `json:"distance"`
	SpacecraftType  string  `json:"spacecraft_type"`
}
