package domain

// Planet is a leaf entity keyed by its unique name.
type Planet struct {
	Name       string
	Size       int64
	Population int64
}

// SpaceStation may orbit a planet or float free; Planet is nil for the
// latter.
type SpaceStation struct {
	Name     string
	Planet   *string
	Capacity int
}

// Spaceport is owned by exactly one planet or one station, never both.
// A station-owned port carries the station's name.
type Spaceport struct {
	ID       int64
	Name     string
	Planet   *string
	Station  *string
	Capacity int
	Fee      int
}

// SpacecraftType describes a craft class. MaxRange is the longest route
// distance the craft can fly.
type SpacecraftType struct {
	Name     string
	Capacity int
	MaxRange int
}

// Route is a directed, distance-bearing link between two spaceports.
type Route struct {
	ID       int64
	OriginID int64
	DestID   int64
	Distance int
}

// Flight is a scheduled service on one route, recurring on a set of
// weekdays. DepartureTime is a normalized HH:MM:SS clock time and
// DurationHours is fractional to two decimals.
type Flight struct {
	Number         string
	RouteID        int64
	SpacecraftType string
	DepartureTime  string
	DurationHours  float64
	Days           []Weekday
}
