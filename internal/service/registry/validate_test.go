package registry

import (
	"testing"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSpacecraft(t *testing.T) {
	assert.NoError(t, validateSpacecraft(domain.SpacecraftType{Name: "Falcon", Capacity: 120, MaxRange: 900}))
	assert.Error(t, validateSpacecraft(domain.SpacecraftType{Name: "", Capacity: 120, MaxRange: 900}))
	assert.Error(t, validateSpacecraft(domain.SpacecraftType{Name: "Falcon", Capacity: 0, MaxRange: 900}))
	assert.Error(t, validateSpacecraft(domain.SpacecraftType{Name: "Falcon", Capacity: 120, MaxRange: 0}))
}

func TestValidateStation_EmptyPlanetReference(t *testing.T) {
	empty := "  "
	err := validateStation(domain.SpaceStation{Name: "Relay", Planet: &empty, Capacity: 5})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "planet_associated", vErr.Field)
}

func TestValidateFlight_NormalizesTimeAndDays(t *testing.T) {
	f, err := validateFlight(FlightInput{
		Number:         "SP100",
		RouteID:        1,
		SpacecraftType: "Falcon",
		DepartureTime:  "08:00",
		DurationHours:  2.5,
		Days:           []string{"Monday", "Wednesday"},
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", f.DepartureTime)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Wednesday}, f.Days)
}

func TestValidateFlight_Rejections(t *testing.T) {
	base := FlightInput{
		Number:         "SP100",
		RouteID:        1,
		SpacecraftType: "Falcon",
		DepartureTime:  "08:00",
		DurationHours:  2.5,
		Days:           []string{"Monday"},
	}

	in := base
	in.Number = "   "
	_, err := validateFlight(in)
	assert.Error(t, err)

	in = base
	in.DurationHours = 0
	_, err = validateFlight(in)
	assert.Error(t, err)

	in = base
	in.DepartureTime = "8 o'clock"
	_, err = validateFlight(in)
	assert.Error(t, err)

	in = base
	in.Days = nil
	_, err = validateFlight(in)
	assert.Error(t, err)
}
