package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("08:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", got)

	got, err = ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", got)

	for _, bad := range []string{"", "8:00", "24:00", "12:60", "12:00:61", "noon", "12-30"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestAddHoursClamped(t *testing.T) {
	assert.Equal(t, "11:15:00", AddHoursClamped("08:15:00", 3))
	assert.Equal(t, "23:59:59", AddHoursClamped("22:30:00", 3))
	assert.Equal(t, "23:59:59", AddHoursClamped("21:00:00", 3))
}
