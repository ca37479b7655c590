package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	// exact case only
	_, err = ParseWeekday("wednesday")
	assert.Error(t, err)

	_, err = ParseWeekday("Wed")
	assert.Error(t, err)
}

func TestParseWeekdays_OneBadTokenFailsAll(t *testing.T) {
	days, err := ParseWeekdays([]string{"Monday", "Wednesday"})
	require.NoError(t, err)
	assert.Equal(t, []Weekday{Monday, Wednesday}, days)

	_, err = ParseWeekdays([]string{"Monday", "Funday", "Wednesday"})
	assert.Error(t, err)
}

func TestWeekdayIndex_CanonicalOrder(t *testing.T) {
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 4, Friday.Index())
	assert.Equal(t, 6, Sunday.Index())
	// Friday sorts before Monday lexically; canonical order says otherwise.
	assert.Greater(t, Friday.Index(), Monday.Index())
}

func TestWeekdayRange(t *testing.T) {
	assert.Equal(t, []Weekday{Monday, Tuesday, Wednesday}, WeekdayRange(Monday, Wednesday))
	assert.Equal(t, []Weekday{Saturday, Sunday}, WeekdayRange(Saturday, Sunday))
	assert.Equal(t, []Weekday{Thursday}, WeekdayRange(Thursday, Thursday))
}

func TestWeekdayRange_ReversedBoundsNormalize(t *testing.T) {
	got := WeekdayRange(Friday, Monday)
	assert.Equal(t, []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}, got)
}

func TestWeekdayStrings(t *testing.T) {
	assert.Equal(t, []string{"Monday", "Sunday"}, WeekdayStrings([]Weekday{Monday, Sunday}))
}
