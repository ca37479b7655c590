package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaTables_DependencyOrder(t *testing.T) {
	// tables must be created after the tables they reference
	position := map[string]int{}
	for i, tbl := range schemaTables {
		position[tbl.name] = i
	}

	assert.Less(t, position["planets"], position["spacestations"])
	assert.Less(t, position["spacestations"], position["spaceports"])
	assert.Less(t, position["spaceports"], position["routes"])
	assert.Less(t, position["routes"], position["flights"])
	assert.Less(t, position["spacecrafts"], position["flights"])
	assert.Less(t, position["flights"], position["flight_schedule"])
}

func TestSchemaTables_DDLMatchesName(t *testing.T) {
	seen := map[string]bool{}
	for _, tbl := range schemaTables {
		assert.False(t, seen[tbl.name], "duplicate table %s", tbl.name)
		seen[tbl.name] = true
		assert.Contains(t, tbl.ddl, "CREATE TABLE "+tbl.name)
	}
}

func TestSchemaTables_WeekdayCheckIsCanonical(t *testing.T) {
	var schedule string
	for _, tbl := range schemaTables {
		if tbl.name == "flight_schedule" {
			schedule = tbl.ddl
		}
	}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		assert.True(t, strings.Contains(schedule, "'"+day+"'"), "missing %s in day_of_week check", day)
	}
}
