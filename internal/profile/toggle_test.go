package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithToggled_AddsWhenAbsent(t *testing.T) {
	d := Draft{}

	out, err := d.WithToggled("dietaryRestrictions", "Vegan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan"}, out.DietaryRestrictions)
	assert.Empty(t, d.DietaryRestrictions, "receiver must stay untouched")
}

func TestWithToggled_RemovesWhenPresent(t *testing.T) {
	d := Draft{PreferredWorkoutDays: []string{"Monday", "Wednesday", "Friday"}}

	out, err := d.WithToggled("preferredWorkoutDays", "Wednesday")
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Friday"}, out.PreferredWorkoutDays)
}

func TestWithToggled_IsItsOwnInverse(t *testing.T) {
	d := Draft{HealthConditions: []string{"Asthma", "Arthritis"}}

	once, err := d.WithToggled("healthConditions", "Asthma")
	require.NoError(t, err)
	twice, err := once.WithToggled("healthConditions", "Asthma")
	require.NoError(t, err)

	// Toggling twice restores membership; insertion order moves the value to
	// the end, which carries no meaning downstream.
	assert.ElementsMatch(t, d.HealthConditions, twice.HealthConditions)
	assert.Equal(t, []string{"Arthritis"}, once.HealthConditions)
}

func TestWithToggled_NoDuplicatesAccumulate(t *testing.T) {
	d := Draft{}
	out, err := d.WithToggled("preferredActivityTypes", "YOGA")
	require.NoError(t, err)
	out, err = out.WithToggled("preferredActivityTypes", "HIIT")
	require.NoError(t, err)
	out, err = out.WithToggled("preferredActivityTypes", "YOGA")
	require.NoError(t, err)
	out, err = out.WithToggled("preferredActivityTypes", "YOGA")
	require.NoError(t, err)

	assert.Equal(t, []string{"HIIT", "YOGA"}, out.PreferredActivityTypes)
}

func TestWithToggled_RejectsScalarFields(t *testing.T) {
	d := Draft{FirstName: "Ava"}
	out, err := d.WithToggled("firstName", "x")
	require.Error(t, err)
	assert.Equal(t, d, out, "failed toggle returns the original draft")
}
