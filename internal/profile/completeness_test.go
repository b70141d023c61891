package profile

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteness_EmptyDraftIsZero(t *testing.T) {
	assert.Equal(t, 0, Completeness(Draft{}))
}

func TestCompleteness_RequiredFieldsOnly(t *testing.T) {
	score := Completeness(Draft{FirstName: "Ava", LastName: "Lee"})

	assert.Greater(t, score, 0)
	assert.Less(t, score, 100)
	assert.Equal(t, 100*2/len(FieldNames), score)
}

func TestCompleteness_CountsEveryFieldKind(t *testing.T) {
	height := 170.0
	freq := 3
	email := false

	d := Draft{
		FirstName:           "Ava",
		HeightCm:            &height,
		WorkoutFrequency:    &freq,
		DietaryRestrictions: []string{"Vegan"},
		EmailNotifications:  &email,
	}

	assert.Equal(t, 100*5/len(FieldNames), Completeness(d))
}

func TestCompleteness_EmptyStringAndEmptySliceAreUnfilled(t *testing.T) {
	d := Draft{
		FirstName:        "",
		HealthConditions: []string{},
	}
	assert.Equal(t, 0, Completeness(d))
}

func TestCompleteness_DecreasesWhenValueRemoved(t *testing.T) {
	d := Draft{FirstName: "Ava", LastName: "Lee", Timezone: "Europe/Paris"}
	before := Completeness(d)

	d.Timezone = ""
	assert.Less(t, Completeness(d), before)
}

func TestCompleteness_SchemaFieldCountMatchesRegistry(t *testing.T) {
	// The struct is the schema; the registry is its public name list. They
	// must never drift apart.
	require.Equal(t, reflect.TypeOf(Draft{}).NumField(), len(FieldNames))
}
