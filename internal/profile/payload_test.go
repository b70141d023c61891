package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_DefaultsForUntouchedPreferences(t *testing.T) {
	req := Compose(Draft{FirstName: "Ava", LastName: "Lee"})

	assert.Equal(t, "en", req.Language)
	assert.True(t, req.EmailNotifications)
	assert.True(t, req.PushNotifications)
	assert.Equal(t, "FRIENDS", req.PrivacyLevel)
}

func TestCompose_ExplicitValuesWinOverDefaults(t *testing.T) {
	off := false
	d := Draft{
		FirstName:          "Ava",
		LastName:           "Lee",
		Language:           "fr",
		PrivacyLevel:       "PRIVATE",
		EmailNotifications: &off,
	}

	req := Compose(d)
	assert.Equal(t, "fr", req.Language)
	assert.Equal(t, "PRIVATE", req.PrivacyLevel)
	assert.False(t, req.EmailNotifications)
	assert.True(t, req.PushNotifications, "untouched sibling keeps its default")
}

func TestCompose_UntouchedOptionalsMarshalAbsent(t *testing.T) {
	req := Compose(Draft{FirstName: "Ava", LastName: "Lee"})

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	// Exactly the two names plus the four defaulted preference fields.
	assert.Len(t, fields, 6)
	for _, key := range []string{"firstName", "lastName", "language", "emailNotifications", "pushNotifications", "privacyLevel"} {
		assert.Contains(t, fields, key)
	}
	for _, key := range []string{"dateOfBirth", "heightCm", "secondaryGoals", "timezone", "medications"} {
		assert.NotContains(t, fields, key, "%s was never touched and must be absent", key)
	}
}

func TestCompose_CopiesFilledFields(t *testing.T) {
	height := 172.0
	dur := 45
	d := Draft{
		FirstName:              "Ava",
		LastName:               "Lee",
		DateOfBirth:            "1991-07-04",
		Gender:                 "FEMALE",
		HeightCm:               &height,
		WorkoutDuration:        &dur,
		PreferredActivityTypes: []string{"YOGA", "PILATES"},
		Timezone:               "America/New_York",
	}

	req := Compose(d)
	require.NotNil(t, req.DateOfBirth)
	assert.Equal(t, "1991-07-04", *req.DateOfBirth)
	require.NotNil(t, req.Gender)
	assert.Equal(t, "FEMALE", *req.Gender)
	require.NotNil(t, req.HeightCm)
	assert.Equal(t, 172.0, *req.HeightCm)
	require.NotNil(t, req.WorkoutDuration)
	assert.Equal(t, 45, *req.WorkoutDuration)
	assert.Equal(t, []string{"YOGA", "PILATES"}, req.PreferredActivityTypes)
	require.NotNil(t, req.Timezone)
	assert.Equal(t, "America/New_York", *req.Timezone)
}
