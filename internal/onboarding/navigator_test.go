package onboarding

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheshape/shapecli/internal/profile"
)

func TestNavigator_StartsAtFirstSection(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, "personal", n.Section().ID)
	assert.False(t, n.OnLast())
	assert.Empty(t, n.Errors())
}

func TestNavigator_NextBlockedByInvalidDraft(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)

	ok := n.Next(profile.Draft{LastName: "Lee"})

	assert.False(t, ok)
	assert.Equal(t, 0, n.Index(), "blocked transition keeps the section")
	assert.NotEmpty(t, n.Errors()["firstName"])
}

func TestNavigator_NextAdvancesWhenClean(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)
	d := profile.Draft{FirstName: "Ava", LastName: "Lee"}

	require.True(t, n.Next(d))
	assert.Equal(t, 1, n.Index())
	assert.Empty(t, n.Errors())

	require.True(t, n.Next(d))
	require.True(t, n.Next(d))
	assert.True(t, n.OnLast())

	// Clamped at the last index.
	require.True(t, n.Next(d))
	assert.Equal(t, len(Sections)-1, n.Index())
}

func TestNavigator_ErrorsRecomputedEachGate(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)

	require.False(t, n.Next(profile.Draft{}))
	require.True(t, n.Errors().Has("firstName"))

	require.True(t, n.Next(profile.Draft{FirstName: "Ava", LastName: "Lee"}))
	assert.Empty(t, n.Errors(), "stale errors must disappear once fixed")
}

func TestNavigator_PreviousNeverValidates(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)
	require.True(t, n.Next(profile.Draft{FirstName: "Ava", LastName: "Lee"}))

	n.Previous()
	assert.Equal(t, 0, n.Index())

	// Clamped at the first index.
	n.Previous()
	assert.Equal(t, 0, n.Index())
}

func TestNavigator_JumpToClampsAndSkipsValidation(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)

	n.JumpTo(3)
	assert.Equal(t, 3, n.Index())

	n.JumpTo(-2)
	assert.Equal(t, 0, n.Index())

	n.JumpTo(99)
	assert.Equal(t, len(Sections)-1, n.Index())
}

func TestNavigator_SectionScopeIgnoresOtherSections(t *testing.T) {
	n := NewNavigator(ScopeActiveSection)
	n.JumpTo(1) // fitness

	// firstName is missing but belongs to the personal section; a bad height
	// belongs here and must still block.
	height := 10.0
	d := profile.Draft{HeightCm: &height}

	require.False(t, n.Next(d))
	assert.True(t, n.Errors().Has("heightCm"))
	assert.False(t, n.Errors().Has("firstName"))

	height = 170
	require.True(t, n.Next(d), "leaving fitness only gates on fitness fields")
	assert.Equal(t, 2, n.Index())
}

func TestNavigator_WholeDraftScopeGatesOnEverything(t *testing.T) {
	n := NewNavigator(ScopeWholeDraft)
	n.JumpTo(2)

	require.False(t, n.Next(profile.Draft{}), "missing required names block even from other sections")
	assert.True(t, n.Errors().Has("firstName"))
}

func TestSectionFields_CoverSchemaExactlyOnce(t *testing.T) {
	var all []string
	for _, s := range Sections {
		all = append(all, SectionFields(s.ID)...)
	}

	want := append([]string(nil), profile.FieldNames...)
	sort.Strings(all)
	sort.Strings(want)
	assert.Equal(t, want, all)
}
