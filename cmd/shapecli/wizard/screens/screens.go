// Package screens contains the wizard pages: one form per profile section,
// the review step, and the submission progress/result pages.
package screens

import (
	"fmt"
	"strconv"

	"github.com/sheshape/shapecli/internal/profile"
)

// parseOptionalFloat parses a numeric input, treating blank as "not set".
func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("must be a number")
	}
	return &v, nil
}

// parseOptionalInt parses a whole-number input, treating blank as "not set".
func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("must be a whole number")
	}
	return &v, nil
}

func formatOptionalFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatOptionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// applySelection reconciles a multi-select result against the draft's array
// field, one toggle per changed value.
func applySelection(d profile.Draft, field string, selected []string) profile.Draft {
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}

	// Toggle off values the user deselected.
	current := currentValues(d, field)
	for _, v := range current {
		if !chosen[v] {
			d, _ = d.WithToggled(field, v)
		}
	}

	// Toggle on newly selected values, preserving selection order.
	present := make(map[string]bool, len(current))
	for _, v := range current {
		present[v] = true
	}
	for _, v := range selected {
		if !present[v] {
			d, _ = d.WithToggled(field, v)
		}
	}

	return d
}

func currentValues(d profile.Draft, field string) []string {
	switch field {
	case "secondaryGoals":
		return d.SecondaryGoals
	case "preferredActivityTypes":
		return d.PreferredActivityTypes
	case "preferredWorkoutDays":
		return d.PreferredWorkoutDays
	case "preferredWorkoutTimes":
		return d.PreferredWorkoutTimes
	case "dietaryRestrictions":
		return d.DietaryRestrictions
	case "healthConditions":
		return d.HealthConditions
	case "medications":
		return d.Medications
	}
	return nil
}
