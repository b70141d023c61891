package profile

import "fmt"

// WithToggled returns a new draft snapshot with value toggled in the named
// multi-select field: removed if present, appended otherwise. Values behave
// as a set (no duplicates accumulate) and the insertion order of the
// remaining values is preserved. The receiver is left untouched.
func (d Draft) WithToggled(field, value string) (Draft, error) {
	out := d.Clone()

	target, ok := out.arrayField(field)
	if !ok {
		return d, fmt.Errorf("%s is not a multi-select field", field)
	}

	current := *target
	for i, v := range current {
		if v == value {
			*target = append(current[:i:i], current[i+1:]...)
			return out, nil
		}
	}

	*target = append(current, value)
	return out, nil
}
