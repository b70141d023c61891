package profile

import "reflect"

// Completeness returns the percentage of schema fields currently filled in,
// in [0,100]. A field is filled when it is neither nil, an empty string, nor
// an empty slice. Derived state: always recomputed from the draft, never
// stored alongside it.
func Completeness(d Draft) int {
	v := reflect.ValueOf(d)
	total := v.NumField()
	if total == 0 {
		return 0
	}

	filled := 0
	for i := 0; i < total; i++ {
		if fieldFilled(v.Field(i)) {
			filled++
		}
	}

	return 100 * filled / total
}

func fieldFilled(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() != ""
	case reflect.Slice:
		return v.Len() > 0
	case reflect.Pointer:
		return !v.IsNil()
	default:
		return !v.IsZero()
	}
}
