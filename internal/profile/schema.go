package profile

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps canonical field names to human-readable messages.
// A validation pass always rebuilds the whole map, so entries for fields that
// became valid disappear on the next pass.
type ValidationErrors map[string]string

// Has reports whether the field currently carries an error.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// intlPhonePattern accepts an optional leading +, then 2-15 digits with no
// leading zero after the country code (E.164-ish, matching the backend).
var intlPhonePattern = regexp.MustCompile(`^[+]?[1-9]\d{1,14}$`)

var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json tag names, which are the canonical
	// field names of the setup payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return intlPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering intlphone rule: %v", err))
	}

	return v
}

// Validate applies the field schema to the draft and returns per-field
// messages. It is pure: the same draft always yields the same errors, and an
// empty map means the draft is submittable.
func Validate(d Draft) ValidationErrors {
	out := ValidationErrors{}

	err := schema.Struct(d)
	if err == nil {
		return out
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		// InvalidValidationError cannot happen for a struct value; keep a
		// catch-all so a schema bug never panics the wizard.
		out["firstName"] = "Profile validation failed. Please review your input."
		return out
	}

	for _, fe := range ferrs {
		name := fieldName(fe)
		if _, dup := out[name]; dup {
			continue
		}
		out[name] = messageFor(name, fe)
	}

	return out
}

// FieldError validates the draft and returns the error for a single field,
// or nil if that field is currently clean. Used for on-change validation.
func FieldError(d Draft, field string) error {
	if msg, ok := Validate(d)[field]; ok {
		return errors.New(msg)
	}
	return nil
}

// fieldName normalizes dive errors (e.g. preferredActivityTypes[2]) back to
// the bare field name so ValidationErrors keys stay within the schema.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}

// fieldMessages carries the exact wording the profile form has always shown,
// keyed by field then rule tag.
var fieldMessages = map[string]map[string]string{
	"firstName": {
		"required": "First name is required",
		"max":      "First name must not exceed 50 characters",
	},
	"lastName": {
		"required": "Last name is required",
		"max":      "Last name must not exceed 50 characters",
	},
	"dateOfBirth": {
		"datetime": "Date of birth must use the YYYY-MM-DD format",
	},
	"phoneNumber": {
		"intlphone": "Please provide a valid phone number",
	},
	"heightCm": {
		"min": "Height must be at least 100cm",
		"max": "Height must not exceed 250cm",
	},
	"currentWeightKg": {
		"min": "Weight must be at least 30kg",
		"max": "Weight must not exceed 300kg",
	},
	"targetWeightKg": {
		"min": "Target weight must be at least 30kg",
		"max": "Target weight must not exceed 300kg",
	},
	"workoutFrequency": {
		"min": "Minimum 1 workout per week",
		"max": "Maximum 7 workouts per week",
	},
	"workoutDuration": {
		"min": "Minimum 15 minutes",
		"max": "Maximum 180 minutes",
	},
	"emergencyContactName": {
		"max": "Name must not exceed 100 characters",
	},
	"emergencyContactPhone": {
		"intlphone": "Please provide a valid emergency contact phone",
	},
	"language": {
		"lowercase": "Language must be a valid 2-letter language code",
		"alpha":     "Language must be a valid 2-letter language code",
		"len":       "Language must be a valid 2-letter language code",
	},
}

func messageFor(name string, fe validator.FieldError) string {
	if byTag, ok := fieldMessages[name]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
