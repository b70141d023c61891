package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"first_name": {
		Title:       "FIRST NAME",
		Description: "Your given name.",
		Details:     "Required. Maximum 50 characters. Shown to coaches and on your public profile.",
	},
	"last_name": {
		Title:       "LAST NAME",
		Description: "Your family name.",
		Details:     "Required. Maximum 50 characters.",
	},
	"date_of_birth": {
		Title:       "DATE OF BIRTH",
		Description: "Used to tailor workout intensity recommendations.",
		Details:     "Format: YYYY-MM-DD. Optional; leave blank to skip.",
	},
	"gender": {
		Title:       "GENDER",
		Description: "How you identify.",
		Details:     "Optional. Used only for program recommendations.",
	},
	"phone_number": {
		Title:       "PHONE NUMBER",
		Description: "Contact number in international format.",
		Details: `Format: optional +, then digits (e.g. +33612345678)
No spaces, dashes or leading zero. Up to 15 digits.`,
	},
	"profile_image": {
		Title:       "PROFILE PHOTO",
		Description: "Path to an image file on disk.",
		Details: `PNG, JPEG, GIF, WebP, BMP or TIFF, up to 5MB.
Uploaded when you submit. Leave blank to skip.`,
	},
	"height_cm": {
		Title:       "HEIGHT",
		Description: "Your height in centimeters.",
		Details:     "Between 100 and 250. Optional.",
	},
	"current_weight_kg": {
		Title:       "CURRENT WEIGHT",
		Description: "Your current weight in kilograms.",
		Details:     "Between 30 and 300. Optional.",
	},
	"target_weight_kg": {
		Title:       "TARGET WEIGHT",
		Description: "The weight you are working towards, in kilograms.",
		Details:     "Between 30 and 300. Optional.",
	},
	"fitness_level": {
		Title:       "FITNESS LEVEL",
		Description: "Your current training experience.",
		Details: `BEGINNER - new to regular exercise
INTERMEDIATE - training for 6+ months
ADVANCED - training for 2+ years
EXPERT - competitive or coaching level`,
	},
	"primary_goal": {
		Title:       "PRIMARY GOAL",
		Description: "The main outcome you want from your training.",
		Details:     "Programs and nutrition plans are matched against this goal first.",
	},
	"secondary_goals": {
		Title:       "SECONDARY GOALS",
		Description: "Additional outcomes you care about.",
		Details:     "Select any number. Space toggles a value, Enter confirms.",
	},
	"preferred_activity_types": {
		Title:       "PREFERRED ACTIVITIES",
		Description: "The kinds of workouts you enjoy.",
		Details:     "Select any number. Your weekly plan favors these.",
	},
	"workout_frequency": {
		Title:       "WORKOUT FREQUENCY",
		Description: "How many days per week you plan to train.",
		Details:     "Between 1 and 7. Optional.",
	},
	"workout_duration": {
		Title:       "WORKOUT DURATION",
		Description: "Typical length of one session, in minutes.",
		Details:     "Between 15 and 180. Optional.",
	},
	"preferred_workout_days": {
		Title:       "WORKOUT DAYS",
		Description: "Days of the week you prefer to train.",
		Details:     "Select any number. Space toggles a value.",
	},
	"preferred_workout_times": {
		Title:       "WORKOUT TIMES",
		Description: "Times of day you prefer to train.",
		Details:     "Select any number. Space toggles a value.",
	},
	"dietary_restrictions": {
		Title:       "DIETARY RESTRICTIONS",
		Description: "Diets or restrictions nutrition plans must respect.",
		Details:     "Select any number. Space toggles a value.",
	},
	"health_conditions": {
		Title:       "HEALTH CONDITIONS",
		Description: "Conditions your coach should know about.",
		Details:     "Select any number. Shared only with your assigned coach.",
	},
	"medications": {
		Title:       "MEDICATIONS",
		Description: "Medications that may affect training.",
		Details:     "Select any number. Shared only with your assigned coach.",
	},
	"emergency_contact_name": {
		Title:       "EMERGENCY CONTACT",
		Description: "Who to contact in an emergency.",
		Details:     "Optional. Maximum 100 characters.",
	},
	"emergency_contact_phone": {
		Title:       "EMERGENCY CONTACT PHONE",
		Description: "Their number in international format.",
		Details:     "Same format as your own phone number.",
	},
	"timezone": {
		Title:       "TIMEZONE",
		Description: "IANA timezone for scheduling reminders.",
		Details:     "Example: Europe/Paris. Optional.",
	},
	"language": {
		Title:       "LANGUAGE",
		Description: "Two-letter interface language code.",
		Details:     "Lowercase ISO 639-1 code (en, fr, es...). Defaults to en.",
	},
	"email_notifications": {
		Title:       "EMAIL NOTIFICATIONS",
		Description: "Receive program updates and reminders by email.",
		Details:     "Defaults to on.",
	},
	"push_notifications": {
		Title:       "PUSH NOTIFICATIONS",
		Description: "Receive reminders on your devices.",
		Details:     "Defaults to on.",
	},
	"privacy_level": {
		Title:       "PRIVACY LEVEL",
		Description: "Who can see your profile and activity.",
		Details: `PUBLIC - anyone on the platform
FRIENDS - only people you follow back (default)
PRIVATE - only you and your coach`,
	},
	"review_action": {
		Title:       "REVIEW",
		Description: "Check your answers before submitting.",
		Details:     "You can jump back to any section; nothing is sent until you submit.",
	},
}
