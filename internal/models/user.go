package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type User struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	DOB               string `json:"dob,omitempty"`
	ChronicConditions string `json:"chronic_conditions,omitempty"`
	Goals             string `json:"goals,omitempty"`
}

// OnboardingProfile is the body of PUT /users/profile. The backend stores
// condition and goal lists as free text, so they travel as joined strings.
type OnboardingProfile struct {
	DOB               string   `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender            Gender   `json:"gender" validate:"required,oneof=male female other"`
	ChronicConditions []string `json:"chronic_conditions"`
	Goals             []string `json:"goals"`
}
