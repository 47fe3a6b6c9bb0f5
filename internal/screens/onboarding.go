package screens

import (
	"context"

	"wateen/client/internal/forms"
	"wateen/client/internal/models"
)

var ChronicConditionOptions = []string{
	"Diabetes", "Hypertension", "Asthma", "Heart Disease", "Other",
}

var HealthGoalOptions = []string{
	"No missed doses", "Log blood pressure daily",
	"Maintain healthy diet", "Exercise regularly",
}

func OnboardingSchema() forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "dob", Label: "Date of Birth", Kind: forms.KindDate, Required: true,
			RequiredMessage: "Date of Birth is required", PastOnly: true},
		{Name: "gender", Label: "Gender", Kind: forms.KindSelect, Required: true,
			RequiredMessage: "Gender is required",
			Options:         []string{"male", "female", "other"}},
		{Name: "chronicConditions", Label: "Chronic Conditions", Kind: forms.KindMulti,
			Options: ChronicConditionOptions},
		{Name: "healthGoals", Label: "Health Goals", Kind: forms.KindMulti,
			Options: HealthGoalOptions},
	}}
}

func (c *Controllers) Onboarding(ctx context.Context) Route {
	c.term.Println("== " + c.locale.T("onboarding.title") + " ==")
	schema := OnboardingSchema()
	form := forms.New(schema)

	for _, field := range schema.Fields {
		field := field
		switch field.Kind {
		case forms.KindSelect:
			c.fill(form, field, func() any {
				return c.term.PromptChoice(c.locale.T("onboarding.gender"), field.Options)
			})
		case forms.KindMulti:
			label := c.locale.T("onboarding.cond")
			if field.Name == "healthGoals" {
				label = c.locale.T("onboarding.goals")
			}
			c.fill(form, field, func() any { return c.term.PromptMulti(label, field.Options) })
		default:
			c.fill(form, field, func() any {
				return c.term.Prompt(c.locale.T("onboarding.dob"))
			})
		}
	}

	err := form.Submit(ctx, func(ctx context.Context) error {
		return c.backend.UpdateProfile(ctx, models.OnboardingProfile{
			DOB:               stringAt(form, "dob"),
			Gender:            models.Gender(stringAt(form, "gender")),
			ChronicConditions: sliceAt(form, "chronicConditions"),
			Goals:             sliceAt(form, "healthGoals"),
		})
	})
	if err != nil {
		c.showSubmitError(form, err)
		return RouteOnboarding
	}
	return RouteDashboard
}

func sliceAt(form *forms.Form, name string) []string {
	s, _ := form.Value(name).([]string)
	return s
}
