package screens

import (
	"context"
	"regexp"

	"wateen/client/internal/forms"
)

var (
	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`[0-9]`)
)

func SignupSchema() forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "fullName", Label: "Full Name", Kind: forms.KindText, Required: true,
			RequiredMessage: "Full name is required"},
		{Name: "email", Label: "Email", Kind: forms.KindEmail, Required: true,
			RequiredMessage: "Email is required"},
		{Name: "password", Label: "Password", Kind: forms.KindPassword, Required: true,
			RequiredMessage: "Password is required", MinLen: 8,
			Patterns: []forms.PatternRule{
				{Expr: hasLower, Message: "Password must contain a lowercase letter"},
				{Expr: hasUpper, Message: "Password must contain an uppercase letter"},
				{Expr: hasDigit, Message: "Password must contain a number"},
			}},
	}}
}

// Signup registers and then logs straight in with the same credentials,
// matching the backend's two-step flow.
func (c *Controllers) Signup(ctx context.Context) Route {
	c.term.Println("== " + c.locale.T("signup.title") + " ==")
	schema := SignupSchema()
	form := forms.New(schema)

	labels := map[string]string{
		"fullName": c.locale.T("signup.fullname"),
		"email":    c.locale.T("login.email"),
		"password": c.locale.T("login.password"),
	}
	for _, field := range schema.Fields {
		label := labels[field.Name]
		c.fill(form, field, func() any { return c.term.Prompt(label) })
	}

	next := RouteSignup
	err := form.Submit(ctx, func(ctx context.Context) error {
		username := stringAt(form, "fullName")
		email := stringAt(form, "email")
		password := stringAt(form, "password")

		if err := c.backend.Register(ctx, username, email, password); err != nil {
			return err
		}
		result, err := c.backend.Login(ctx, email, password)
		if err != nil {
			return err
		}
		if err := c.session.Login(result.Token, result.User); err != nil {
			return err
		}
		next = RouteOnboarding
		return nil
	})
	if err != nil {
		c.showSubmitError(form, err)
		if c.term.PromptBool(c.locale.T("signup.login")) {
			return RouteLogin
		}
		return RouteSignup
	}
	return next
}
