package screens

import (
	"context"

	"wateen/client/internal/forms"
)

func LoginSchema() forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "email", Label: "Email", Kind: forms.KindEmail, Required: true,
			RequiredMessage: "Email is required"},
		{Name: "password", Label: "Password", Kind: forms.KindPassword, Required: true,
			RequiredMessage: "Password is required", MinLen: 6},
	}}
}

func (c *Controllers) Login(ctx context.Context) Route {
	c.term.Println("== " + c.locale.T("login.title") + " ==")
	schema := LoginSchema()
	form := forms.New(schema)

	for _, field := range schema.Fields {
		label := c.locale.T("login." + field.Name)
		c.fill(form, field, func() any { return c.term.Prompt(label) })
	}

	next := RouteLogin
	err := form.Submit(ctx, func(ctx context.Context) error {
		result, err := c.backend.Login(ctx,
			stringAt(form, "email"), stringAt(form, "password"))
		if err != nil {
			return err
		}
		if err := c.session.Login(result.Token, result.User); err != nil {
			return err
		}
		next = RouteDashboard
		return nil
	})
	if err != nil {
		c.showSubmitError(form, err)
		if c.term.PromptBool(c.locale.T("login.signup")) {
			return RouteSignup
		}
		return RouteLogin
	}
	return next
}

func stringAt(form *forms.Form, name string) string {
	s, _ := form.Value(name).(string)
	return s
}
