package screens

import "context"

// Splash restores any prior session and routes accordingly. The language
// toggle is offered here the same way the entry screen of the app does.
func (c *Controllers) Splash(ctx context.Context) Route {
	c.term.Println(c.locale.T("app.title"))
	c.term.Println(c.locale.T("splash.loading"))

	restored := c.session.Restore()

	if c.term.PromptBool(c.locale.T("splash.toggle")) {
		c.locale.Toggle()
	}

	if restored {
		return RouteDashboard
	}
	return RouteLogin
}
