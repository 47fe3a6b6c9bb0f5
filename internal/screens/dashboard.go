package screens

import (
	"context"
	"strconv"
	"time"

	"wateen/client/internal/forms"
	"wateen/client/internal/models"
)

// Dashboard is the authenticated home: medication list, refill banner,
// side-effect logging, adherence responses and the locale toggle.
func (c *Controllers) Dashboard(ctx context.Context) Route {
	c.term.Println("== " + c.locale.T("dash.title") + " ==")
	if user := c.session.User(); user != nil {
		c.term.Println(c.locale.T("dash.welcome") + ", " + user.Username)
	}
	if c.locale.IsRTL() {
		c.term.Println("[dir:rtl]")
	}

	if c.push != nil {
		c.pushed.Do(func() { c.push.Subscribe(ctx) })
	}

	meds, err := c.backend.ListMedications(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("list medications failed")
		c.term.Println("  ! " + c.locale.T("error.generic"))
	}

	c.term.Println(c.locale.T("dash.meds") + ":")
	if len(meds) == 0 {
		c.term.Println("  " + c.locale.T("dash.nomeds"))
	}
	for _, med := range meds {
		c.term.Printf("  - [%d] %s (%s)\n", med.ID, med.Name, med.Dose)
	}

	if insights, err := c.backend.Insights(ctx); err == nil {
		c.term.Printf("Adherence: %.0f%%, streak %d\n",
			insights.AdherenceScore, insights.CurrentStreak)
	} else {
		c.log.Debug().Err(err).Msg("insights fetch failed")
	}

	c.refillBanner(ctx)

	return c.dashboardMenu(ctx, meds)
}

func (c *Controllers) refillBanner(ctx context.Context) {
	if c.refills == nil {
		return
	}
	for _, alert := range c.refills.Alerts() {
		c.term.Printf(c.locale.T("dash.refill")+"\n", alert.MedicationName, alert.DaysLeft)
		if c.term.PromptBool(c.locale.T("dash.refilled")) {
			err := c.backend.ConfirmRefill(ctx, models.RefillConfirmation{
				MedicationID: alert.MedicationID,
				Date:         time.Now().Format("2006-01-02"),
			})
			if err != nil {
				c.term.Println("  ! " + err.Error())
				continue
			}
			c.refills.Dismiss(alert.MedicationID)
		} else if c.term.PromptBool(c.locale.T("dash.snooze")) {
			c.refills.Snooze(alert.MedicationID)
			c.term.Println(c.locale.T("dash.snoozed"))
		}
	}
}

func (c *Controllers) dashboardMenu(ctx context.Context, meds []models.Medication) Route {
	for {
		choice := c.term.PromptChoice("Menu", []string{
			c.locale.T("dash.addmed"),
			c.locale.T("dash.sideeffect"),
			"Respond to reminder",
			c.locale.T("dash.toggle"),
			c.locale.T("dash.logout"),
			"Quit",
		})
		switch choice {
		case c.locale.T("dash.addmed"):
			return RouteAddMedication
		case c.locale.T("dash.sideeffect"):
			if med, ok := c.pickMedication(meds); ok {
				c.sideEffectModal(ctx, med)
			}
		case "Respond to reminder":
			if med, ok := c.pickMedication(meds); ok {
				c.respondToReminder(ctx, med)
			}
		case c.locale.T("dash.toggle"):
			c.locale.Toggle()
			return RouteDashboard
		case c.locale.T("dash.logout"):
			c.session.Logout()
			return RouteLogin
		default:
			return RouteQuit
		}
		if c.term.EOF() {
			return RouteQuit
		}
	}
}

func (c *Controllers) pickMedication(meds []models.Medication) (models.Medication, bool) {
	if len(meds) == 0 {
		c.term.Println(c.locale.T("dash.nomeds"))
		return models.Medication{}, false
	}
	answer := c.term.Prompt("Medication ID")
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return models.Medication{}, false
	}
	for _, med := range meds {
		if med.ID == id {
			return med, true
		}
	}
	return models.Medication{}, false
}

func SideEffectSchema() forms.Schema {
	one := 1
	ten := 10
	return forms.Schema{Fields: []forms.Field{
		{Name: "symptom", Label: "Symptom", Kind: forms.KindText, Required: true,
			RequiredMessage: "Symptom is required"},
		{Name: "severity", Label: "Severity", Kind: forms.KindNumber, Required: true,
			RequiredMessage: "Severity is required", Min: &one, Max: &ten},
		{Name: "notes", Label: "Notes", Kind: forms.KindText},
		{Name: "image", Label: "Image", Kind: forms.KindText},
	}}
}

func (c *Controllers) sideEffectModal(ctx context.Context, med models.Medication) {
	c.term.Printf(c.locale.T("sideeffect.title")+"\n", med.Name)
	schema := SideEffectSchema()
	form := forms.New(schema)

	keys := map[string]string{
		"symptom":  "sideeffect.symptom",
		"severity": "sideeffect.severity",
		"notes":    "sideeffect.notes",
		"image":    "sideeffect.image",
	}
	for _, field := range schema.Fields {
		label := c.locale.T(keys[field.Name])
		c.fill(form, field, func() any { return c.term.Prompt(label) })
	}

	err := form.Submit(ctx, func(ctx context.Context) error {
		return c.backend.LogSideEffect(ctx, models.SideEffectReport{
			MedicationID: med.ID,
			Symptom:      stringAt(form, "symptom"),
			Severity:     intAt(form, "severity"),
			Notes:        stringAt(form, "notes"),
			ImagePath:    stringAt(form, "image"),
		})
	})
	if err != nil {
		c.showSubmitError(form, err)
	}
}

func (c *Controllers) respondToReminder(ctx context.Context, med models.Medication) {
	status := c.term.PromptChoice("Response", []string{"taken", "skipped", "snoozed"})
	response := models.AdherenceResponse{
		MedicationID: med.ID,
		Status:       models.AdherenceStatus(status),
	}
	if response.Status == models.AdherenceSkipped {
		response.Reason = c.term.Prompt("Reason")
	}
	if err := c.backend.RespondToReminder(ctx, response); err != nil {
		c.term.Println("  ! " + err.Error())
	}
}
