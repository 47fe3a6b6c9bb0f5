package screens

import (
	"context"
	"strconv"
	"strings"

	"wateen/client/internal/forms"
	"wateen/client/internal/models"
)

func AddMedicationSchema() forms.Schema {
	one := 1
	zero := 0
	return forms.Schema{Fields: []forms.Field{
		{Name: "name", Label: "Medication Name", Kind: forms.KindText, Required: true,
			RequiredMessage: "Medication name is required"},
		{Name: "dosage", Label: "Dosage", Kind: forms.KindText, Required: true,
			RequiredMessage: "Dosage is required"},
		{Name: "formType", Label: "Form Type", Kind: forms.KindSelect, Required: true,
			RequiredMessage: "Form type is required", Options: models.FormTypes},
		{Name: "scheduleType", Label: "Schedule Type", Kind: forms.KindSelect, Required: true,
			RequiredMessage: "Schedule type is required",
			Options:         []string{"fixed", "everyXHours", "specificDays", "prn"}},

		{Name: "fixedTimes", Label: "Fixed Times", Kind: forms.KindMulti,
			RequiredWhen:    &forms.Condition{Field: "scheduleType", Equals: "fixed"},
			RequiredMessage: "At least one time is required"},
		{Name: "everyXHours", Label: "Every X Hours", Kind: forms.KindNumber, Min: &one,
			RequiredWhen:    &forms.Condition{Field: "scheduleType", Equals: "everyXHours"},
			RequiredMessage: "Interval is required"},
		{Name: "specificDays", Label: "Specific Days", Kind: forms.KindMulti,
			Options:         models.DaysOfWeek,
			RequiredWhen:    &forms.Condition{Field: "scheduleType", Equals: "specificDays"},
			RequiredMessage: "Select at least one day"},
		{Name: "prn", Label: "PRN", Kind: forms.KindBool,
			RequiredWhen:    &forms.Condition{Field: "scheduleType", Equals: "prn"},
			RequiredMessage: "PRN must be confirmed"},

		{Name: "startDate", Label: "Start Date", Kind: forms.KindDate, Required: true,
			RequiredMessage: "Start date is required"},
		{Name: "endDate", Label: "End Date", Kind: forms.KindDate, NotBefore: "startDate"},

		{Name: "refillCount", Label: "Refill Count", Kind: forms.KindNumber, Min: &zero},
		{Name: "startQuantity", Label: "Number of Pills at Start", Kind: forms.KindNumber, Min: &zero},
		{Name: "doseQuantity", Label: "Pills per Dose", Kind: forms.KindNumber, Min: &zero},
		{Name: "timesPerDay", Label: "Times per Day", Kind: forms.KindNumber, Min: &zero},
		{Name: "notes", Label: "Notes", Kind: forms.KindText},

		{Name: "reminderOn", Label: "Enable Reminder", Kind: forms.KindBool},
		{Name: "reminderTime", Label: "Reminder Time", Kind: forms.KindTime,
			RequiredWhen:    &forms.Condition{Field: "reminderOn", Equals: true},
			RequiredMessage: "Reminder time is required"},
		{Name: "reminderRepeat", Label: "Reminder Repeat", Kind: forms.KindSelect,
			Options:         []string{"Daily", "Weekly", "Monthly"},
			RequiredWhen:    &forms.Condition{Field: "reminderOn", Equals: true},
			RequiredMessage: "Reminder repeat is required"},
	}}
}

func (c *Controllers) AddMedication(ctx context.Context) Route {
	c.term.Println("== " + c.locale.T("med.title") + " ==")
	schema := AddMedicationSchema()
	form := forms.New(schema)

	prompt := func(name, key string) {
		field, _ := schema.Field(name)
		c.fill(form, field, func() any { return c.term.Prompt(c.locale.T(key)) })
	}
	choose := func(name, key string) {
		field, _ := schema.Field(name)
		c.fill(form, field, func() any {
			return c.term.PromptChoice(c.locale.T(key), field.Options)
		})
	}

	prompt("name", "med.name")
	prompt("dosage", "med.dosage")
	choose("formType", "med.formtype")
	choose("scheduleType", "med.scheduletype")

	switch stringAt(form, "scheduleType") {
	case "fixed":
		field, _ := schema.Field("fixedTimes")
		c.fill(form, field, func() any {
			return splitTimes(c.term.Prompt(c.locale.T("med.fixedtimes")))
		})
	case "everyXHours":
		prompt("everyXHours", "med.everyxhours")
	case "specificDays":
		field, _ := schema.Field("specificDays")
		c.fill(form, field, func() any {
			return c.term.PromptMulti(c.locale.T("med.specificdays"), field.Options)
		})
	case "prn":
		field, _ := schema.Field("prn")
		c.fill(form, field, func() any {
			return c.term.PromptBool(c.locale.T("med.prn"))
		})
	}

	prompt("startDate", "med.startdate")
	prompt("endDate", "med.enddate")
	prompt("refillCount", "med.refillcount")
	prompt("startQuantity", "med.startquantity")
	prompt("doseQuantity", "med.dosequantity")
	prompt("timesPerDay", "med.timesperday")
	prompt("notes", "med.notes")

	form.Set("reminderOn", c.term.PromptBool(c.locale.T("med.reminderon")))
	if boolAt(form, "reminderOn") {
		prompt("reminderTime", "med.remindertime")
		choose("reminderRepeat", "med.reminderrepeat")
	}

	err := form.Submit(ctx, func(ctx context.Context) error {
		req := c.medicationRequest(form)
		if err := req.DosingSchedule().Validate(); err != nil {
			return err
		}
		_, err := c.backend.CreateMedication(ctx, req)
		return err
	})
	if err != nil {
		c.showSubmitError(form, err)
		return RouteDashboard
	}
	return RouteDashboard
}

func (c *Controllers) medicationRequest(form *forms.Form) models.CreateMedicationRequest {
	return models.CreateMedicationRequest{
		Name:           stringAt(form, "name"),
		Dosage:         stringAt(form, "dosage"),
		FormType:       stringAt(form, "formType"),
		ScheduleType:   models.ScheduleType(stringAt(form, "scheduleType")),
		FixedTimes:     sliceAt(form, "fixedTimes"),
		EveryXHours:    intAt(form, "everyXHours"),
		SpecificDays:   sliceAt(form, "specificDays"),
		PRN:            boolAt(form, "prn"),
		StartDate:      stringAt(form, "startDate"),
		EndDate:        stringAt(form, "endDate"),
		RefillCount:    intAt(form, "refillCount"),
		StartQuantity:  intAt(form, "startQuantity"),
		DoseQuantity:   intAt(form, "doseQuantity"),
		TimesPerDay:    intAt(form, "timesPerDay"),
		Notes:          stringAt(form, "notes"),
		ReminderOn:     boolAt(form, "reminderOn"),
		ReminderTime:   stringAt(form, "reminderTime"),
		ReminderRepeat: stringAt(form, "reminderRepeat"),
	}
}

func splitTimes(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intAt(form *forms.Form, name string) int {
	switch v := form.Value(name).(type) {
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	default:
		return 0
	}
}

func boolAt(form *forms.Form, name string) bool {
	b, _ := form.Value(name).(bool)
	return b
}
