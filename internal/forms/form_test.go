package forms

import (
	"context"
	"errors"
	"testing"
)

func scheduleSchema() Schema {
	one := 1
	return Schema{Fields: []Field{
		{Name: "scheduleType", Label: "Schedule Type", Kind: KindSelect, Required: true,
			Options: []string{"fixed", "everyXHours", "prn"}},
		{Name: "fixedTimes", Label: "Fixed Times", Kind: KindMulti,
			RequiredWhen:    &Condition{Field: "scheduleType", Equals: "fixed"},
			RequiredMessage: "At least one time is required"},
		{Name: "everyXHours", Label: "Every X Hours", Kind: KindNumber, Min: &one,
			RequiredWhen: &Condition{Field: "scheduleType", Equals: "everyXHours"}},
	}}
}

func TestConditionalFieldEnforcedWhenConditionMatches(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "fixed")
	form.Set("fixedTimes", []string{""})

	if form.Valid() {
		t.Fatal("form should be invalid with an empty fixedTimes entry")
	}
	if got := form.FieldError("fixedTimes"); got != "At least one time is required" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestConditionalFieldExemptWhenConditionDoesNotMatch(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "prn")
	form.Set("fixedTimes", nil)

	if !form.Valid() {
		t.Fatalf("form should be valid, errors: %v %v",
			form.FieldError("fixedTimes"), form.FieldError("everyXHours"))
	}
}

func TestConditionalReevaluatedWhenGoverningFieldChanges(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "fixed")
	if form.FieldError("fixedTimes") == "" {
		t.Fatal("fixedTimes should become required when scheduleType turns fixed")
	}

	form.Set("scheduleType", "prn")
	if got := form.FieldError("fixedTimes"); got != "" {
		t.Errorf("fixedTimes error should clear, got %q", got)
	}
}

func TestExemptFieldKeepsTypeCheckWhenValuePresent(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "fixed")
	form.Set("fixedTimes", []string{"08:00"})
	form.Set("everyXHours", "not a number")

	if form.Valid() {
		t.Fatal("a present value on an exempt field must still type-check")
	}
	if form.FieldError("everyXHours") == "" {
		t.Error("expected a type error on everyXHours")
	}
}

func datesSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "startDate", Label: "Start Date", Kind: KindDate, Required: true},
		{Name: "endDate", Label: "End Date", Kind: KindDate, NotBefore: "startDate"},
	}}
}

func TestOrderingConstraintNeedsBothValues(t *testing.T) {
	form := New(datesSchema())
	form.Set("endDate", "2024-01-01")

	if got := form.FieldError("endDate"); got != "" {
		t.Errorf("ordering must not fire with startDate empty, got %q", got)
	}
}

func TestOrderingConstraintRejectsEndBeforeStart(t *testing.T) {
	form := New(datesSchema())
	form.Set("startDate", "2024-06-10")
	form.Set("endDate", "2024-06-01")

	if got := form.FieldError("endDate"); got != "End Date cannot be before Start Date" {
		t.Errorf("unexpected error %q", got)
	}

	form.Set("endDate", "2024-06-10")
	if got := form.FieldError("endDate"); got != "" {
		t.Errorf("equal dates should pass, got %q", got)
	}
}

func TestOrderingReevaluatedWhenStartChanges(t *testing.T) {
	form := New(datesSchema())
	form.Set("startDate", "2024-06-01")
	form.Set("endDate", "2024-06-05")
	form.Set("startDate", "2024-07-01")

	if form.FieldError("endDate") == "" {
		t.Error("moving startDate past endDate should re-flag endDate")
	}
}

func TestSubmitRejectedWhileInvalidWithoutCallingSend(t *testing.T) {
	form := New(scheduleSchema())
	calls := 0

	err := form.Submit(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
	if calls != 0 {
		t.Errorf("send must not run on an invalid form, ran %d times", calls)
	}
}

func TestSubmitGuardsAgainstDoubleSubmission(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "prn")

	calls := 0
	err := form.Submit(context.Background(), func(ctx context.Context) error {
		calls++
		if nested := form.Submit(ctx, func(context.Context) error {
			calls++
			return nil
		}); !errors.Is(nested, ErrSubmitting) {
			t.Errorf("nested submit: want ErrSubmitting, got %v", nested)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("want exactly one send, got %d", calls)
	}
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "prn")

	if err := form.Submit(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if got := form.Value("scheduleType"); got != nil {
		t.Errorf("values should reset after success, got %v", got)
	}
	if form.Submitting() {
		t.Error("form should be idle after submit")
	}
}

func TestSubmitFailureRetainsValuesAndMessage(t *testing.T) {
	form := New(scheduleSchema())
	form.Set("scheduleType", "prn")

	err := form.Submit(context.Background(), func(context.Context) error {
		return errors.New("backend unreachable")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := form.Value("scheduleType"); got != "prn" {
		t.Errorf("values must survive a failed submit, got %v", got)
	}
	if form.SubmissionError() != "backend unreachable" {
		t.Errorf("unexpected submission error %q", form.SubmissionError())
	}
	if form.Submitting() {
		t.Error("form should return to idle after failure")
	}
}

func TestSeverityBounds(t *testing.T) {
	one, ten := 1, 10
	schema := Schema{Fields: []Field{
		{Name: "severity", Label: "Severity", Kind: KindNumber, Required: true,
			Min: &one, Max: &ten},
	}}

	cases := []struct {
		value string
		valid bool
	}{
		{"1", true},
		{"10", true},
		{"0", false},
		{"11", false},
		{"", false},
	}
	for _, tc := range cases {
		form := New(schema)
		form.Set("severity", tc.value)
		if form.Valid() != tc.valid {
			t.Errorf("severity %q: want valid=%v, got error %q", tc.value, tc.valid, form.FieldError("severity"))
		}
	}
}

func TestPasswordMinLength(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "password", Label: "Password", Kind: KindPassword, Required: true, MinLen: 6},
	}}
	form := New(schema)
	form.Set("password", "12345")

	if form.Valid() {
		t.Fatal("five characters should fail a six character minimum")
	}
	if got := form.FieldError("password"); got != "Password must be at least 6 characters" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestEmailFormat(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
	}}
	form := New(schema)
	form.Set("email", "not-an-email")

	if got := form.FieldError("email"); got != "Invalid email" {
		t.Errorf("unexpected error %q", got)
	}

	form.Set("email", "a@b.co")
	if got := form.FieldError("email"); got != "" {
		t.Errorf("valid email rejected: %q", got)
	}
}

func TestBoolFieldRequiredOnlyInBranch(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "scheduleType", Label: "Schedule Type", Kind: KindSelect, Required: true,
			Options: []string{"fixed", "prn"}},
		{Name: "prn", Label: "PRN", Kind: KindBool,
			RequiredWhen:    &Condition{Field: "scheduleType", Equals: "prn"},
			RequiredMessage: "PRN must be confirmed"},
	}}

	form := New(schema)
	form.Set("scheduleType", "prn")
	form.Set("prn", false)
	if form.Valid() {
		t.Error("prn=false must fail inside the prn branch")
	}

	form.Set("scheduleType", "fixed")
	if got := form.FieldError("prn"); got != "" {
		t.Errorf("prn should be exempt outside its branch, got %q", got)
	}
}
