package forms

import (
	"context"
	"errors"

	"wateen/client/internal/ids"
)

var (
	// ErrInvalid means the submit guard rejected the attempt; no network
	// call was made.
	ErrInvalid = errors.New("form has validation errors")
	// ErrSubmitting means a submission is already in flight.
	ErrSubmitting = errors.New("form is already submitting")
)

// Form binds live values to a Schema: per-change validation, a full
// pre-submit pass and the idle/submitting lifecycle. One Form exists per
// mounted screen and is discarded with it.
type Form struct {
	ID     string
	schema Schema

	values     map[string]any
	fieldErrs  map[string]string
	submitting bool
	submitErr  string
}

func New(schema Schema) *Form {
	return &Form{
		ID:        ids.New(),
		schema:    schema,
		values:    map[string]any{},
		fieldErrs: map[string]string{},
	}
}

// Set updates one value and revalidates that field plus every field whose
// requirement or ordering constraint hangs off it.
func (f *Form) Set(name string, value any) {
	field, ok := f.schema.Field(name)
	if !ok {
		return
	}
	f.values[name] = value

	f.check(field)
	for _, dep := range f.schema.dependents(name) {
		f.check(dep)
	}
}

func (f *Form) Value(name string) any {
	return f.values[name]
}

// FieldError returns the current inline error for a field, if any.
func (f *Form) FieldError(name string) string {
	return f.fieldErrs[name]
}

func (f *Form) check(field Field) {
	if msg := validateField(field, f.schema, f.values); msg != "" {
		f.fieldErrs[field.Name] = msg
	} else {
		delete(f.fieldErrs, field.Name)
	}
}

// Validate recomputes every field and reports overall validity.
func (f *Form) Validate() bool {
	for _, field := range f.schema.Fields {
		f.check(field)
	}
	return len(f.fieldErrs) == 0
}

func (f *Form) Valid() bool {
	return f.Validate()
}

func (f *Form) Submitting() bool { return f.submitting }

// SubmissionError is the free-text message from the last failed submit.
func (f *Form) SubmissionError() string { return f.submitErr }

// Submit runs the lifecycle: guard, submitting, exactly one call to send,
// then reset on success or message capture on failure. Values survive a
// failed submit so the user can correct and retry.
func (f *Form) Submit(ctx context.Context, send func(context.Context) error) error {
	if f.submitting {
		return ErrSubmitting
	}
	if !f.Validate() {
		return ErrInvalid
	}

	f.submitErr = ""
	f.submitting = true
	err := send(ctx)
	f.submitting = false

	if err != nil {
		f.submitErr = err.Error()
		return err
	}

	f.Reset()
	return nil
}

// Reset clears values and errors back to a freshly mounted state.
func (f *Form) Reset() {
	f.values = map[string]any{}
	f.fieldErrs = map[string]string{}
	f.submitErr = ""
}
