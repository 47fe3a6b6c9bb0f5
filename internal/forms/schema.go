package forms

import "regexp"

type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindBool     Kind = "bool"
	KindSelect   Kind = "select"
	KindMulti    Kind = "multi"
)

// Condition makes a field required only while the named sibling field holds
// the given value.
type Condition struct {
	Field  string
	Equals any
}

// PatternRule is a format constraint with its own message, run only when
// the field has a value.
type PatternRule struct {
	Expr    *regexp.Regexp
	Message string
}

type Field struct {
	Name  string
	Label string
	Kind  Kind

	Required     bool
	RequiredWhen *Condition
	// RequiredMessage overrides the default "<Label> is required".
	RequiredMessage string

	// MinLen applies to string kinds, Min/Max to numbers, MinItems to
	// multi fields inside their required branch.
	MinLen   int
	Min      *int
	Max      *int
	MinItems int

	Options  []string
	Patterns []PatternRule

	// NotBefore names a sibling date field this one may not precede.
	// Checked only when both fields have values.
	NotBefore string
	// PastOnly rejects date values after today.
	PastOnly bool
}

type Schema struct {
	Fields []Field
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// dependents returns the fields whose validation outcome can change when
// the named field's value changes.
func (s Schema) dependents(name string) []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Name == name {
			continue
		}
		if f.RequiredWhen != nil && f.RequiredWhen.Field == name {
			out = append(out, f)
		} else if f.NotBefore == name {
			out = append(out, f)
		}
	}
	return out
}
