package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// validateField evaluates one field against the live values. A field whose
// conditional requirement is not triggered is exempt from presence and
// format checks, but a value it does hold still gets type-checked.
func validateField(field Field, schema Schema, values map[string]any) string {
	required := field.Required || conditionMet(field.RequiredWhen, values)

	switch field.Kind {
	case KindBool:
		if required && !boolValue(values[field.Name]) {
			return requiredMessage(field)
		}
		return ""
	case KindMulti:
		return validateMulti(field, values, required)
	default:
		return validateScalar(field, schema, values, required)
	}
}

func validateScalar(field Field, schema Schema, values map[string]any, required bool) string {
	str := stringValue(values[field.Name])
	if str == "" {
		if required {
			return requiredMessage(field)
		}
		return ""
	}

	switch field.Kind {
	case KindEmail:
		if validate.Var(str, "email") != nil {
			return "Invalid email"
		}
	case KindNumber:
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Sprintf("%s must be a number", field.Label)
		}
		if field.Min != nil && validate.Var(n, fmt.Sprintf("min=%d", *field.Min)) != nil {
			return fmt.Sprintf("%s must be at least %d", field.Label, *field.Min)
		}
		if field.Max != nil && validate.Var(n, fmt.Sprintf("max=%d", *field.Max)) != nil {
			return fmt.Sprintf("%s must be at most %d", field.Label, *field.Max)
		}
	case KindDate:
		if validate.Var(str, "datetime="+dateLayout) != nil {
			return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field.Label)
		}
		if field.PastOnly {
			if d, err := time.Parse(dateLayout, str); err == nil && d.After(time.Now()) {
				return fmt.Sprintf("%s cannot be in the future", field.Label)
			}
		}
		if msg := checkNotBefore(field, schema, str, values); msg != "" {
			return msg
		}
	case KindTime:
		if validate.Var(str, "datetime=15:04") != nil {
			return fmt.Sprintf("%s must be a valid time (HH:MM)", field.Label)
		}
	case KindSelect:
		if len(field.Options) > 0 && validate.Var(str, "oneof="+strings.Join(field.Options, " ")) != nil {
			return fmt.Sprintf("%s must be one of: %s", field.Label, strings.Join(field.Options, ", "))
		}
	default:
		if field.MinLen > 0 && validate.Var(str, fmt.Sprintf("min=%d", field.MinLen)) != nil {
			return fmt.Sprintf("%s must be at least %d characters", field.Label, field.MinLen)
		}
	}

	for _, rule := range field.Patterns {
		if !rule.Expr.MatchString(str) {
			return rule.Message
		}
	}
	return ""
}

func validateMulti(field Field, values map[string]any, required bool) string {
	items := stringSlice(values[field.Name])

	minItems := field.MinItems
	if required && minItems < 1 {
		minItems = 1
	}
	if required && len(items) < minItems {
		return requiredMessage(field)
	}

	if len(field.Options) > 0 {
		oneof := "oneof=" + strings.Join(field.Options, " ")
		for _, item := range items {
			if validate.Var(item, oneof) != nil {
				return fmt.Sprintf("%s has an unknown entry %q", field.Label, item)
			}
		}
	}
	return ""
}

// checkNotBefore enforces the cross-field ordering constraint. It only
// fires when both participating fields hold parseable dates.
func checkNotBefore(field Field, schema Schema, str string, values map[string]any) string {
	if field.NotBefore == "" {
		return ""
	}
	otherStr := stringValue(values[field.NotBefore])
	if otherStr == "" {
		return ""
	}
	this, err := time.Parse(dateLayout, str)
	if err != nil {
		return ""
	}
	other, err := time.Parse(dateLayout, otherStr)
	if err != nil {
		return ""
	}
	if this.Before(other) {
		otherLabel := field.NotBefore
		if f, ok := schema.Field(field.NotBefore); ok {
			otherLabel = f.Label
		}
		return fmt.Sprintf("%s cannot be before %s", field.Label, otherLabel)
	}
	return ""
}

func conditionMet(cond *Condition, values map[string]any) bool {
	if cond == nil {
		return false
	}
	got := values[cond.Field]
	switch want := cond.Equals.(type) {
	case bool:
		return boolValue(got) == want
	case string:
		return stringValue(got) == want
	default:
		return got == cond.Equals
	}
}

func requiredMessage(field Field) string {
	if field.RequiredMessage != "" {
		return field.RequiredMessage
	}
	return fmt.Sprintf("%s is required", field.Label)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case fmt.Stringer:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func stringSlice(v any) []string {
	raw, ok := v.([]string)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

func boolValue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
