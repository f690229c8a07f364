package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldErrors maps a field name to every rule it violated. Validation is
// exhaustive so a form UI can highlight all bad fields in one response.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return strings.Join(parts, ", ")
}

// Rule checks one scalar value and returns a message, or "" when the value
// passes. Rules are pure and composed per field in a Schema.
type Rule func(value string) string

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9\-\+\(\)\s]+$`)
)

func Required(label string) Rule {
	return func(v string) string {
		if v == "" {
			return label + " is required"
		}
		return ""
	}
}

func MinLen(n int, label string) Rule {
	return func(v string) string {
		if len(v) < n {
			return fmt.Sprintf("%s must be at least %d characters", label, n)
		}
		return ""
	}
}

func MaxLen(n int, label string) Rule {
	return func(v string) string {
		if len(v) > n {
			return fmt.Sprintf("%s must be at most %d characters", label, n)
		}
		return ""
	}
}

func Email() Rule {
	return func(v string) string {
		if !emailRe.MatchString(v) {
			return "Invalid email address"
		}
		return ""
	}
}

func Phone() Rule {
	return func(v string) string {
		if !phoneRe.MatchString(v) {
			return "Invalid phone number"
		}
		if len(v) < 10 {
			return "Phone number must be at least 10 digits"
		}
		return ""
	}
}

func OneOf(label string, allowed ...string) Rule {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", "))
	}
}

// Field binds a draft field name to its rules. Optional fields skip their
// rules when the value is absent.
type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

type Schema []Field

// Validate applies every field's rules against the draft values and
// collects all violations. An empty result means the draft passed.
func (s Schema) Validate(values map[string]string) FieldErrors {
	errs := FieldErrors{}
	for _, field := range s {
		v := values[field.Name]
		if field.Optional && v == "" {
			continue
		}
		for _, rule := range field.Rules {
			if msg := rule(v); msg != "" {
				errs[field.Name] = append(errs[field.Name], msg)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParticipantFields expands the shared per-student field group under a
// prefix ("leader", "member2", ...), e.g. "leader.fullName".
func ParticipantFields(prefix string) Schema {
	key := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	return Schema{
		{Name: key("fullName"), Rules: []Rule{MinLen(2, "Full name"), MaxLen(100, "Full name")}},
		{Name: key("studentId"), Rules: []Rule{MinLen(5, "Student ID"), MaxLen(20, "Student ID")}},
		{Name: key("phoneNumber"), Rules: []Rule{Phone()}},
		{Name: key("messagingId"), Rules: []Rule{Required("Messaging ID"), MaxLen(100, "Messaging ID")}},
		{Name: key("email"), Rules: []Rule{Email()}},
		{Name: key("institution"), Rules: []Rule{MinLen(2, "Institution"), MaxLen(200, "Institution")}},
		{Name: key("department"), Rules: []Rule{MinLen(2, "Department"), MaxLen(200, "Department")}},
	}
}

// Merge concatenates schemas into one exhaustive pass.
func Merge(schemas ...Schema) Schema {
	var out Schema
	for _, s := range schemas {
		out = append(out, s...)
	}
	return out
}
