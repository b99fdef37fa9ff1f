// Package mealplan defines the data exchanged with the meal-plan service:
// the health-attribute form and the generated plan.
package mealplan

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/dietplanner/internal/errors"
)

// Field identifies one attribute of the form. The string value is the
// key used on the wire.
type Field string

// Form fields, in display and wire order.
const (
	FieldAge            Field = "Age"
	FieldHeightCM       Field = "Height_cm"
	FieldWeightKG       Field = "Weight_kg"
	FieldGender         Field = "Gender"
	FieldDietaryHabits  Field = "Dietary_Habits"
	FieldChronicDisease Field = "Chronic_Disease"
)

const numFields = 6

var fieldOrder = [numFields]Field{
	FieldAge,
	FieldHeightCM,
	FieldWeightKG,
	FieldGender,
	FieldDietaryHabits,
	FieldChronicDisease,
}

// Fields returns all form fields in display order.
func Fields() []Field {
	return slices.Clone(fieldOrder[:])
}

func (f Field) index() int {
	for i, candidate := range fieldOrder {
		if candidate == f {
			return i
		}
	}
	return -1
}

// Valid reports whether f is one of the six form fields.
func (f Field) Valid() bool {
	return f.index() >= 0
}

// FormState holds the current string value of every form field.
// It is a value type: assigning or passing it copies all fields, so a
// submitted snapshot never observes later edits.
type FormState struct {
	values [numFields]string
}

// DefaultForm returns the form as it appears before any user edit.
func DefaultForm() FormState {
	return FormState{values: [numFields]string{
		"46",
		"170.0",
		"72.0",
		"Male",
		"Regular",
		"None",
	}}
}

// Get returns the value of field, or "" for an unknown field.
func (s FormState) Get(field Field) string {
	i := field.index()
	if i < 0 {
		return ""
	}
	return s.values[i]
}

// Update returns a copy of s with field set to value. All other fields are
// left untouched. Unknown fields return s unchanged.
func (s FormState) Update(field Field, value string) FormState {
	i := field.index()
	if i < 0 {
		return s
	}
	s.values[i] = value
	return s
}

// Map returns the form as a field-keyed map.
func (s FormState) Map() map[string]string {
	m := make(map[string]string, numFields)
	for i, f := range fieldOrder {
		m[string(f)] = s.values[i]
	}
	return m
}

// MarshalJSON writes the six fields as string values in display order.
func (s FormState) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fieldOrder {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(f))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Check applies the input constraints a form control enforces before it
// lets the user submit: numeric fields must hold a number, choice fields
// one of their options. It returns the first violation found.
func (s FormState) Check() error {
	for _, f := range fieldOrder {
		spec := SpecFor(f)
		value := s.Get(f)
		switch spec.Kind {
		case KindNumeric:
			if strings.TrimSpace(value) == "" {
				return errors.NewValidationError("is required").WithField(spec.Label).WithValue(value)
			}
			if !isDecimal(value) {
				return errors.NewValidationError("must be a number").WithField(spec.Label).WithValue(value)
			}
		case KindChoice:
			if !spec.HasOption(value) {
				return errors.NewValidationError("must be one of: "+strings.Join(spec.OptionValues(), ", ")).
					WithField(spec.Label).WithValue(value)
			}
		}
	}
	return nil
}

// decimalPattern is the literal syntax a number input accepts: an optional
// minus sign, digits with an optional fraction, and an optional exponent.
var decimalPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// isDecimal reports whether value is a finite number written as a plain
// decimal literal. NaN, infinities and hex floats are rejected.
func isDecimal(value string) bool {
	if !decimalPattern.MatchString(value) {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}
