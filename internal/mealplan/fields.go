package mealplan

import (
	"math"
	"strconv"
)

// InputKind is the kind of control used to edit a field.
type InputKind int

const (
	// KindNumeric fields accept decimal numbers and can be stepped.
	KindNumeric InputKind = iota
	// KindChoice fields take one value from a closed list.
	KindChoice
)

// Option is one selectable entry of a choice field.
type Option struct {
	Label string
	Value string
}

// FieldSpec describes how a field is presented and constrained.
type FieldSpec struct {
	Field Field
	Label string
	Kind  InputKind
	// Step is the stepper increment for numeric fields.
	Step float64
	// Precision is the number of decimals shown for numeric fields.
	Precision int
	Options   []Option
}

var fieldSpecs = map[Field]FieldSpec{
	FieldAge: {
		Field: FieldAge, Label: "Age", Kind: KindNumeric, Step: 1, Precision: 0,
	},
	FieldHeightCM: {
		Field: FieldHeightCM, Label: "Height (cm)", Kind: KindNumeric, Step: 0.1, Precision: 1,
	},
	FieldWeightKG: {
		Field: FieldWeightKG, Label: "Weight (kg)", Kind: KindNumeric, Step: 0.1, Precision: 1,
	},
	FieldGender: {
		Field: FieldGender, Label: "Gender", Kind: KindChoice,
		Options: []Option{
			{Label: "Male", Value: "Male"},
			{Label: "Female", Value: "Female"},
		},
	},
	FieldDietaryHabits: {
		Field: FieldDietaryHabits, Label: "Dietary Habit", Kind: KindChoice,
		Options: []Option{
			{Label: "Regular", Value: "Regular"},
			{Label: "Vegetarian", Value: "Vegetarian"},
			{Label: "Non Vegetarian", Value: "Non Vegetarian"},
			{Label: "Vegan", Value: "Vegan"},
			{Label: "Keto", Value: "Keto"},
		},
	},
	FieldChronicDisease: {
		Field: FieldChronicDisease, Label: "Chronic Disease", Kind: KindChoice,
		Options: []Option{
			{Label: "None", Value: "None"},
			{Label: "Diabetes", Value: "Diabetes"},
			{Label: "Hypertension", Value: "Hypertension"},
			{Label: "Obesity", Value: "Obesity"},
		},
	},
}

// SpecFor returns the presentation spec of field. Unknown fields yield a
// zero FieldSpec.
func SpecFor(field Field) FieldSpec {
	return fieldSpecs[field]
}

// HasOption reports whether value is one of the field's option values.
func (fs FieldSpec) HasOption(value string) bool {
	return fs.OptionIndex(value) >= 0
}

// OptionIndex returns the position of value among the options, or -1.
func (fs FieldSpec) OptionIndex(value string) int {
	for i, opt := range fs.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// OptionValues lists the option values in order.
func (fs FieldSpec) OptionValues() []string {
	values := make([]string, len(fs.Options))
	for i, opt := range fs.Options {
		values[i] = opt.Value
	}
	return values
}

// Cycle returns the option value delta positions away from current,
// wrapping at both ends. An unrecognized current value starts from the
// first option.
func (fs FieldSpec) Cycle(current string, delta int) string {
	n := len(fs.Options)
	if n == 0 {
		return current
	}
	i := fs.OptionIndex(current)
	if i < 0 {
		return fs.Options[0].Value
	}
	i = ((i+delta)%n + n) % n
	return fs.Options[i].Value
}

// StepValue adds delta steps to a numeric value and formats the result
// with the field's precision. Results are clamped at zero. A value that
// does not parse is treated as zero.
func (fs FieldSpec) StepValue(current string, delta int) string {
	if fs.Kind != KindNumeric {
		return current
	}
	var v float64
	if isDecimal(current) {
		v, _ = strconv.ParseFloat(current, 64)
	}
	v += float64(delta) * fs.Step
	scale := math.Pow(10, float64(fs.Precision))
	v = math.Round(v*scale) / scale
	if v < 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', fs.Precision, 64)
}

// Step returns a copy of s with a numeric field stepped by delta
// increments. Non-numeric fields are left unchanged.
func (s FormState) Step(field Field, delta int) FormState {
	spec := SpecFor(field)
	if spec.Kind != KindNumeric || !field.Valid() {
		return s
	}
	return s.Update(field, spec.StepValue(s.Get(field), delta))
}

// AcceptsNumericInput reports whether text may be typed into a numeric
// field whose current content is existing. Digits are always accepted and
// a single decimal point is allowed for fields with a fractional step.
func (fs FieldSpec) AcceptsNumericInput(existing string, text string) bool {
	dots := 0
	for _, r := range existing {
		if r == '.' {
			dots++
		}
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && fs.Precision > 0:
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
