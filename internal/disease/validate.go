package disease

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError reports one rejected input field.
type ValidationError struct {
	Field   string  `json:"field"`
	Message string  `json:"message"`
	Value   float64 `json:"value"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects every rejected field of one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the essential inputs against the declared ranges, kinds and
// options of spec. It returns nil or a ValidationErrors value.
func Validate(spec Spec, inputs map[string]float64) error {
	var errs ValidationErrors
	for _, f := range spec.Essential() {
		v, ok := inputs[f.Name]
		if !ok {
			errs = append(errs, ValidationError{Field: f.Name, Message: fmt.Sprintf("%s is required", describe(f))})
			continue
		}
		if msg := check(f, v); msg != "" {
			errs = append(errs, ValidationError{Field: f.Name, Message: msg, Value: v})
		}
	}
	for _, name := range unknownInputs(spec, inputs) {
		errs = append(errs, ValidationError{Field: name, Message: "not an accepted input", Value: inputs[name]})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func check(f Feature, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s must be a finite number", describe(f))
	}
	if len(f.Options) > 0 {
		for _, o := range f.Options {
			if o.Value == v {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of %s", describe(f), optionList(f.Options))
	}
	if f.Kind == KindInt && v != math.Trunc(v) {
		return fmt.Sprintf("%s must be a whole number", describe(f))
	}
	if v < f.Min || v > f.Max {
		return fmt.Sprintf("%s must be between %g and %g", describe(f), f.Min, f.Max)
	}
	return ""
}

func describe(f Feature) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

func optionList(opts []Option) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = fmt.Sprintf("%g (%s)", o.Value, o.Label)
	}
	return strings.Join(parts, ", ")
}
