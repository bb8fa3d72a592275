package disease

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownDisease = errors.New("unknown disease")
	ErrMissingInput   = errors.New("missing essential input")
	ErrUnknownInput   = errors.New("unknown input")
	ErrMissingDefault = errors.New("missing default value")
	ErrShadowedInput  = errors.New("default supplied for essential feature")
)

// Vector is a full classifier input in trained slot order.
type Vector []float64

// Assemble merges the caller's essential inputs with the default table into a
// vector ordered exactly as spec. Values are trusted as already range checked.
func Assemble(spec Spec, defaults DefaultTable, inputs map[string]float64) (Vector, error) {
	vec := make(Vector, len(spec))
	for i, f := range spec {
		if f.Essential {
			if _, ok := defaults.Get(f.Name); ok {
				return nil, fmt.Errorf("%w: %s", ErrShadowedInput, f.Name)
			}
			v, ok := inputs[f.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingInput, f.Name)
			}
			vec[i] = v
			continue
		}

		v, ok := defaults.Get(f.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingDefault, f.Name)
		}
		vec[i] = v
	}

	if unknown := unknownInputs(spec, inputs); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInput, strings.Join(unknown, ", "))
	}

	return vec, nil
}

// Assemble builds the vector for d from inputs.
func (d Disease) Assemble(inputs map[string]float64) (Vector, error) {
	return Assemble(d.Spec, d.Defaults, inputs)
}

func unknownInputs(spec Spec, inputs map[string]float64) []string {
	var out []string
	for name := range inputs {
		i := spec.Index(name)
		if i < 0 || !spec[i].Essential {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
