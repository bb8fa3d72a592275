package disease

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsRangeBounds(t *testing.T) {
	for _, d := range All() {
		for _, pick := range []func(Feature) float64{
			func(f Feature) float64 { return f.Min },
			func(f Feature) float64 { return f.Max },
			func(f Feature) float64 { return f.Initial },
		} {
			inputs := map[string]float64{}
			for _, f := range d.Spec.Essential() {
				inputs[f.Name] = pick(f)
			}
			assert.NoError(t, Validate(d.Spec, inputs), d.ID)
		}
	}
}

func TestValidate_Rejections(t *testing.T) {
	d, err := Lookup("heart")
	require.NoError(t, err)

	base := func() map[string]float64 {
		return map[string]float64{"age": 50, "sex": 1, "cp": 0, "trestbps": 130, "chol": 240, "thalach": 150}
	}

	tests := []struct {
		name   string
		mutate func(map[string]float64)
		field  string
		msg    string
	}{
		{"above max", func(m map[string]float64) { m["trestbps"] = 251 }, "trestbps", "between 0 and 250"},
		{"below min", func(m map[string]float64) { m["age"] = -1 }, "age", "between 0 and 120"},
		{"fractional int", func(m map[string]float64) { m["chol"] = 200.5 }, "chol", "whole number"},
		{"bad option", func(m map[string]float64) { m["cp"] = 4 }, "cp", "must be one of"},
		{"missing", func(m map[string]float64) { delete(m, "thalach") }, "thalach", "required"},
		{"not finite", func(m map[string]float64) { m["age"] = math.Inf(1) }, "age", "finite"},
		{"unknown", func(m map[string]float64) { m["thal"] = 1 }, "thal", "not an accepted input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := base()
			tt.mutate(inputs)

			err := Validate(d.Spec, inputs)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.Contains(t, verrs[0].Message, tt.msg)
		})
	}
}

func TestValidate_CollectsAllFields(t *testing.T) {
	d, err := Lookup("diabetes")
	require.NoError(t, err)

	err = Validate(d.Spec, map[string]float64{"Glucose": 900, "BMI": 5})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
	assert.Contains(t, err.Error(), "Blood Pressure (mmHg) is required")
}
