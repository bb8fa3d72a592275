package disease

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_DiabetesGoldenVector(t *testing.T) {
	d, err := Lookup("diabetes")
	require.NoError(t, err)

	vec, err := d.Assemble(map[string]float64{
		"Glucose":       120,
		"BloodPressure": 80,
		"BMI":           25.0,
		"Age":           30,
	})

	require.NoError(t, err)
	assert.Equal(t, Vector{3.8, 120, 80, 20.5, 79.8, 25.0, 0.47, 30}, vec)
}

func TestAssemble_HeartVector(t *testing.T) {
	d, err := Lookup("heart")
	require.NoError(t, err)

	vec, err := d.Assemble(map[string]float64{
		"age":      50,
		"sex":      1,
		"cp":       0,
		"trestbps": 130,
		"chol":     240,
		"thalach":  150,
	})

	require.NoError(t, err)
	require.Len(t, vec, 13)
	assert.Equal(t, Vector{50, 1, 0, 130, 240, 0, 1, 150, 0, 1.0, 1, 0, 2}, vec)
}

func TestAssemble_ParkinsonsVector(t *testing.T) {
	d, err := Lookup("parkinsons")
	require.NoError(t, err)

	vec, err := d.Assemble(map[string]float64{
		"MDVP:Fo(Hz)":    150,
		"MDVP:Jitter(%)": 0.005,
		"HNR":            20,
		"RPDE":           0.4,
		"DFA":            0.8,
		"PPE":            0.1,
	})

	require.NoError(t, err)
	assert.Equal(t, Vector{
		150, 197.1, 116.3, 0.005, 0.00006, 0.003, 0.0035, 0.009, 0.03, 0.31, 0.016,
		0.02, 0.022, 0.048, 0.025, 20, 0.4, 0.8, -5.7, 0.23, 2.38, 0.1,
	}, vec)
}

// Essential values land in their slots and every other slot equals the default.
func TestAssemble_SlotPlacement(t *testing.T) {
	for _, d := range All() {
		t.Run(string(d.ID), func(t *testing.T) {
			inputs := map[string]float64{}
			for _, f := range d.Spec.Essential() {
				inputs[f.Name] = f.Max
			}

			vec, err := d.Assemble(inputs)
			require.NoError(t, err)
			require.Len(t, vec, len(d.Spec))

			for i, f := range d.Spec {
				if f.Essential {
					assert.Equal(t, f.Max, vec[i], f.Name)
					continue
				}
				want, ok := d.Defaults.Get(f.Name)
				require.True(t, ok, f.Name)
				assert.Equal(t, want, vec[i], f.Name)
			}
		})
	}
}

func TestAssemble_Lengths(t *testing.T) {
	want := map[ID]int{Diabetes: 8, Heart: 13, Parkinsons: 22}
	for _, d := range All() {
		assert.Len(t, d.Spec, want[d.ID], d.ID)
		assert.Equal(t, len(d.Spec)-len(d.Spec.Essential()), d.Defaults.Len(), d.ID)
	}
}

func TestAssemble_AgeBoundaries(t *testing.T) {
	d, err := Lookup("diabetes")
	require.NoError(t, err)

	for _, age := range []float64{0, 120} {
		inputs := map[string]float64{"Glucose": 120, "BloodPressure": 80, "BMI": 25, "Age": age}
		require.NoError(t, Validate(d.Spec, inputs))

		vec, err := d.Assemble(inputs)
		require.NoError(t, err)
		assert.Equal(t, age, vec[7])
	}
}

func TestAssemble_Errors(t *testing.T) {
	d, err := Lookup("diabetes")
	require.NoError(t, err)

	shadowing := d.Defaults.Values()
	shadowing["Glucose"] = 100

	tests := []struct {
		name     string
		spec     Spec
		defaults DefaultTable
		inputs   map[string]float64
		want     error
	}{
		{
			name:     "missing essential",
			spec:     d.Spec,
			defaults: d.Defaults,
			inputs:   map[string]float64{"Glucose": 120, "BloodPressure": 80, "BMI": 25},
			want:     ErrMissingInput,
		},
		{
			name:     "unknown input",
			spec:     d.Spec,
			defaults: d.Defaults,
			inputs:   map[string]float64{"Glucose": 120, "BloodPressure": 80, "BMI": 25, "Age": 30, "Weight": 70},
			want:     ErrUnknownInput,
		},
		{
			name:     "non-essential supplied by caller",
			spec:     d.Spec,
			defaults: d.Defaults,
			inputs:   map[string]float64{"Glucose": 120, "BloodPressure": 80, "BMI": 25, "Age": 30, "Insulin": 10},
			want:     ErrUnknownInput,
		},
		{
			name:     "missing default",
			spec:     d.Spec,
			defaults: NewDefaultTable(map[string]float64{"Pregnancies": 3.8}),
			inputs:   map[string]float64{"Glucose": 120, "BloodPressure": 80, "BMI": 25, "Age": 30},
			want:     ErrMissingDefault,
		},
		{
			name:     "default shadows essential",
			spec:     d.Spec,
			defaults: NewDefaultTable(shadowing),
			inputs:   map[string]float64{"Glucose": 120, "BloodPressure": 80, "BMI": 25, "Age": 30},
			want:     ErrShadowedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := Assemble(tt.spec, tt.defaults, tt.inputs)
			assert.Nil(t, vec)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDefaultTable_Immutable(t *testing.T) {
	src := map[string]float64{"a": 1}
	table := NewDefaultTable(src)
	src["a"] = 2

	got := table.Values()
	got["a"] = 3

	v, ok := table.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestLookup(t *testing.T) {
	d, err := Lookup(" Heart ")
	require.NoError(t, err)
	assert.Equal(t, Heart, d.ID)

	_, err = Lookup("flu")
	assert.ErrorIs(t, err, ErrUnknownDisease)
}
