package disease

import "encoding/json"

// Kind is the numeric type a feature slot accepts.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
)

// Option is one choice of a categorical feature.
type Option struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Feature describes one slot of a classifier's input vector.
type Feature struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Kind      Kind     `json:"kind"`
	Min       float64  `json:"min"`
	Max       float64  `json:"max"`
	Step      float64  `json:"step,omitempty"`
	Initial   float64  `json:"initial"`
	Essential bool     `json:"essential"`
	Options   []Option `json:"options,omitempty"`
}

// Spec is the ordered list of slots a classifier was trained on.
type Spec []Feature

// Names returns the slot names in trained order.
func (s Spec) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Essential returns the slots sourced from the caller.
func (s Spec) Essential() []Feature {
	out := make([]Feature, 0, len(s))
	for _, f := range s {
		if f.Essential {
			out = append(out, f)
		}
	}
	return out
}

// Index returns the slot position of name, or -1.
func (s Spec) Index(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// DefaultTable holds the constant values used for slots the caller does not
// supply. It is immutable once built.
type DefaultTable struct {
	values map[string]float64
}

// NewDefaultTable copies values into a new table.
func NewDefaultTable(values map[string]float64) DefaultTable {
	cp := make(map[string]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return DefaultTable{values: cp}
}

// Get returns the default for name.
func (t DefaultTable) Get(name string) (float64, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Len returns the number of defaults in the table.
func (t DefaultTable) Len() int {
	return len(t.values)
}

// Values returns a copy of the table contents.
func (t DefaultTable) Values() map[string]float64 {
	cp := make(map[string]float64, len(t.values))
	for k, v := range t.values {
		cp[k] = v
	}
	return cp
}

func (t DefaultTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.values)
}
