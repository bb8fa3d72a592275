package predict

import (
	"fmt"
	"path/filepath"

	"github.com/Skufu/multidisease/internal/disease"
	"github.com/Skufu/multidisease/internal/model"
)

// Registry holds one loaded model per disease. It is built once at startup and
// only read afterwards.
type Registry struct {
	models map[disease.ID]*model.Model
}

// NewRegistry checks every model against its disease's trained feature order.
func NewRegistry(models map[disease.ID]*model.Model) (*Registry, error) {
	r := &Registry{models: make(map[disease.ID]*model.Model, len(models))}
	for id, m := range models {
		d, err := disease.Lookup(string(id))
		if err != nil {
			return nil, err
		}
		if err := m.CheckFeatures(d.Spec.Names()); err != nil {
			return nil, fmt.Errorf("model for %s: %w", id, err)
		}
		r.models[id] = m
	}
	return r, nil
}

// LoadRegistry loads the artifact named in files for every supported disease
// from dir. A missing or unreadable artifact is an error.
func LoadRegistry(dir string, files map[disease.ID]string) (*Registry, error) {
	models := make(map[disease.ID]*model.Model, len(files))
	for _, d := range disease.All() {
		name, ok := files[d.ID]
		if !ok || name == "" {
			return nil, fmt.Errorf("no model file configured for %s", d.ID)
		}
		m, err := model.Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		models[d.ID] = m
	}
	return NewRegistry(models)
}

// Model returns the model for id.
func (r *Registry) Model(id disease.ID) (*model.Model, bool) {
	m, ok := r.models[id]
	return m, ok
}

// Infos lists the loaded artifacts keyed by disease.
func (r *Registry) Infos() map[disease.ID]model.Info {
	out := make(map[disease.ID]model.Info, len(r.models))
	for id, m := range r.models {
		out[id] = m.Info
	}
	return out
}
