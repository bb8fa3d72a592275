// Package model loads pre-trained binary classifiers from disk and evaluates
// them. Artifacts are produced elsewhere; this package only deserializes and
// invokes them.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
	ErrUnsupportedKind   = errors.New("unsupported model kind")
	ErrInvalidArtifact   = errors.New("invalid model artifact")
	ErrDimension         = errors.New("feature vector length mismatch")
)

// Classifier predicts a class label for one feature vector. Implementations
// must be safe for concurrent use.
type Classifier interface {
	Predict(x []float64) (int, error)
}

// Info describes an artifact.
type Info struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Kind     string   `json:"kind"`
	Features []string `json:"features"`
	Path     string   `json:"-"`
}

// Model is a loaded artifact ready for prediction.
type Model struct {
	Info
	Classifier
}

// artifact is the on-disk shape shared by every model kind.
type artifact struct {
	Kind      string    `json:"kind" yaml:"kind"`
	Name      string    `json:"name" yaml:"name"`
	Version   string    `json:"version" yaml:"version"`
	Features  []string  `json:"features" yaml:"features"`
	Weights   []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Intercept float64   `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	Threshold float64   `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Scaler    *scaler   `json:"scaler,omitempty" yaml:"scaler,omitempty"`
	Nodes     []Node    `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

type scaler struct {
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

// Load reads the artifact at path. The format is chosen by file extension.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	m, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Decode parses an artifact encoded as json or yaml.
func Decode(data []byte, format string) (*Model, error) {
	var a artifact
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json":
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return build(a)
}

func build(a artifact) (*Model, error) {
	if len(a.Features) == 0 {
		return nil, fmt.Errorf("%w: features list is required", ErrInvalidArtifact)
	}

	var (
		c   Classifier
		err error
	)
	switch a.Kind {
	case "linear":
		c, err = newLinear(a)
	case "tree":
		c, err = newTree(a.Nodes, len(a.Features))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, a.Kind)
	}
	if err != nil {
		return nil, err
	}

	return &Model{
		Info: Info{
			Name:     a.Name,
			Version:  a.Version,
			Kind:     a.Kind,
			Features: a.Features,
		},
		Classifier: c,
	}, nil
}

// CheckFeatures reports whether the artifact was trained on names, in order.
func (i Info) CheckFeatures(names []string) error {
	if len(i.Features) != len(names) {
		return fmt.Errorf("%w: artifact %s declares %d features, expected %d",
			ErrDimension, i.Name, len(i.Features), len(names))
	}
	for idx := range names {
		if i.Features[idx] != names[idx] {
			return fmt.Errorf("%w: artifact %s slot %d is %q, expected %q",
				ErrInvalidArtifact, i.Name, idx, i.Features[idx], names[idx])
		}
	}
	return nil
}
