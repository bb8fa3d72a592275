package model

import (
	"fmt"
	"math"
)

// Linear is a binary linear classifier (linear SVC or logistic regression):
// label 1 when w·z + b > threshold, where z is x standardized by the optional
// scaler.
type Linear struct {
	weights   []float64
	intercept float64
	threshold float64
	mean      []float64
	scale     []float64
}

func newLinear(a artifact) (*Linear, error) {
	n := len(a.Features)
	if len(a.Weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d features", ErrInvalidArtifact, len(a.Weights), n)
	}

	l := &Linear{
		weights:   a.Weights,
		intercept: a.Intercept,
		threshold: a.Threshold,
	}
	if a.Scaler != nil {
		if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
			return nil, fmt.Errorf("%w: scaler must have %d entries", ErrInvalidArtifact, n)
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return nil, fmt.Errorf("%w: zero scale for feature %s", ErrInvalidArtifact, a.Features[i])
			}
		}
		l.mean = a.Scaler.Mean
		l.scale = a.Scaler.Scale
	}
	return l, nil
}

// Decision returns the signed distance of x from the separating hyperplane.
func (l *Linear) Decision(x []float64) (float64, error) {
	if len(x) != len(l.weights) {
		return 0, fmt.Errorf("%w: got %d, model expects %d", ErrDimension, len(x), len(l.weights))
	}

	sum := l.intercept
	for i, w := range l.weights {
		v := x[i]
		if l.scale != nil {
			v = (v - l.mean[i]) / l.scale[i]
		}
		sum += w * v
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("decision value is not finite")
	}
	return sum, nil
}

func (l *Linear) Predict(x []float64) (int, error) {
	d, err := l.Decision(x)
	if err != nil {
		return 0, err
	}
	if d > l.threshold {
		return 1, nil
	}
	return 0, nil
}
