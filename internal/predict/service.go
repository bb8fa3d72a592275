package predict

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/multidisease/internal/disease"
	"github.com/Skufu/multidisease/internal/store"
)

// Diagnosis is the outcome of one prediction request. Exactly one of Label or
// Error is set.
type Diagnosis struct {
	ID           string         `json:"id"`
	Disease      disease.ID     `json:"disease"`
	Label        *int           `json:"label,omitempty"`
	Positive     bool           `json:"positive"`
	Message      string         `json:"message"`
	Error        string         `json:"error,omitempty"`
	Vector       disease.Vector `json:"vector,omitempty"`
	Model        string         `json:"model,omitempty"`
	ModelVersion string         `json:"modelVersion,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Failed reports whether the prediction produced an error instead of a label.
func (d Diagnosis) Failed() bool {
	return d.Error != ""
}

// Service runs the assemble, invoke and map steps for a disease.
type Service struct {
	registry *Registry
	history  store.Store
	logger   *logrus.Logger
}

// NewService creates a prediction service. history may be nil.
func NewService(registry *Registry, history store.Store, logger *logrus.Logger) *Service {
	return &Service{
		registry: registry,
		history:  history,
		logger:   logger,
	}
}

// Predict computes the diagnosis for inputs. Failures are reported in the
// returned Diagnosis and never reach the label mapper.
func (s *Service) Predict(ctx context.Context, d disease.Disease, inputs map[string]float64) Diagnosis {
	start := time.Now()
	diag := Diagnosis{
		ID:        uuid.NewString(),
		Disease:   d.ID,
		CreatedAt: start.UTC(),
	}
	log := s.logger.WithFields(logrus.Fields{
		"disease":       d.ID,
		"prediction_id": diag.ID,
	})

	label, err := s.run(d, inputs, &diag)
	if err != nil {
		diag.Error = err.Error()
		diag.Message = ErrorMessage(err)
		log.WithError(err).Warn("prediction failed")
	} else {
		l := int(label)
		diag.Label = &l
		diag.Positive = label == Positive
		diag.Message = MapLabel(d, label)
		log.WithFields(logrus.Fields{
			"label":    l,
			"duration": time.Since(start),
		}).Info("prediction completed")
	}

	s.record(ctx, diag, inputs, log)
	return diag
}

func (s *Service) run(d disease.Disease, inputs map[string]float64, diag *Diagnosis) (Label, error) {
	vec, err := d.Assemble(inputs)
	if err != nil {
		return 0, err
	}
	diag.Vector = vec

	m, ok := s.registry.Model(d.ID)
	if !ok {
		return 0, fmt.Errorf("%w for %s", ErrNoModel, d.ID)
	}
	diag.Model = m.Name
	diag.ModelVersion = m.Version

	return Invoke(m, vec)
}

func (s *Service) record(ctx context.Context, diag Diagnosis, inputs map[string]float64, log *logrus.Entry) {
	if s.history == nil {
		return
	}

	p := &store.Prediction{
		ID:        diag.ID,
		Disease:   string(diag.Disease),
		Inputs:    inputs,
		Vector:    diag.Vector,
		Label:     diag.Label,
		Message:   diag.Message,
		Error:     diag.Error,
		Model:     diag.Model,
		CreatedAt: diag.CreatedAt,
	}
	if err := s.history.Record(ctx, p); err != nil {
		log.WithError(err).Error("failed to record prediction")
	}
}

// History returns the most recent predictions, newest first. It returns
// store.ErrDisabled when no history store is configured.
func (s *Service) History(ctx context.Context, id disease.ID, limit int) ([]store.Prediction, error) {
	if s.history == nil {
		return nil, store.ErrDisabled
	}
	return s.history.Recent(ctx, string(id), limit)
}

// Registry exposes the loaded models.
func (s *Service) Registry() *Registry {
	return s.registry
}
