package predict

import (
	"errors"
	"fmt"

	"github.com/Skufu/multidisease/internal/disease"
	"github.com/Skufu/multidisease/internal/model"
)

// Label is the binary output of a classifier.
type Label int

const (
	Negative Label = 0
	Positive Label = 1
)

var (
	ErrUnexpectedLabel = errors.New("classifier returned a label outside {0, 1}")
	ErrClassifierPanic = errors.New("classifier panicked")
	ErrNoModel         = errors.New("no model loaded")
)

// Invoke runs c on vec. A label other than 0 or 1 is an error, as is any
// panic raised inside the classifier.
func Invoke(c model.Classifier, vec disease.Vector) (label Label, err error) {
	defer func() {
		if r := recover(); r != nil {
			label, err = 0, fmt.Errorf("%w: %v", ErrClassifierPanic, r)
		}
	}()

	raw, err := c.Predict(vec)
	if err != nil {
		return 0, fmt.Errorf("prediction failed: %w", err)
	}

	switch Label(raw) {
	case Negative, Positive:
		return Label(raw), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrUnexpectedLabel, raw)
	}
}

// MapLabel turns a label into the disease's diagnosis message.
func MapLabel(d disease.Disease, l Label) string {
	switch l {
	case Positive:
		return d.Positive
	case Negative:
		return d.Negative
	default:
		return ErrorMessage(fmt.Errorf("%w: got %d", ErrUnexpectedLabel, int(l)))
	}
}

// ErrorMessage is the user-visible text for a failed prediction.
func ErrorMessage(err error) string {
	return "Error: " + err.Error()
}
