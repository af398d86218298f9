package inference

import (
	"errors"
	"fmt"
	"math"
)

// Labels produced by the classifier.
const (
	LabelCancer    = "Esophageal Cancer"
	LabelNonCancer = "Non-Esophageal Cancer"
)

// ErrInvalidProbability is returned when the model output is not a finite number in [0, 1].
var ErrInvalidProbability = errors.New("model output is not a probability")

// Prediction is the interpreted model output.
type Prediction struct {
	Label       string
	Confidence  float64 // percentage of the winning class, rounded to 2 decimals
	Probability float64 // raw cancer probability
}

// ValidateProbability checks that p can be interpreted.
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	return nil
}

// Interpret maps the cancer probability to a label and confidence.
// p > 0.5 is cancer, anything else (0.5 included) is non-cancer.
func Interpret(p float64) (Prediction, error) {
	if err := ValidateProbability(p); err != nil {
		return Prediction{}, err
	}

	if p > 0.5 {
		return Prediction{Label: LabelCancer, Confidence: round2(p * 100), Probability: p}, nil
	}
	return Prediction{Label: LabelNonCancer, Confidence: round2((1 - p) * 100), Probability: p}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
