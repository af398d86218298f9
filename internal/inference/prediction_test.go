package inference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name       string
		p          float64
		label      string
		confidence float64
	}{
		{name: "certain cancer", p: 1, label: LabelCancer, confidence: 100},
		{name: "likely cancer", p: 0.87654, label: LabelCancer, confidence: 87.65},
		{name: "just above threshold", p: 0.5001, label: LabelCancer, confidence: 50.01},
		{name: "threshold is non-cancer", p: 0.5, label: LabelNonCancer, confidence: 50},
		{name: "likely non-cancer", p: 0.2, label: LabelNonCancer, confidence: 80},
		{name: "certain non-cancer", p: 0, label: LabelNonCancer, confidence: 100},
		{name: "rounding", p: 0.123456, label: LabelNonCancer, confidence: 87.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpret(tt.p)
			assert.NoError(t, err)
			assert.Equal(t, tt.label, got.Label)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
			assert.Equal(t, tt.p, got.Probability)
			assert.GreaterOrEqual(t, got.Confidence, 50.0)
			assert.LessOrEqual(t, got.Confidence, 100.0)
		})
	}
}

func TestInterpret_InvalidProbability(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Interpret(p)
		assert.ErrorIs(t, err, ErrInvalidProbability, "p=%v", p)
	}
}
