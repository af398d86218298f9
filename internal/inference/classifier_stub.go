//go:build !gocv
// +build !gocv

package inference

import (
	"context"
	"errors"
)

// ErrBackendUnavailable is returned when the binary was built without the gocv tag.
var ErrBackendUnavailable = errors.New("gocv build tag is not enabled")

type GoCVClassifier struct{}

// NewGoCVClassifier always fails without OpenCV, so the server refuses to start.
func NewGoCVClassifier(modelPath string) (*GoCVClassifier, error) {
	_ = modelPath
	return nil, ErrBackendUnavailable
}

// Predict returns an error if the build lacks the gocv tag.
func (c *GoCVClassifier) Predict(ctx context.Context, t Tensor) (float64, error) {
	_ = ctx
	_ = t
	return 0, ErrBackendUnavailable
}

func (c *GoCVClassifier) Close() error {
	return nil
}
