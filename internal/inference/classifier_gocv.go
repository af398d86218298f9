//go:build gocv
// +build gocv

package inference

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/sbilibin2017/esophai/internal/logger"
)

// GoCVClassifier runs the binary classifier through the OpenCV DNN module.
type GoCVClassifier struct {
	mu  sync.Mutex // SetInput and Forward mutate the network
	net gocv.Net
}

// NewGoCVClassifier loads the model once. Any format gocv.ReadNet understands
// (ONNX, TensorFlow frozen graph, ...) can be used.
func NewGoCVClassifier(modelPath string) (*GoCVClassifier, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load model from %s", modelPath)
	}

	logger.Log.Infow("model loaded", "path", modelPath, "backend", "opencv")
	return &GoCVClassifier{net: net}, nil
}

// Predict returns the cancer probability for one preprocessed image.
func (c *GoCVClassifier) Predict(ctx context.Context, t Tensor) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(t.Data) != InputSize*InputSize*InputChannels {
		return 0, fmt.Errorf("unexpected tensor length %d", len(t.Data))
	}

	mat, err := gocv.NewMatFromBytes(InputSize, InputSize, gocv.MatTypeCV32FC3, t.Bytes())
	if err != nil {
		return 0, fmt.Errorf("failed to build input mat: %w", err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0, image.Pt(InputSize, InputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	c.mu.Lock()
	c.net.SetInput(blob, "")
	out := c.net.Forward("")
	c.mu.Unlock()
	defer out.Close()

	if out.Empty() || out.Total() < 1 {
		return 0, fmt.Errorf("model returned no output")
	}

	p := float64(out.GetFloatAt(0, 0))
	if err := ValidateProbability(p); err != nil {
		return 0, err
	}

	return p, nil
}

// Close releases the network.
func (c *GoCVClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.net.Close()
}
