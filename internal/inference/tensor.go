// Package inference turns uploaded images into model input and model output
// into a labelled prediction.
package inference

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Model input geometry.
const (
	InputSize     = 224
	InputChannels = 3
)

// DefaultMaxPixels bounds width*height of an upload before it is decoded.
const DefaultMaxPixels = 50_000_000

// ErrInvalidImage is returned when the upload cannot be decoded as an image
// or its dimensions are out of bounds.
var ErrInvalidImage = errors.New("invalid image")

// Tensor is a single 224x224 RGB image in HWC order with values in [0, 1].
type Tensor struct {
	Data []float32
}

// Bytes returns the tensor data as little-endian float32 values.
func (t Tensor) Bytes() []byte {
	buf := make([]byte, 4*len(t.Data))
	for i, v := range t.Data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// Preprocess decodes a PNG, JPEG or GIF image, resizes it to 224x224 with
// nearest-neighbour sampling and scales every RGB channel to [0, 1].
// Images wider*higher than maxPixels are rejected before decoding.
func Preprocess(r io.ReadSeeker, maxPixels int) (Tensor, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return Tensor{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Tensor{}, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	if maxPixels > 0 && cfg.Width*cfg.Height > maxPixels {
		return Tensor{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidImage, cfg.Width, cfg.Height, maxPixels)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Tensor{}, err
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return Tensor{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	data := make([]float32, 0, InputSize*InputSize*InputChannels)
	for y := 0; y < InputSize; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < InputSize; x++ {
			px := row[4*x : 4*x+3]
			data = append(data,
				float32(px[0])/255,
				float32(px[1])/255,
				float32(px[2])/255,
			)
		}
	}

	return Tensor{Data: data}, nil
}
