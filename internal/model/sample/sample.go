package sample

import (
	"fmt"
)

// Tensor is a channel-first (CHW) float32 image tensor, the input format
// the model side expects. Values are normalized to [0, 1] by the eval
// transform. A Tensor is not mutated after the transform produced it.
type Tensor struct {
	Data  []float32
	Shape [3]int // channels, height, width
}

func NewTensor(channels, height, width int) *Tensor {
	return &Tensor{
		Data:  make([]float32, channels*height*width),
		Shape: [3]int{channels, height, width},
	}
}

func (t *Tensor) NumElements() int {
	return t.Shape[0] * t.Shape[1] * t.Shape[2]
}

func (t *Tensor) At(c, y, x int) float32 {
	return t.Data[t.index(c, y, x)]
}

func (t *Tensor) Set(c, y, x int, v float32) {
	t.Data[t.index(c, y, x)] = v
}

func (t *Tensor) index(c, y, x int) int {
	return c*t.Shape[1]*t.Shape[2] + y*t.Shape[2] + x
}

func (t *Tensor) Validate() error {
	if len(t.Data) != t.NumElements() {
		return fmt.Errorf("tensor data length %d does not match shape %v", len(t.Data), t.Shape)
	}
	return nil
}

// Sample pairs a preprocessed image tensor with the path of the file it
// was decoded from.
type Sample struct {
	Tensor *Tensor
	Path   string
}

func NewSample(
	tensor *Tensor,
	path string,
) *Sample {
	return &Sample{
		Tensor: tensor,
		Path:   path,
	}
}
