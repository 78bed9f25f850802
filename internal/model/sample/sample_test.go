package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorIndexing(t *testing.T) {
	tensor := NewTensor(3, 2, 4)

	require.NoError(t, tensor.Validate())
	assert.Equal(t, 24, tensor.NumElements())

	tensor.Set(2, 1, 3, 0.75)
	assert.Equal(t, float32(0.75), tensor.At(2, 1, 3))
	assert.Equal(t, float32(0.75), tensor.Data[len(tensor.Data)-1])
}

func TestTensorValidateMismatch(t *testing.T) {
	tensor := &Tensor{
		Data:  make([]float32, 5),
		Shape: [3]int{3, 2, 4},
	}
	require.Error(t, tensor.Validate())
}

func TestNewSample(t *testing.T) {
	tensor := NewTensor(3, 1, 1)
	s := NewSample(tensor, "/data/img/a.jpg")

	assert.Same(t, tensor, s.Tensor)
	assert.Equal(t, "/data/img/a.jpg", s.Path)
}
