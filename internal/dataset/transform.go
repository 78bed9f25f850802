package dataset

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/ciricc/go-vlm-bench/internal/model/sample"
)

// DefaultImageSize is the square input resolution used when the checkpoint
// does not specify its own.
const DefaultImageSize = 336

// Transform maps a decoded image to the tensor format the model expects.
type Transform func(img image.Image) (*sample.Tensor, error)

// ResizeNormalize returns the default eval transform: rescale to size×size
// and convert to a CHW float32 tensor with values in [0, 1].
func ResizeNormalize(size int) Transform {
	return func(img image.Image) (*sample.Tensor, error) {
		if size <= 0 {
			return nil, fmt.Errorf("invalid transform size: %d", size)
		}

		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

		t := sample.NewTensor(3, size, size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				r, g, b, _ := dst.At(x, y).RGBA()
				t.Set(0, y, x, float32(r)/0xffff)
				t.Set(1, y, x, float32(g)/0xffff)
				t.Set(2, y, x, float32(b)/0xffff)
			}
		}

		return t, nil
	}
}
