package dataset

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	_ "image/jpeg"
	_ "image/png"

	"github.com/samber/lo"

	"github.com/ciricc/go-vlm-bench/internal/model/sample"
)

// recognizedExtensions are matched case-sensitively, mirroring the glob
// patterns the benchmark was originally defined with.
var recognizedExtensions = []string{".jpg", ".png"}

var ErrIndexOutOfRange = errors.New("dataset index out of range")

// FolderDataset is an ordered, restartable view over the image files found
// directly inside a directory (non-recursive). Enumeration order is
// lexicographic by filename so that runs over an unchanged directory are
// reproducible. The file list is fixed at construction time.
type FolderDataset struct {
	dir       string
	files     []string
	transform Transform
}

func New(dir string, transform Transform) (*FolderDataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory %q: %w", dir, err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() {
			return "", false
		}
		return entry.Name(), lo.Contains(recognizedExtensions, filepath.Ext(entry.Name()))
	})
	sort.Strings(files)

	if transform == nil {
		transform = ResizeNormalize(DefaultImageSize)
	}

	return &FolderDataset{
		dir:       dir,
		files:     files,
		transform: transform,
	}, nil
}

func (d *FolderDataset) Len() int {
	return len(d.files)
}

// At decodes the i-th image, applies the transform and returns the
// resulting sample. Access is deterministic: the same index always yields
// the same path and equivalent tensor content.
func (d *FolderDataset) At(idx int) (*sample.Sample, error) {
	if idx < 0 || idx >= len(d.files) {
		return nil, fmt.Errorf("%w: index %d, dataset has %d images", ErrIndexOutOfRange, idx, len(d.files))
	}

	path := filepath.Join(d.dir, d.files[idx])

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	t, err := d.transform(img)
	if err != nil {
		return nil, fmt.Errorf("transform image %q: %w", path, err)
	}

	return sample.NewSample(t, path), nil
}
