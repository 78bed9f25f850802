package vlm

import (
	"context"
	"log/slog"

	"github.com/ciricc/go-vlm-bench/internal/dataset"
	"github.com/ciricc/go-vlm-bench/internal/model/sample"
)

// GenerateRequest carries one preprocessed image and the text prompt to
// condition generation on.
type GenerateRequest struct {
	Image  *sample.Tensor
	Prompt string
}

// Model is the capability contract the benchmark needs from a loaded
// vision-language model. The concrete model is supplied by the model
// building side; the harness only toggles eval mode, generates, and closes.
type Model interface {
	// Eval switches the model to inference mode, disabling any
	// training-only behavior before the first Generate call.
	Eval()

	// Generate runs text generation conditioned on the image and prompt
	// and returns the generated sequences. A successful call returns at
	// least one sequence.
	Generate(ctx context.Context, req GenerateRequest) ([]string, error)

	Close() error
}

// Transforms groups the preprocessing functions matched to a checkpoint.
type Transforms struct {
	// Eval is the deterministic preprocessing used for benchmarking.
	Eval dataset.Transform
}

// Builder loads a checkpoint and returns a ready-to-run model together
// with its preprocessing transforms. The device identifier is passed
// through to the serving backend untouched.
type Builder func(ctx context.Context, modelPath, device string, opts ...BuildOpt) (Model, Transforms, error)

type BuildOpts struct {
	Logger *slog.Logger
}

type BuildOpt func(opts *BuildOpts)

func WithLogger(logger *slog.Logger) BuildOpt {
	return func(opts *BuildOpts) {
		opts.Logger = logger
	}
}

func buildOpts(defaultOpts BuildOpts, opts ...BuildOpt) BuildOpts {
	o := defaultOpts
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
