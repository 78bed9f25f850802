package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/ciricc/go-vlm-bench/internal/dataset"
	"github.com/ciricc/go-vlm-bench/internal/metrics"
	"github.com/ciricc/go-vlm-bench/internal/vlm"
	"github.com/ciricc/go-vlm-bench/pkg/benchreport"
)

// Prompt is the fixed instruction sent with every image.
const Prompt = "Describe the image."

// placeholderReference stands in for real ground truth; the accuracy
// metric stays a placeholder until the dataset carries answers.
const placeholderReference = "a photo"

var ErrEmptyDataset = errors.New("no benchmark images found")

type RunnerOpts struct {
	// Output receives the human-readable summary (default stdout).
	Output io.Writer
	// Progress receives the inline progress line (default stderr).
	Progress io.Writer
}

type RunnerOpt func(opts *RunnerOpts)

func WithOutput(w io.Writer) RunnerOpt {
	return func(opts *RunnerOpts) {
		opts.Output = w
	}
}

func WithProgress(w io.Writer) RunnerOpt {
	return func(opts *RunnerOpts) {
		opts.Progress = w
	}
}

// Runner drives one sequential benchmark pass: load the model, iterate the
// folder dataset one image at a time, time each generation call, and
// aggregate the results. Images are never batched or processed
// concurrently — overlapping requests would change what the measured
// latency means.
type Runner struct {
	build    vlm.Builder
	logger   *slog.Logger
	output   io.Writer
	progress io.Writer
}

func NewRunner(build vlm.Builder, logger *slog.Logger, opts ...RunnerOpt) *Runner {
	o := RunnerOpts{
		Output:   os.Stdout,
		Progress: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{
		build:    build,
		logger:   logger,
		output:   o.Output,
		progress: o.Progress,
	}
}

// Run benchmarks the checkpoint at modelPath over every image in imgDir.
// Any load, decode, or inference failure aborts the run; there is no
// retry or partial-result reporting.
//
// TTFT is approximated with the duration of the whole generation call.
// The per-sample elapsed time feeds both the TTFT and latency
// accumulators, so the two averages are always equal.
func (r *Runner) Run(ctx context.Context, modelPath, imgDir, device string) (benchreport.Result, error) {
	r.logger.InfoContext(ctx, "loading model", "path", modelPath, "device", device)

	model, transforms, err := r.build(ctx, modelPath, device, vlm.WithLogger(r.logger))
	if err != nil {
		return benchreport.Result{}, fmt.Errorf("load model: %w", err)
	}
	defer model.Close()

	model.Eval()

	ds, err := dataset.New(imgDir, transforms.Eval)
	if err != nil {
		return benchreport.Result{}, err
	}
	if ds.Len() == 0 {
		return benchreport.Result{}, fmt.Errorf("%w in directory %q", ErrEmptyDataset, imgDir)
	}

	r.logger.InfoContext(ctx, "benchmarking", "images", ds.Len(), "dir", imgDir)

	var totalTTFT, totalLatency float64
	predictions := make([]string, 0, ds.Len())
	references := make([]string, 0, ds.Len())
	samples := make([]benchreport.SampleMetrics, 0, ds.Len())

	for i := 0; i < ds.Len(); i++ {
		s, err := ds.At(i)
		if err != nil {
			return benchreport.Result{}, fmt.Errorf("sample %d: %w", i, err)
		}

		start := time.Now()
		output, err := model.Generate(ctx, vlm.GenerateRequest{
			Image:  s.Tensor,
			Prompt: Prompt,
		})
		if err != nil {
			return benchreport.Result{}, fmt.Errorf("generate for %q: %w", s.Path, err)
		}
		elapsed := time.Since(start).Seconds()

		if len(output) == 0 {
			return benchreport.Result{}, fmt.Errorf("model returned no output for %q", s.Path)
		}

		totalTTFT += elapsed
		totalLatency += elapsed

		predictions = append(predictions, output[0])
		references = append(references, placeholderReference)
		samples = append(samples, benchreport.SampleMetrics{
			Path:           s.Path,
			LatencySeconds: elapsed,
		})

		printProgress(r.progress, i+1, ds.Len())
	}
	fmt.Fprintln(r.progress)

	res := benchreport.Result{
		TimestampRFC3339:  time.Now().Format(time.RFC3339),
		ModelPath:         modelPath,
		ImageDir:          imgDir,
		Device:            device,
		OS:                runtime.GOOS,
		Arch:              runtime.GOARCH,
		CPUNumLogical:     runtime.NumCPU(),
		Images:            ds.Len(),
		AvgTTFTSeconds:    totalTTFT / float64(ds.Len()),
		AvgLatencySeconds: totalLatency / float64(ds.Len()),
		Accuracy:          metrics.SimpleAccuracy(predictions, references),
		Samples:           samples,
	}

	if err := res.WriteSummary(r.output); err != nil {
		return benchreport.Result{}, fmt.Errorf("write summary: %w", err)
	}

	return res, nil
}

func printProgress(w io.Writer, done, total int) {
	// Minimal single-line progress indicator.
	fmt.Fprintf(w, "\rBenchmarking: %d/%d", done, total)
}
