package vlm

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/agent-api/core"
	"github.com/agent-api/core/agent"
	"github.com/agent-api/core/agent/bootstrap"
	"github.com/agent-api/ollama"
	"github.com/go-logr/logr"

	"github.com/ciricc/go-vlm-bench/internal/dataset"
	"github.com/ciricc/go-vlm-bench/internal/model/sample"
)

const defaultSystemPrompt = "You are a visual analysis assistant. Answer with a short description of the image."

// OllamaModel runs generation through a local Ollama server via an
// agent-api agent. Device placement is owned by the server, so the device
// identifier from the CLI is carried only for reporting.
type OllamaModel struct {
	agent    *agent.Agent
	logger   *slog.Logger
	evalMode bool
}

var _ Model = (*OllamaModel)(nil)

// Build loads the checkpoint manifest at modelPath and connects an
// Ollama-backed model for it. Build satisfies Builder.
func Build(ctx context.Context, modelPath, device string, opts ...BuildOpt) (Model, Transforms, error) {
	o := buildOpts(BuildOpts{Logger: slog.Default()}, opts...)

	manifest, err := LoadManifest(modelPath)
	if err != nil {
		return nil, Transforms{}, fmt.Errorf("load model from %q: %w", modelPath, err)
	}

	// the provider speaks logr, the rest of the harness slog
	lgr := logr.FromSlogHandler(o.Logger.Handler())

	provider := ollama.NewProvider(&ollama.ProviderOpts{
		Logger:  &lgr,
		BaseURL: manifest.Model.BaseURL,
		Port:    manifest.Model.Port,
	})
	if err := provider.UseModel(ctx, &core.Model{
		ID: manifest.Model.ID,
	}); err != nil {
		return nil, Transforms{}, fmt.Errorf("use model %q: %w", manifest.Model.ID, err)
	}

	a, err := agent.NewAgent(
		bootstrap.WithProvider(provider),
		bootstrap.WithSystemPrompt(manifest.Model.SystemPrompt),
	)
	if err != nil {
		return nil, Transforms{}, fmt.Errorf("create agent: %w", err)
	}

	o.Logger.InfoContext(ctx, "model loaded",
		"path", modelPath,
		"model_id", manifest.Model.ID,
		"device", device,
	)

	m := &OllamaModel{
		agent:  a,
		logger: o.Logger,
	}

	return m, Transforms{
		Eval: dataset.ResizeNormalize(manifest.Preprocess.ImageSize),
	}, nil
}

// Eval switches to inference mode. The serving backend has no train-time
// behavior to disable, so this only records the toggle.
func (m *OllamaModel) Eval() {
	m.evalMode = true
}

func (m *OllamaModel) Generate(ctx context.Context, req GenerateRequest) ([]string, error) {
	if req.Image == nil {
		return nil, errors.New("generate: nil image tensor")
	}
	if !m.evalMode {
		m.logger.WarnContext(ctx, "generate called before Eval")
	}

	imgPath, cleanup, err := writeTempPNG(req.Image)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	response, err := m.agent.Run(
		ctx,
		agent.WithInput(req.Prompt),
		agent.WithImagePath(imgPath),
	)
	if err != nil {
		return nil, fmt.Errorf("run generation: %w", err)
	}

	if len(response.Messages) == 0 {
		return nil, errors.New("no response messages received from model")
	}

	// The last message is the model's answer, not the prompt.
	content := response.Messages[len(response.Messages)-1].Content

	return []string{content}, nil
}

func (m *OllamaModel) Close() error {
	return nil
}

// writeTempPNG materializes the CHW tensor back into an 8-bit PNG for the
// image-path transport the provider expects.
func writeTempPNG(t *sample.Tensor) (string, func(), error) {
	f, err := os.CreateTemp("", "vlmbench-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("create temp image: %w", err)
	}

	if err := png.Encode(f, tensorToImage(t)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

func tensorToImage(t *sample.Tensor) *image.NRGBA {
	h, w := t.Shape[1], t.Shape[2]
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampByte(t.At(0, y, x)),
				G: clampByte(t.At(1, y, x)),
				B: clampByte(t.At(2, y, x)),
				A: 0xff,
			})
		}
	}

	return img
}

func clampByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
