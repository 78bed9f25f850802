package vlm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ciricc/go-vlm-bench/internal/dataset"
)

const manifestFileName = "model.yaml"

// Manifest describes a checkpoint. It is read from model.yaml inside the
// checkpoint directory; every field has a default so a bare directory of
// weights still loads.
type Manifest struct {
	Model struct {
		ID           string `yaml:"id"`
		BaseURL      string `yaml:"base_url"`
		Port         int    `yaml:"port"`
		SystemPrompt string `yaml:"system_prompt"`
	} `yaml:"model"`

	Preprocess struct {
		ImageSize int `yaml:"image_size"`
	} `yaml:"preprocess"`
}

// LoadManifest resolves the manifest for the checkpoint at modelPath. The
// path itself must exist; the manifest file inside it is optional.
func LoadManifest(modelPath string) (Manifest, error) {
	var m Manifest

	info, err := os.Stat(modelPath)
	if err != nil {
		return m, fmt.Errorf("stat model path: %w", err)
	}

	if info.IsDir() {
		b, err := os.ReadFile(filepath.Join(modelPath, manifestFileName))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &m); err != nil {
				return m, fmt.Errorf("parse model manifest: %w", err)
			}
		case !os.IsNotExist(err):
			return m, fmt.Errorf("read model manifest: %w", err)
		}
	}

	if m.Model.ID == "" {
		m.Model.ID = strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))
	}
	if m.Model.BaseURL == "" {
		m.Model.BaseURL = "http://localhost"
	}
	if m.Model.Port == 0 {
		m.Model.Port = 11434
	}
	if m.Model.SystemPrompt == "" {
		m.Model.SystemPrompt = defaultSystemPrompt
	}
	if m.Preprocess.ImageSize == 0 {
		m.Preprocess.ImageSize = dataset.DefaultImageSize
	}

	return m, nil
}
