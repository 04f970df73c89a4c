package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_pipeline.yaml
var defaultPipelineYAML []byte

// ErrNoRegions is returned when a pipeline lists no regions
var ErrNoRegions = errors.New("no regions configured")

// Pipeline configures the fetch and merge stages and where the viewer reads from
type Pipeline struct {
	Endpoint    string        `yaml:"endpoint"`
	Regions     []string      `yaml:"regions"`
	DataDir     string        `yaml:"data_dir"`
	MergedFile  string        `yaml:"merged_file"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	LogLevel    string        `yaml:"log_level"`
}

// DefaultPipeline returns the built-in configuration
func DefaultPipeline() (Pipeline, error) {
	var p Pipeline
	if len(defaultPipelineYAML) == 0 {
		return p, fmt.Errorf("embedded default pipeline is empty")
	}
	if err := yaml.Unmarshal(defaultPipelineYAML, &p); err != nil {
		return p, fmt.Errorf("decode default pipeline: %w", err)
	}
	return p, nil
}

// DefaultPipelineYAML returns the embedded defaults as written
func DefaultPipelineYAML() []byte {
	return defaultPipelineYAML
}

// LoadPipeline returns the defaults overlaid with the file at path. An empty
// path returns the defaults. Keys absent from the file keep their default.
func LoadPipeline(path string) (Pipeline, error) {
	p, err := DefaultPipeline()
	if err != nil {
		return p, err
	}
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode config %s: %w", path, err)
	}
	return p, p.Validate()
}

// Validate checks the fields every stage relies on
func (p Pipeline) Validate() error {
	if strings.TrimSpace(p.Endpoint) == "" {
		return errors.New("endpoint must not be empty")
	}
	if len(p.Regions) == 0 {
		return ErrNoRegions
	}
	for _, r := range p.Regions {
		if strings.TrimSpace(r) == "" {
			return errors.New("region names must not be empty")
		}
	}
	if strings.TrimSpace(p.DataDir) == "" {
		return errors.New("data_dir must not be empty")
	}
	if strings.TrimSpace(p.MergedFile) == "" {
		return errors.New("merged_file must not be empty")
	}
	if p.HTTPTimeout < 0 {
		return errors.New("http_timeout must not be negative")
	}
	return nil
}

// MergedPath returns the merged file location. A bare file name lives inside DataDir.
func (p Pipeline) MergedPath() string {
	if filepath.IsAbs(p.MergedFile) || strings.ContainsRune(p.MergedFile, filepath.Separator) {
		return p.MergedFile
	}
	return filepath.Join(p.DataDir, p.MergedFile)
}

// Marshal renders the configuration as YAML
func (p Pipeline) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
