package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/generation.yaml"

func LoadGenerationConfig() (*GenerationConfig, error) {
	path := os.Getenv("GENERATION_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg GenerationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default is used when no config file is present.
func Default() *GenerationConfig {
	cfg := &GenerationConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *GenerationConfig) {
	g := &cfg.Generation
	if g.DefaultModel.MaxTokens == 0 {
		g.DefaultModel.MaxTokens = 512
	}
	if g.SectionsConcurrency == 0 {
		g.SectionsConcurrency = 4
	}

	resolved := make(map[string]*ModelConfig, len(g.Tasks)+len(g.TaskOverrides))
	for task, model := range g.Tasks {
		if model != nil {
			resolved[normalizeTask(task)] = model
		}
	}
	for task, override := range g.TaskOverrides {
		merged := override.apply(g.DefaultModel)
		resolved[normalizeTask(task)] = &merged
	}
	g.Tasks = resolved
}

func (c *GenerationConfig) Validate() error {
	g := c.Generation
	if err := g.DefaultModel.validate("default_model"); err != nil {
		return err
	}
	for task, model := range g.Tasks {
		if err := model.validate("task " + task); err != nil {
			return err
		}
	}
	if g.SectionsConcurrency < 0 {
		return fmt.Errorf("negative sections_concurrency: %d", g.SectionsConcurrency)
	}
	return nil
}

func (m *ModelConfig) validate(name string) error {
	if m.MaxTokens < 0 {
		return fmt.Errorf("%s: negative max_tokens: %d", name, m.MaxTokens)
	}
	if m.Temperature < 0 || m.Temperature > 1 {
		return fmt.Errorf("%s: invalid temperature: %f", name, m.Temperature)
	}
	return nil
}

// ModelFor returns the model parameters for a task, falling back to the default.
func (c *GenerationConfig) ModelFor(task string) ModelConfig {
	if model, ok := c.Generation.Tasks[normalizeTask(task)]; ok && model != nil {
		return *model
	}
	return c.Generation.DefaultModel
}

func normalizeTask(task string) string {
	return strings.ToLower(strings.TrimSpace(task))
}
