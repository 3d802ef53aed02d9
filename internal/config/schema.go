package config

// GenerationConfig is loaded from configs/generation.yaml.
type GenerationConfig struct {
	Generation Generation `yaml:"generation"`
}

type Generation struct {
	DefaultModel        ModelConfig              `yaml:"default_model"`
	TaskOverrides       map[string]*TaskOverride `yaml:"tasks"`
	SectionsConcurrency int                      `yaml:"sections_concurrency"`
	PersistResults      bool                     `yaml:"persist_results"`

	// Tasks holds the resolved per-task parameters, keyed by normalized task.
	Tasks map[string]*ModelConfig `yaml:"-"`
}

// ModelConfig holds per-call model parameters. Retry selects the client's
// retrying invoke; the pipeline itself never retries.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

// TaskOverride is a per-task entry in the YAML file. A nil field inherits the
// default model; a set field wins even when it is zero.
type TaskOverride struct {
	MaxTokens   *int     `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature"`
	Retry       *bool    `yaml:"retry"`
}

func (o *TaskOverride) apply(base ModelConfig) ModelConfig {
	if o == nil {
		return base
	}
	if o.MaxTokens != nil {
		base.MaxTokens = *o.MaxTokens
	}
	if o.Temperature != nil {
		base.Temperature = *o.Temperature
	}
	if o.Retry != nil {
		base.Retry = *o.Retry
	}
	return base
}
