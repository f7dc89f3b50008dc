package ai

// ModelPreset represents the model usage preset
type ModelPreset string

const (
	PresetCreative ModelPreset = "creative"
	PresetPrecise  ModelPreset = "precise"
	PresetBalanced ModelPreset = "balanced"
)

// ModelConfig holds model configuration
type ModelConfig struct {
	Temperature      float32
	TopP             float32
	TopK             int
	MaxOutputTokens  int
	ResponseMimeType string // "application/json" or "text/plain"
}

// OpenAIModelConfig holds OpenAI-specific configuration
type OpenAIModelConfig struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// GenerateMetadata contains metadata about the generation
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

// GenerateOptions holds options for AI generation
type GenerateOptions struct {
	Model     string
	JSONMode  bool
	Overrides *ModelConfig
}

// GetPresetConfig returns the configuration for a preset
func GetPresetConfig(preset ModelPreset) ModelConfig {
	switch preset {
	case PresetCreative:
		return ModelConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 4096,
		}
	case PresetPrecise:
		return ModelConfig{
			Temperature:     0.1,
			TopP:            0.9,
			TopK:            20,
			MaxOutputTokens: 2048,
		}
	case PresetBalanced:
		return ModelConfig{
			Temperature:     0.3,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 4096,
		}
	default:
		return GetPresetConfig(PresetBalanced)
	}
}

// GetOpenAIPresetConfig returns OpenAI configuration for a preset
func GetOpenAIPresetConfig(preset ModelPreset) OpenAIModelConfig {
	switch preset {
	case PresetCreative:
		return OpenAIModelConfig{
			Temperature: 0.7,
			MaxTokens:   4096,
			TopP:        0.95,
		}
	case PresetPrecise:
		return OpenAIModelConfig{
			Temperature: 0.1,
			MaxTokens:   2048,
			TopP:        0.9,
		}
	case PresetBalanced:
		return OpenAIModelConfig{
			Temperature: 0.3,
			MaxTokens:   4096,
			TopP:        0.95,
		}
	default:
		return GetOpenAIPresetConfig(PresetBalanced)
	}
}
