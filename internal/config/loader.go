package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a variant.
// Search order: customPath -> ~/.jly/configs/<variant>.yaml -> ./configs/<variant>.yaml
// -> embedded default -> hardcoded default.
//
// Files are decoded on top of the variant's defaults, so a custom file only
// needs the keys it changes. An explicit customPath that cannot be read,
// parsed or validated is an error; the implicit locations are skipped when broken.
func Load(variant, customPath string) (GameConfig, error) {
	base, ok := Default(variant)
	if !ok {
		return GameConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(base, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(base, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(base, GetDefaultYAML(variant)); err == nil {
		return cfg, nil
	}
	return base, nil // Fallback to hardcoded if embed fails
}

// decode overlays YAML onto base and validates the result.
func decode(base GameConfig, data []byte) (GameConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jly", "configs", filename)
}
