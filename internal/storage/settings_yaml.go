package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stickyswitch/internal/core/model"
	"stickyswitch/internal/platform"
	"stickyswitch/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	LeftText            *string `yaml:"left_text,omitempty"`
	RightText           *string `yaml:"right_text,omitempty"`
	Initial             string  `yaml:"initial,omitempty"`
	AnimationType       string  `yaml:"animation_type,omitempty"`
	TextVisibility      string  `yaml:"text_visibility,omitempty"`
	AnimationDurationMs *int    `yaml:"animation_duration_ms,omitempty"`
	SliderColor         string  `yaml:"slider_color,omitempty"`
	SwitchColor         string  `yaml:"switch_color,omitempty"`
	TextColor           string  `yaml:"text_color,omitempty"`
	LogLevel            string  `yaml:"log_level,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from a YAML file path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to a YAML file path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	durationMs := int(settings.AnimationDuration / time.Millisecond)
	fileData := yamlSettings{
		LeftText:            &settings.LeftText,
		RightText:           &settings.RightText,
		Initial:             settings.Initial.String(),
		AnimationType:       string(settings.AnimationType),
		TextVisibility:      string(settings.TextVisibility),
		AnimationDurationMs: &durationMs,
		SliderColor:         settings.SliderColor,
		SwitchColor:         settings.SwitchColor,
		TextColor:           settings.TextColor,
		LogLevel:            settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.LeftText != nil {
		settings.LeftText = *fileData.LeftText
	}
	if fileData.RightText != nil {
		settings.RightText = *fileData.RightText
	}
	if fileData.Initial != "" {
		settings.Initial = model.ParseDirection(fileData.Initial)
	}
	if fileData.AnimationType != "" {
		settings.AnimationType = model.ParseAnimationType(fileData.AnimationType)
	}
	if fileData.TextVisibility != "" {
		settings.TextVisibility = model.ParseTextVisibility(fileData.TextVisibility)
	}
	if fileData.AnimationDurationMs != nil && *fileData.AnimationDurationMs >= 0 {
		settings.AnimationDuration = time.Duration(*fileData.AnimationDurationMs) * time.Millisecond
	}

	if _, err := preferences.ParseColor(fileData.SliderColor); err == nil {
		settings.SliderColor = fileData.SliderColor
	}
	if _, err := preferences.ParseColor(fileData.SwitchColor); err == nil {
		settings.SwitchColor = fileData.SwitchColor
	}
	if _, err := preferences.ParseColor(fileData.TextColor); err == nil {
		settings.TextColor = fileData.TextColor
	}
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
}
