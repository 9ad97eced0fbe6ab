package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/donut/internal/models"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyHours        = "hours"
	KeyMinutes      = "minutes"
	KeySeconds      = "seconds"
	KeyTheme        = "theme"
	KeyForeground   = "foreground-color"
	KeyBackground   = "background-color"
	KeyChimeCommand = "chime-command"
	KeyBell         = "bell"
	KeyThemesFile   = "themes-file"
)

// Settings is the resolved widget configuration.
type Settings struct {
	Duration        models.Duration
	Theme           string
	ForegroundColor string
	BackgroundColor string
	ChimeCommand    string
	Bell            bool
	ThemesFile      string
	Palettes        []Palette
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Duration: models.Duration{
			Hours:   DefaultHours,
			Minutes: DefaultMinutes,
			Seconds: DefaultSeconds,
		},
		Theme:           DefaultThemeName,
		ForegroundColor: DefaultForeground,
		BackgroundColor: DefaultBackground,
		Bell:            true,
		Palettes:        BuiltinPalettes,
	}
}

// Dir returns the configuration directory ($HOME/.config/donut).
func Dir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// Load reads the config file (configPath, or the default location), DONUT_* environment
// variables and overrides, in increasing priority. Invalid values never fail the load: they are
// replaced by defaults and returned as warnings. The error is reserved for unreadable files.
func Load(configPath string, overrides map[string]any) (Settings, []error, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(Dir(), ConfigFileName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Defaults(), nil, fmt.Errorf("read config: %w", err)
		}
	}
	for k, val := range overrides {
		v.Set(k, val)
	}
	s, warnings := Resolve(v)
	return s, warnings, nil
}

// Resolve turns raw viper values into Settings, falling back to defaults field by field.
func Resolve(v *viper.Viper) (Settings, []error) {
	s := Defaults()
	var warnings []error

	s.Duration.Hours = segment(v, KeyHours, s.Duration.Hours, &warnings)
	s.Duration.Minutes = segment(v, KeyMinutes, s.Duration.Minutes, &warnings)
	s.Duration.Seconds = segment(v, KeySeconds, s.Duration.Seconds, &warnings)

	if raw := v.Get(KeyThemesFile); raw != nil {
		if path, ok := raw.(string); ok {
			s.ThemesFile = path
		} else {
			warnings = append(warnings, fieldErr(KeyThemesFile, raw, ErrWrongType))
		}
	} else {
		s.ThemesFile = filepath.Join(Dir(), ThemesFileName)
	}
	extra, err := LoadPalettes(s.ThemesFile)
	if err != nil {
		warnings = append(warnings, err)
	}
	s.Palettes = MergePalettes(BuiltinPalettes, extra)

	if raw := v.Get(KeyTheme); raw != nil {
		name := cast.ToString(raw)
		if _, _, ok := FindPalette(s.Palettes, name); ok {
			s.Theme = name
		} else {
			warnings = append(warnings, fieldErr(KeyTheme, raw, ErrUnknownTheme))
		}
	}
	p, _, _ := FindPalette(s.Palettes, s.Theme)
	s.Theme = p.Name
	s.ForegroundColor = p.Foreground
	s.BackgroundColor = p.Background

	s.ForegroundColor = color(v, KeyForeground, s.ForegroundColor, &warnings)
	s.BackgroundColor = color(v, KeyBackground, s.BackgroundColor, &warnings)

	if raw := v.Get(KeyChimeCommand); raw != nil {
		if cmd, ok := raw.(string); ok {
			s.ChimeCommand = strings.TrimSpace(cmd)
		} else {
			warnings = append(warnings, fieldErr(KeyChimeCommand, raw, ErrWrongType))
		}
	}
	if raw := v.Get(KeyBell); raw != nil {
		b, err := cast.ToBoolE(raw)
		if err != nil {
			warnings = append(warnings, fieldErr(KeyBell, raw, ErrWrongType))
		} else {
			s.Bell = b
		}
	}
	return s, warnings
}

// ValidateSegment checks a single hours/minutes/seconds value.
func ValidateSegment(field string, n int) error {
	if n < models.SegmentMin || n > models.SegmentMax {
		return fieldErr(field, n, ErrOutOfRange)
	}
	return nil
}

// ValidateDuration checks all three segments.
func ValidateDuration(d models.Duration) error {
	return errors.Join(
		ValidateSegment(KeyHours, d.Hours),
		ValidateSegment(KeyMinutes, d.Minutes),
		ValidateSegment(KeySeconds, d.Seconds),
	)
}

func segment(v *viper.Viper, key string, def int, warnings *[]error) int {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	if _, isBool := raw.(bool); isBool {
		*warnings = append(*warnings, fieldErr(key, raw, ErrWrongType))
		return def
	}
	n, err := toSegment(raw)
	if err != nil {
		*warnings = append(*warnings, fieldErr(key, raw, ErrWrongType))
		return def
	}
	if err := ValidateSegment(key, n); err != nil {
		*warnings = append(*warnings, err)
		return def
	}
	return n
}

// toSegment reads a segment value. Strings are decimal, so zero-padded input like "08"
// is eight, not an octal literal.
func toSegment(raw any) (int, error) {
	if str, ok := raw.(string); ok {
		return strconv.Atoi(strings.TrimSpace(str))
	}
	return cast.ToIntE(raw)
}

func color(v *viper.Viper, key, def string, warnings *[]error) string {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	s, ok := raw.(string)
	if !ok {
		*warnings = append(*warnings, fieldErr(key, raw, ErrWrongType))
		return def
	}
	if err := ValidateColor(s); err != nil {
		*warnings = append(*warnings, fieldErr(key, raw, ErrInvalidColor))
		return def
	}
	return strings.TrimSpace(s)
}
