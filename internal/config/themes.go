package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Palette is a named foreground/background pair.
type Palette struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// BuiltinPalettes lists the themes offered by the theme selector, in selector order.
var BuiltinPalettes = []Palette{
	{Name: "light", Background: "#ffffff", Foreground: "#000000"},
	{Name: "dark", Background: "#000000", Foreground: "#ffffff"},
	{Name: "red", Background: "#ffffff", Foreground: "#ff2841"},
	{Name: "blue", Background: "#ffffff", Foreground: "#0061ff"},
	{Name: "green", Background: "#ffffff", Foreground: "#37ce46"},
	{Name: "orange", Background: "#ffffff", Foreground: "#ffa426"},
	{Name: "pink", Background: "#ffffff", Foreground: "#ff68a2"},
}

type themesFile struct {
	Themes []Palette `yaml:"themes"`
}

// LoadPalettes reads extra themes from a YAML file of the form
//
//	themes:
//	  - name: solarized
//	    background: "#002b36"
//	    foreground: "#93a1a1"
//
// A missing file yields no themes and no error.
func LoadPalettes(path string) ([]Palette, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read themes: %w", err)
	}
	var f themesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse themes %s: %w", path, err)
	}
	out := make([]Palette, 0, len(f.Themes))
	for i, p := range f.Themes {
		p.Name = strings.ToLower(strings.TrimSpace(p.Name))
		if p.Name == "" {
			return nil, fmt.Errorf("theme %d: %w", i, fieldErr("name", p.Name, ErrUnknownTheme))
		}
		if err := ValidateColor(p.Background); err != nil {
			return nil, fmt.Errorf("theme %s: %w", p.Name, fieldErr("background", p.Background, err))
		}
		if err := ValidateColor(p.Foreground); err != nil {
			return nil, fmt.Errorf("theme %s: %w", p.Name, fieldErr("foreground", p.Foreground, err))
		}
		out = append(out, p)
	}
	return out, nil
}

// MergePalettes appends extra palettes to base; an extra palette replaces a base one of the same name.
func MergePalettes(base, extra []Palette) []Palette {
	out := append([]Palette(nil), base...)
	for _, p := range extra {
		replaced := false
		for i := range out {
			if out[i].Name == p.Name {
				out[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	return out
}

// FindPalette looks a theme up by name or by selector index.
func FindPalette(palettes []Palette, name string) (Palette, int, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, p := range palettes {
		if p.Name == key {
			return p, i, true
		}
	}
	if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < len(palettes) {
		return palettes[idx], idx, true
	}
	return Palette{}, -1, false
}

// ValidateColor accepts #rgb and #rrggbb hex colours.
func ValidateColor(s string) error {
	if _, err := colorful.Hex(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return nil
}
