package tabscroll

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tabscroll/pkg/graphics"
)

// ConfigFile is the file name LoadOptional looks for.
const ConfigFile = "tabscroll.yaml"

// AutoTabHeight sizes the tab section to the tallest tab.
const AutoTabHeight TabHeight = -1

// TabHeight is a fixed tab section height or AutoTabHeight. In YAML it is a
// number or the string "auto".
type TabHeight float64

// IsAuto reports whether the height is measured from the tabs.
func (h TabHeight) IsAuto() bool {
	return h == AutoTabHeight
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *TabHeight) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && strings.EqualFold(strings.TrimSpace(node.Value), "auto") {
		*h = AutoTabHeight
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("tab_section_height: want a number or \"auto\": %w", err)
	}
	*h = TabHeight(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h TabHeight) MarshalYAML() (any, error) {
	if h.IsAuto() {
		return "auto", nil
	}
	return float64(h), nil
}

// Config holds the widget's tunables.
type Config struct {
	// DefaultPage is the page shown after the first layout. Out of range
	// values are clamped.
	DefaultPage int `yaml:"default_page"`
	// TabSectionHeight is the tab strip height, or AutoTabHeight.
	TabSectionHeight TabHeight `yaml:"tab_section_height"`
	// PagingEnabled snaps content to whole pages.
	PagingEnabled bool `yaml:"paging_enabled"`
	// CachePageLimit bounds cached content pages; see EffectiveLimit.
	CachePageLimit int `yaml:"cache_page_limit"`
	// TabGradient fades tabs by distance from the current page.
	TabGradient bool `yaml:"tab_gradient"`
	// ArrowIndicator shows a marker under the centered tab.
	ArrowIndicator bool `yaml:"arrow_indicator"`

	TabSectionColor     graphics.Color `yaml:"tab_section_color"`
	ContentSectionColor graphics.Color `yaml:"content_section_color"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		DefaultPage:         0,
		TabSectionHeight:    AutoTabHeight,
		PagingEnabled:       true,
		CachePageLimit:      3,
		TabGradient:         true,
		ArrowIndicator:      true,
		TabSectionColor:     graphics.ColorWhite,
		ContentSectionColor: graphics.ColorWhite,
	}
}

// Validate checks values that have no sensible clamp.
func (c Config) Validate() error {
	if c.DefaultPage < 0 {
		return fmt.Errorf("default_page must not be negative, got %d", c.DefaultPage)
	}
	if c.TabSectionHeight < 0 && !c.TabSectionHeight.IsAuto() {
		return fmt.Errorf("tab_section_height must be \"auto\" or non-negative, got %v", float64(c.TabSectionHeight))
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// LoadOptional reads tabscroll.yaml from dir if present, returning
// DefaultConfig otherwise.
func LoadOptional(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	return ParseConfig(data)
}
