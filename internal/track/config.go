package track

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything the tracker needs to rank, select and
// abbreviate. It maps 1:1 onto the YAML config file.
type Config struct {
	Tags struct {
		// Attention tags always outrank the priority list.
		Attention []Tag `yaml:"attention"`
		// Priority is the configured ranking, most important first.
		Priority []Tag `yaml:"priority"`
		// Normal tags are interchangeable ordinary conversation markers.
		Normal []Tag `yaml:"normal"`
	} `yaml:"tags"`

	// Policy is "ordered" (default) or "simple".
	Policy string `yaml:"policy"`

	// IgnoreTags are stripped from incoming content before the
	// registry sees it; content carrying only ignored tags is not
	// tracked at all.
	IgnoreTags []Tag `yaml:"ignoreTags"`

	// RemoveOnDisconnect drops a context's entry when its connection
	// is lost.
	RemoveOnDisconnect bool `yaml:"removeOnDisconnect"`

	Shorten struct {
		// MinLength is the starting prefix length.
		MinLength int `yaml:"minLength"`
		// Mode is "off", "on" or "max".
		Mode string `yaml:"mode"`
	} `yaml:"shorten"`

	// Exclude lists channel names the host never tracks; Include, if
	// non-empty, restricts tracking to exactly those names.
	Exclude []string `yaml:"exclude"`
	Include []string `yaml:"include"`

	// ShowCounts appends the unseen count to each status segment.
	ShowCounts bool `yaml:"showCounts"`

	// Colors maps a tag to a terminal color for the status line.
	Colors map[Tag]string `yaml:"colors"`
}

// DefaultConfig returns the stock tracker configuration.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Tags.Attention = []Tag{"alert"}
	cfg.Tags.Priority = []Tag{"error", "mention", "notice", "chatter"}
	cfg.Tags.Normal = []Tag{"chatter"}
	cfg.Policy = "ordered"
	cfg.RemoveOnDisconnect = true
	cfg.Shorten.MinLength = 1
	cfg.Shorten.Mode = "on"
	cfg.ShowCounts = true
	cfg.Colors = map[Tag]string{
		"alert":   "196",
		"error":   "160",
		"mention": "214",
		"notice":  "75",
		"chatter": "243",
	}
	return cfg
}

// LoadConfig reads a YAML config file, fills unset fields from the
// defaults and validates the result. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the tracker cannot run with.
func (c Config) Validate() error {
	switch c.Policy {
	case "ordered", "simple":
	default:
		return fmt.Errorf("unknown policy %q (want ordered or simple)", c.Policy)
	}
	switch c.Shorten.Mode {
	case "off", "on", "max":
	default:
		return fmt.Errorf("unknown shorten mode %q (want off, on or max)", c.Shorten.Mode)
	}
	if c.Shorten.MinLength < 1 {
		return fmt.Errorf("shorten minLength must be >= 1, got %d", c.Shorten.MinLength)
	}
	for _, t := range append(append([]Tag{}, c.Tags.Attention...), c.Tags.Priority...) {
		if t == "" {
			return fmt.Errorf("empty tag in ranking")
		}
	}
	return nil
}

// SelectorPolicy translates the policy string.
func (c Config) SelectorPolicy() SelectorPolicy {
	if c.Policy == "simple" {
		return PolicySimple
	}
	return PolicyOrdered
}

// ShortenMode translates the shorten mode string.
func (c Config) ShortenMode() Aggressiveness {
	switch c.Shorten.Mode {
	case "off":
		return ShortenOff
	case "max":
		return ShortenMax
	default:
		return ShortenOn
	}
}
