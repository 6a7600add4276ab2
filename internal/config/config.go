// Package config loads xmldoc options from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	// KeepNewLines joins prose lines with newlines instead of spaces.
	KeepNewLines bool `yaml:"keepNewLines"`
	// Resolve matches documented members against introspected sources.
	Resolve bool `yaml:"resolve"`
	// Exclude holds gitignore-style patterns for sources to skip.
	Exclude  []string `yaml:"exclude"`
	Markdown Markdown `yaml:"markdown"`
	Index    Index    `yaml:"index"`
}

// Markdown configures HTML rendering of the Markdown output.
type Markdown struct {
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hardWraps"`
}

// Index configures the member index.
type Index struct {
	// MaxMembers caps the number of ranked members; 0 keeps all of them.
	MaxMembers int `yaml:"maxMembers"`
	// Focus keeps members whose id contains it, plus their neighbours.
	Focus string `yaml:"focus"`
	// Kinds keeps only members of these kinds when non-empty.
	Kinds []string `yaml:"kinds"`
}

// MemberKinds are the member kinds an index can be narrowed to.
var MemberKinds = []string{
	"class",
	"struct",
	"interface",
	"enum",
	"type",
	"field",
	"property",
	"method",
	"event",
	"unknown member",
}

// Extensions understood by the HTML renderer.
var Extensions = []string{
	"gfm",
	"table",
	"strikethrough",
	"linkify",
	"tasklist",
	"definitionlist",
	"footnote",
	"typographer",
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Resolve: true,
		Markdown: Markdown{
			Extensions: []string{"gfm"},
		},
	}
}

// Parse overlays YAML data onto c. Keys absent from data keep their
// current values; unknown keys are an error.
func (c *Config) Parse(data []byte) error {
	return c.Load(bytes.NewReader(data))
}

// Load overlays YAML read from r onto c.
func (c *Config) Load(r io.Reader) error {
	return c.decode(yaml.NewDecoder(r))
}

func (c *Config) decode(dec *yaml.Decoder) error {
	dec.KnownFields(true)

	loaded := *c
	loaded.Exclude = slices.Clone(c.Exclude)
	loaded.Markdown.Extensions = slices.Clone(c.Markdown.Extensions)
	loaded.Index.Kinds = slices.Clone(c.Index.Kinds)

	if err := dec.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing YAML config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	*c = loaded
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Index.MaxMembers < 0 {
		return fmt.Errorf("index.maxMembers must not be negative, got %d", c.Index.MaxMembers)
	}
	for _, kind := range c.Index.Kinds {
		if !slices.Contains(MemberKinds, kind) {
			return fmt.Errorf("unknown member kind %q in index.kinds", kind)
		}
	}
	for _, ext := range c.Markdown.Extensions {
		if !slices.Contains(Extensions, ext) {
			return fmt.Errorf("unknown markdown extension %q", ext)
		}
	}
	return nil
}
