package mdparser

import "fmt"

// CalloutDetection controls how blockquotes are rewritten into callouts.
type CalloutDetection string

const (
	CalloutDetectNone   CalloutDetection = "none"
	CalloutDetectMarker CalloutDetection = "marker"
	CalloutDetectLabel  CalloutDetection = "label"
	CalloutDetectAll    CalloutDetection = "all"
)

// HTMLTagDetection controls whether raw inline HTML tags with extension
// equivalents (<mark>, <ins>, <del>) are folded into extension nodes.
type HTMLTagDetection string

const (
	HTMLTagDetectNone   HTMLTagDetection = "none"
	HTMLTagDetectInline HTMLTagDetection = "inline"
)

// FrontMatterMode controls YAML front matter handling.
type FrontMatterMode string

const (
	FrontMatterYAML FrontMatterMode = "yaml"
	FrontMatterNone FrontMatterMode = "none"
)

// SanitizeMode controls what happens to private-use code points that are
// already present in the source before protection runs.
type SanitizeMode string

const (
	SanitizeStrip SanitizeMode = "strip"
	SanitizeKeep  SanitizeMode = "keep"
)

// Config configures extended markdown parsing behavior. The zero value is
// usable; empty fields take their defaults.
type Config struct {
	CalloutDetection CalloutDetection `json:"calloutDetection,omitempty"`
	HTMLTagDetection HTMLTagDetection `json:"htmlTagDetection,omitempty"`
	FrontMatter      FrontMatterMode  `json:"frontMatter,omitempty"`
	Sanitize         SanitizeMode     `json:"sanitize,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.CalloutDetection == "" {
		c.CalloutDetection = CalloutDetectAll
	}
	if c.HTMLTagDetection == "" {
		c.HTMLTagDetection = HTMLTagDetectNone
	}
	if c.FrontMatter == "" {
		c.FrontMatter = FrontMatterYAML
	}
	if c.Sanitize == "" {
		c.Sanitize = SanitizeStrip
	}

	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.CalloutDetection != CalloutDetectNone &&
		c.CalloutDetection != CalloutDetectMarker &&
		c.CalloutDetection != CalloutDetectLabel &&
		c.CalloutDetection != CalloutDetectAll {
		return fmt.Errorf("invalid calloutDetection %q", c.CalloutDetection)
	}

	if c.HTMLTagDetection != HTMLTagDetectNone &&
		c.HTMLTagDetection != HTMLTagDetectInline {
		return fmt.Errorf("invalid htmlTagDetection %q", c.HTMLTagDetection)
	}

	if c.FrontMatter != FrontMatterYAML && c.FrontMatter != FrontMatterNone {
		return fmt.Errorf("invalid frontMatter %q", c.FrontMatter)
	}

	if c.Sanitize != SanitizeStrip && c.Sanitize != SanitizeKeep {
		return fmt.Errorf("invalid sanitize %q", c.Sanitize)
	}

	return nil
}
