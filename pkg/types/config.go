// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and enum types shared by the CLI and the
// acronym and title pipelines.
package types

// AcronymProfile names an acronym shape rule. The two profiles produce
// different results and are never merged.
type AcronymProfile string

const (
	// ProfileStrict matches 2-20 characters: an uppercase letter followed by
	// uppercase letters or digits. Used when inferring definitions.
	ProfileStrict AcronymProfile = "strict"

	// ProfileLoose matches 2-10 characters and also allows hyphen or slash
	// groups inside the token (e.g. "COVID-19", "I/O"). Used for plain lists.
	ProfileLoose AcronymProfile = "loose"
)

// TitleMode selects the capitalization applied to heading text.
type TitleMode string

const (
	// ModeUppercase is title case: every word capitalized except stop words
	// after the first.
	ModeUppercase TitleMode = "Uppercase"
	// ModeCapitalize is sentence case.
	ModeCapitalize TitleMode = "Capitalize"
	// ModeAllCaps uppercases every letter.
	ModeAllCaps TitleMode = "AllCaps"
)

// TitleModes lists the supported modes in CLI help order.
var TitleModes = []TitleMode{ModeUppercase, ModeCapitalize, ModeAllCaps}

// Valid reports whether m is one of the supported modes.
func (m TitleMode) Valid() bool {
	for _, known := range TitleModes {
		if m == known {
			return true
		}
	}
	return false
}

// LogConfig holds reporter settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// AcronymConfig holds settings for the acronym pipeline.
type AcronymConfig struct {
	// Extension is the file extension searched in folder inputs (default ".tex").
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// Profile selects the acronym shape. Empty means strict, or loose when
	// definitions are disabled.
	Profile AcronymProfile `json:"profile,omitempty" yaml:"profile,omitempty" mapstructure:"profile"`

	// WindowMultiplier is the number of characters scanned per acronym letter
	// when inferring a definition (default 30).
	WindowMultiplier int `json:"window_multiplier" yaml:"window_multiplier" mapstructure:"window_multiplier"`

	// BlockTitle is the chapter title of the exported LaTeX block (default "Acronyms").
	BlockTitle string `json:"block_title" yaml:"block_title" mapstructure:"block_title"`

	// BlockLabel is the \label of the exported LaTeX block (default "cha:acronyme").
	BlockLabel string `json:"block_label" yaml:"block_label" mapstructure:"block_label"`
}

// TitleConfig holds settings for the heading rewriter.
type TitleConfig struct {
	// Extension is the file extension searched in folder inputs (default ".tex").
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// Mode is the capitalization style (default Uppercase).
	Mode TitleMode `json:"mode" yaml:"mode" mapstructure:"mode"`

	// OutputDir receives rewritten files when not editing in place (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// Config groups all settings read from latex-doctor.yaml.
type Config struct {
	Log      LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Acronyms AcronymConfig `json:"acronyms" yaml:"acronyms" mapstructure:"acronyms"`
	Titles   TitleConfig   `json:"titles" yaml:"titles" mapstructure:"titles"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Acronyms: AcronymConfig{
			Extension:        ".tex",
			WindowMultiplier: 30,
			BlockTitle:       "Acronyms",
			BlockLabel:       "cha:acronyme",
		},
		Titles: TitleConfig{
			Extension: ".tex",
			Mode:      ModeUppercase,
			OutputDir: "output",
		},
	}
}
