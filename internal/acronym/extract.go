// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"github.com/pdiddy/latex-doctor/internal/report"
	"github.com/pdiddy/latex-doctor/internal/texutil"
	"github.com/pdiddy/latex-doctor/pkg/types"
)

// ExtractDefinitions strips comments from tex and maps every acronym of the
// shape to the definition inferred at its first occurrence. Acronyms whose
// definition comes out empty are left out.
func ExtractDefinitions(tex string, shape Shape, multiplier int) *Mapping {
	tex = texutil.StripComments(tex)
	m := NewMapping()
	for _, occ := range shape.Detect(tex) {
		if _, ok := m.Get(occ.Token); ok {
			continue
		}
		def := InferDefinition(tex[:occ.Offset], occ.Token, multiplier)
		if def == "" {
			continue
		}
		m.InsertIfAbsent(occ.Token, def)
	}
	return m
}

// ExtractTokens strips comments from tex and returns the sorted distinct
// acronyms of the shape.
func ExtractTokens(tex string, shape Shape) []string {
	return shape.Tokens(texutil.StripComments(tex))
}

// Options configures Extract.
type Options struct {
	// Profile selects the acronym shape. Empty selects strict, or loose when
	// NoDefinitions is set.
	Profile types.AcronymProfile

	// NoDefinitions skips definition inference and only lists tokens.
	NoDefinitions bool

	// WindowMultiplier scales the scan window (0 means DefaultWindowMultiplier).
	WindowMultiplier int
}

// Result is the outcome of Extract. Tokens is always filled; Definitions is
// empty when definitions were disabled or none could be inferred.
type Result struct {
	Definitions *Mapping
	Tokens      []string
}

// HasDefinitions reports whether at least one definition was inferred.
func (r Result) HasDefinitions() bool {
	return r.Definitions != nil && r.Definitions.Len() > 0
}

// Mapping returns the definitions, or the token list with empty definitions
// when there are none.
func (r Result) Mapping() *Mapping {
	if r.HasDefinitions() {
		return r.Definitions
	}
	return MappingFromTokens(r.Tokens)
}

// Extract runs the acronym pipeline over the full document text.
func Extract(tex string, opts Options, rep report.Reporter) (Result, error) {
	profile := opts.Profile
	if profile == "" && opts.NoDefinitions {
		profile = types.ProfileLoose
	}
	shape, err := ShapeFor(profile)
	if err != nil {
		return Result{}, err
	}

	if opts.NoDefinitions {
		tokens := ExtractTokens(tex, shape)
		rep.Info("extracted acronyms", "profile", shape.Profile, "count", len(tokens))
		return Result{Definitions: NewMapping(), Tokens: tokens}, nil
	}

	defs := ExtractDefinitions(tex, shape, opts.WindowMultiplier)
	if defs.Len() == 0 {
		tokens := ExtractTokens(tex, shape)
		if len(tokens) > 0 {
			rep.Warn("no definitions could be inferred; listing acronyms only", "count", len(tokens))
		} else {
			rep.Info("no acronyms found")
		}
		return Result{Definitions: defs, Tokens: tokens}, nil
	}

	rep.Info("extracted acronyms with definitions", "profile", shape.Profile, "count", defs.Len())
	return Result{Definitions: defs, Tokens: defs.Tokens()}, nil
}
