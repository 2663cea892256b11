package resolver

import (
	"strings"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

// #region context

// Context describes the overlay situation for a single fusion call.
type Context struct {
	PersonaActive  bool
	PersonaContent string
}

// #endregion context

// #region resolve

// Resolve maps a context to a weight distribution. Binary policy: a missing
// or blank persona yields the brain-dominant split, an active persona the
// persona-dominant split. Always returns a distribution summing to 1.0.
func Resolve(ctx Context) fusion.WeightDistribution {
	if !ctx.PersonaActive || strings.TrimSpace(ctx.PersonaContent) == "" {
		return fusion.WeightDistribution{Base: 0.4, Brain: 0.6, Persona: 0.0}
	}
	return fusion.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5}
}

// #endregion resolve

// #region presets

// Preset names a fixed weight distribution. Presets are pure table lookups,
// no computation.
type Preset string

const (
	PresetBalanced        Preset = "balanced"
	PresetSafetyFirst     Preset = "safety-first"
	PresetBrainDominant   Preset = "brain-dominant"
	PresetPersonaDominant Preset = "persona-dominant"
)

var presets = map[Preset]fusion.WeightDistribution{
	PresetBalanced:        {Base: 0.34, Brain: 0.33, Persona: 0.33},
	PresetSafetyFirst:     {Base: 0.6, Brain: 0.3, Persona: 0.1},
	PresetBrainDominant:   {Base: 0.4, Brain: 0.6, Persona: 0.0},
	PresetPersonaDominant: {Base: 0.2, Brain: 0.3, Persona: 0.5},
}

// ResolvePreset looks up a named preset. The second return value reports
// whether the preset exists.
func ResolvePreset(p Preset) (fusion.WeightDistribution, bool) {
	w, ok := presets[p]
	return w, ok
}

// Presets returns the supported preset names in a stable order.
func Presets() []Preset {
	return []Preset{PresetBalanced, PresetSafetyFirst, PresetBrainDominant, PresetPersonaDominant}
}

// #endregion presets
