package fusion

import "fmt"

// #region layers

// LayerName identifies one of the three instruction layers.
type LayerName string

const (
	LayerBase    LayerName = "base"
	LayerBrain   LayerName = "brain"
	LayerPersona LayerName = "persona"
)

// LayerOrder is the fixed assembly order for fusion output.
var LayerOrder = [3]LayerName{LayerBase, LayerBrain, LayerPersona}

// tieRank breaks equal-weight ties in the conflict-resolution directive:
// persona > brain > base.
var tieRank = map[LayerName]int{
	LayerPersona: 0,
	LayerBrain:   1,
	LayerBase:    2,
}

// Layers bundles the three instruction texts. Empty text is valid and
// simply omits the layer from fusion output.
type Layers struct {
	Base    string
	Brain   string
	Persona string
}

// Text returns the content of the named layer.
func (l Layers) Text(name LayerName) string {
	switch name {
	case LayerBase:
		return l.Base
	case LayerBrain:
		return l.Brain
	case LayerPersona:
		return l.Persona
	}
	return ""
}

// identifiers maps layer names to the uppercase form used in markers
// and the conflict-resolution directive.
var identifiers = map[LayerName]string{
	LayerBase:    "BASE",
	LayerBrain:   "BRAIN",
	LayerPersona: "PERSONA",
}

// displayNames maps layer names to the long form used by semantic fusion.
var displayNames = map[LayerName]string{
	LayerBase:    "BASE",
	LayerBrain:   "BRAIN CONFIGURATION",
	LayerPersona: "PERSONA INSTRUCTIONS",
}

// #endregion layers

// #region weights

// WeightTolerance is the allowed deviation of a distribution's sum from 1.0.
const WeightTolerance = 0.001

// WeightDistribution splits relative importance across the three layers.
// The three values must sum to 1.0 within WeightTolerance.
type WeightDistribution struct {
	Base    float64
	Brain   float64
	Persona float64
}

// Sum returns the total of the three weights.
func (w WeightDistribution) Sum() float64 {
	return w.Base + w.Brain + w.Persona
}

// Of returns the weight of the named layer.
func (w WeightDistribution) Of(name LayerName) float64 {
	switch name {
	case LayerBase:
		return w.Base
	case LayerBrain:
		return w.Brain
	case LayerPersona:
		return w.Persona
	}
	return 0
}

// DefaultWeights is the distribution used when the caller omits one entirely.
func DefaultWeights() WeightDistribution {
	return WeightDistribution{Base: 0.5, Brain: 0.3, Persona: 0.2}
}

// #endregion weights

// #region strategy

// Strategy names a fusion strategy for dispatch.
type Strategy string

const (
	StrategyWeighted         Strategy = "weighted"
	StrategySemanticWeighted Strategy = "semanticWeighted"
)

// #endregion strategy

// #region emphasis

// SemanticEmphasis is the priority label substituted for a raw numeric weight.
type SemanticEmphasis string

const (
	EmphasisCritical SemanticEmphasis = "CRITICAL PRIORITY - MUST FOLLOW"
	EmphasisHigh     SemanticEmphasis = "HIGH IMPORTANCE"
	EmphasisModerate SemanticEmphasis = "MODERATE GUIDANCE"
	EmphasisOptional SemanticEmphasis = "OPTIONAL CONSIDERATION"
)

// EmphasisFor translates a weight into its semantic label. Intervals are
// closed-open; a boundary value belongs to the higher label.
func EmphasisFor(weight float64) SemanticEmphasis {
	switch {
	case weight >= 0.6:
		return EmphasisCritical
	case weight >= 0.4:
		return EmphasisHigh
	case weight >= 0.2:
		return EmphasisModerate
	default:
		return EmphasisOptional
	}
}

// #endregion emphasis

// #region errors

// InvalidWeightDistributionError reports a distribution whose weights do not
// sum to 1.0 within tolerance. The engine never auto-normalizes.
type InvalidWeightDistributionError struct {
	Sum float64
}

func (e *InvalidWeightDistributionError) Error() string {
	return fmt.Sprintf("invalid weight distribution: weights sum to %.4f, expected 1.0 (tolerance %.3f)", e.Sum, WeightTolerance)
}

// UnknownStrategyError reports a fusion strategy name outside the supported set.
type UnknownStrategyError struct {
	Strategy string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown fusion strategy %q (supported: %s, %s)", e.Strategy, StrategyWeighted, StrategySemanticWeighted)
}

// #endregion errors
