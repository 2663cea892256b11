package fusion

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// #region validation

// Validate checks that the distribution's weights sum to 1.0 within tolerance.
func Validate(w WeightDistribution) error {
	sum := w.Sum()
	if math.Abs(sum-1.0) > WeightTolerance {
		return &InvalidWeightDistributionError{Sum: sum}
	}
	return nil
}

// resolveWeights substitutes the default distribution when the caller passed
// nil. An explicit distribution is used as given, zero fields included.
func resolveWeights(weights *WeightDistribution) WeightDistribution {
	if weights == nil {
		return DefaultWeights()
	}
	return *weights
}

// #endregion validation

// #region weighted-fusion

// WeightedFusion assembles the layers in fixed order base → brain → persona,
// annotating each block with the layer's raw numeric weight. A layer is
// emitted only when its text is non-empty and its weight is positive.
func WeightedFusion(layers Layers, weights *WeightDistribution) (string, error) {
	w := resolveWeights(weights)
	if err := Validate(w); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, name := range LayerOrder {
		text := layers.Text(name)
		wt := w.Of(name)
		if text == "" || wt <= 0 {
			continue
		}
		fmt.Fprintf(&b, "[%s | weight: %s]\n%s\n\n", identifiers[name], formatWeight(wt), text)
	}
	return strings.TrimSpace(b.String()), nil
}

// #endregion weighted-fusion

// #region semantic-fusion

// SemanticWeightedFusion assembles the layers like WeightedFusion but marks
// each block with its display name and semantic emphasis label, then appends
// a conflict-resolution directive ordering the layers by descending weight.
// The directive is appended even when a single layer is present, so a
// downstream consumer can always locate it.
func SemanticWeightedFusion(layers Layers, weights *WeightDistribution) (string, error) {
	w := resolveWeights(weights)
	if err := Validate(w); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, name := range LayerOrder {
		text := layers.Text(name)
		wt := w.Of(name)
		if text == "" || wt <= 0 {
			continue
		}
		fmt.Fprintf(&b, "[%s - %s]\n%s\n\n", displayNames[name], EmphasisFor(wt), text)
	}
	b.WriteString(conflictDirective(w))
	return strings.TrimSpace(b.String()), nil
}

// #endregion semantic-fusion

// #region priority-order

// PriorityOrder returns the layers with positive weight sorted by descending
// weight. Equal weights fall back to persona > brain > base.
func PriorityOrder(w WeightDistribution) []LayerName {
	var order []LayerName
	for _, name := range LayerOrder {
		if w.Of(name) > 0 {
			order = append(order, name)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		wi, wj := w.Of(order[i]), w.Of(order[j])
		if wi != wj {
			return wi > wj
		}
		return tieRank[order[i]] < tieRank[order[j]]
	})
	return order
}

// conflictDirective renders the numbered priority list plus the closing
// instruction to prefer higher-weighted layers.
func conflictDirective(w WeightDistribution) string {
	var b strings.Builder
	b.WriteString("== CONFLICT RESOLUTION ==\n")
	b.WriteString("When instructions conflict, apply this priority order:\n")
	for i, name := range PriorityOrder(w) {
		fmt.Fprintf(&b, "%d. %s instructions (weight: %s)\n", i+1, identifiers[name], formatWeight(w.Of(name)))
	}
	b.WriteString("Always prefer the higher-weighted layer when resolving conflicts.")
	return b.String()
}

// #endregion priority-order

// #region dispatch

// FusePrompts dispatches to the named fusion strategy.
func FusePrompts(layers Layers, strategy Strategy, weights *WeightDistribution) (string, error) {
	switch strategy {
	case StrategyWeighted:
		return WeightedFusion(layers, weights)
	case StrategySemanticWeighted:
		return SemanticWeightedFusion(layers, weights)
	default:
		return "", &UnknownStrategyError{Strategy: string(strategy)}
	}
}

// #endregion dispatch

// #region helpers

// formatWeight renders a weight without trailing zeros ("0.5", not "0.500").
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// #endregion helpers
