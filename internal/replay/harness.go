package replay

import (
	"errors"
	"strings"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

// #region types

// ErrorKind values classify a fusion failure for fixture comparison.
const (
	ErrInvalidWeights  = "invalid_weights"
	ErrUnknownStrategy = "unknown_strategy"
)

// Case is one recorded fusion interaction to replay through the core.
type Case struct {
	Name     string
	Layers   fusion.Layers
	Strategy fusion.Strategy
	Weights  *fusion.WeightDistribution
	Expect   Expectation
}

// Expectation captures what a replayed case should produce. Zero-value
// fields are not checked.
type Expectation struct {
	ErrorKind     string
	PriorityOrder []fusion.LayerName
	ConflictCount *int
	Contains      []string
}

// Result captures the outcome of replaying one case.
type Result struct {
	Name          string
	Prompt        string
	Err           error
	ErrorKind     string
	PriorityOrder []fusion.LayerName
	Conflicts     []fusion.ConflictRecord
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total         int
	Fused         int
	Failed        int
	WithConflicts int
}

// #endregion types

// #region replay

// Replay runs each case through dispatch and conflict detection. Operates
// entirely in-memory; no state carries over between cases.
func Replay(cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		r := Result{Name: c.Name}

		prompt, err := fusion.FusePrompts(c.Layers, c.Strategy, c.Weights)
		if err != nil {
			r.Err = err
			r.ErrorKind = errorKind(err)
		} else {
			r.Prompt = prompt
			r.PriorityOrder = fusion.PriorityOrder(effectiveWeights(c.Weights))
		}

		r.Conflicts = fusion.DetectConflicts(c.Layers)
		results = append(results, r)
	}
	return results
}

// Summarize aggregates replay results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Fused++
		if len(r.Conflicts) > 0 {
			s.WithConflicts++
		}
	}
	return s
}

// #endregion replay

// #region verify

// Verify compares results against each case's expectations and returns one
// message per mismatch. An empty slice means the run matched.
func Verify(cases []Case, results []Result) []string {
	var mismatches []string
	for i, c := range cases {
		if i >= len(results) {
			mismatches = append(mismatches, c.Name+": no result produced")
			continue
		}
		r := results[i]

		if r.ErrorKind != c.Expect.ErrorKind {
			mismatches = append(mismatches,
				c.Name+": error kind "+quoted(r.ErrorKind)+", expected "+quoted(c.Expect.ErrorKind))
		}
		if len(c.Expect.PriorityOrder) > 0 && !sameOrder(r.PriorityOrder, c.Expect.PriorityOrder) {
			mismatches = append(mismatches,
				c.Name+": priority order "+joinLayers(r.PriorityOrder)+", expected "+joinLayers(c.Expect.PriorityOrder))
		}
		if c.Expect.ConflictCount != nil && len(r.Conflicts) != *c.Expect.ConflictCount {
			mismatches = append(mismatches,
				c.Name+": conflict count mismatch")
		}
		for _, want := range c.Expect.Contains {
			if !strings.Contains(r.Prompt, want) {
				mismatches = append(mismatches,
					c.Name+": prompt missing "+quoted(want))
			}
		}
	}
	return mismatches
}

// #endregion verify

// #region helpers

func effectiveWeights(w *fusion.WeightDistribution) fusion.WeightDistribution {
	if w == nil {
		return fusion.DefaultWeights()
	}
	return *w
}

func errorKind(err error) string {
	var invalid *fusion.InvalidWeightDistributionError
	if errors.As(err, &invalid) {
		return ErrInvalidWeights
	}
	var unknown *fusion.UnknownStrategyError
	if errors.As(err, &unknown) {
		return ErrUnknownStrategy
	}
	return "unexpected"
}

func sameOrder(got, want []fusion.LayerName) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func joinLayers(names []fusion.LayerName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func quoted(s string) string {
	return "\"" + s + "\""
}

// #endregion helpers
