package replay

import (
	"testing"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

func intPtr(n int) *int { return &n }

func TestReplay_MixedOutcomes(t *testing.T) {
	personaDominant := fusion.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5}
	badSum := fusion.WeightDistribution{Base: 0.3, Brain: 0.3, Persona: 0.3}

	cases := []Case{
		{
			Name:     "semantic-ok",
			Layers:   fusion.Layers{Base: "Be verbose.", Brain: "moderate", Persona: "Be concise."},
			Strategy: fusion.StrategySemanticWeighted,
			Weights:  &personaDominant,
		},
		{
			Name:     "invalid-weights",
			Layers:   fusion.Layers{Base: "x"},
			Strategy: fusion.StrategyWeighted,
			Weights:  &badSum,
		},
		{
			Name:     "unknown-strategy",
			Layers:   fusion.Layers{Base: "x"},
			Strategy: fusion.Strategy("bogus"),
			Weights:  &personaDominant,
		},
	}

	results := Replay(cases)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Err != nil {
		t.Fatalf("semantic-ok failed: %v", results[0].Err)
	}
	wantOrder := []fusion.LayerName{fusion.LayerPersona, fusion.LayerBrain, fusion.LayerBase}
	if !sameOrder(results[0].PriorityOrder, wantOrder) {
		t.Errorf("priority order %v, want %v", results[0].PriorityOrder, wantOrder)
	}
	if len(results[0].Conflicts) == 0 {
		t.Error("expected verbosity conflict in semantic-ok case")
	}

	if results[1].ErrorKind != ErrInvalidWeights {
		t.Errorf("expected %s, got %q", ErrInvalidWeights, results[1].ErrorKind)
	}
	if results[2].ErrorKind != ErrUnknownStrategy {
		t.Errorf("expected %s, got %q", ErrUnknownStrategy, results[2].ErrorKind)
	}

	sum := Summarize(results)
	if sum.Total != 3 || sum.Fused != 1 || sum.Failed != 2 || sum.WithConflicts != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestReplay_NilWeightsUseDefaults(t *testing.T) {
	results := Replay([]Case{{
		Name:     "defaults",
		Layers:   fusion.Layers{Base: "a", Brain: "b", Persona: "c"},
		Strategy: fusion.StrategyWeighted,
	}})

	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	// Defaults are base-dominant: 0.5 > 0.3 > 0.2.
	wantOrder := []fusion.LayerName{fusion.LayerBase, fusion.LayerBrain, fusion.LayerPersona}
	if !sameOrder(results[0].PriorityOrder, wantOrder) {
		t.Errorf("priority order %v, want %v", results[0].PriorityOrder, wantOrder)
	}
}

func TestVerify(t *testing.T) {
	personaDominant := fusion.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5}

	cases := []Case{
		{
			Name:     "ok",
			Layers:   fusion.Layers{Base: "Be verbose.", Persona: "Be brief."},
			Strategy: fusion.StrategySemanticWeighted,
			Weights:  &personaDominant,
			Expect: Expectation{
				PriorityOrder: []fusion.LayerName{fusion.LayerPersona, fusion.LayerBrain, fusion.LayerBase},
				ConflictCount: intPtr(1),
				Contains:      []string{"== CONFLICT RESOLUTION =="},
			},
		},
	}

	mismatches := Verify(cases, Replay(cases))
	if len(mismatches) != 0 {
		t.Errorf("expected clean verify, got %v", mismatches)
	}

	// Break the expectation and confirm Verify notices.
	cases[0].Expect.ConflictCount = intPtr(5)
	mismatches = Verify(cases, Replay(cases))
	if len(mismatches) != 1 {
		t.Errorf("expected one mismatch, got %v", mismatches)
	}
}
