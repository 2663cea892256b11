package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureLayers mirrors fusion.Layers with JSON tags.
type FixtureLayers struct {
	Base    string `json:"base"`
	Brain   string `json:"brain"`
	Persona string `json:"persona"`
}

// FixtureWeights mirrors fusion.WeightDistribution with JSON tags. A missing
// weights object means the case exercises the default distribution.
type FixtureWeights struct {
	Base    float64 `json:"base"`
	Brain   float64 `json:"brain"`
	Persona float64 `json:"persona"`
}

// FixtureExpect mirrors replay.Expectation with JSON tags.
type FixtureExpect struct {
	Error         string   `json:"error,omitempty"`
	PriorityOrder []string `json:"priority_order,omitempty"`
	ConflictCount *int     `json:"conflict_count,omitempty"`
	Contains      []string `json:"contains,omitempty"`
}

// FixtureCase mirrors replay.Case with JSON tags.
type FixtureCase struct {
	Name     string          `json:"name"`
	Layers   FixtureLayers   `json:"layers"`
	Strategy string          `json:"strategy"`
	Weights  *FixtureWeights `json:"weights,omitempty"`
	Expect   FixtureExpect   `json:"expect"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader

// #region conversion

// ToCases converts the fixture into replayable cases.
func (f *Fixture) ToCases() []Case {
	cases := make([]Case, 0, len(f.Cases))
	for _, fc := range f.Cases {
		c := Case{
			Name: fc.Name,
			Layers: fusion.Layers{
				Base:    fc.Layers.Base,
				Brain:   fc.Layers.Brain,
				Persona: fc.Layers.Persona,
			},
			Strategy: fusion.Strategy(fc.Strategy),
			Expect: Expectation{
				ErrorKind:     fc.Expect.Error,
				ConflictCount: fc.Expect.ConflictCount,
				Contains:      fc.Expect.Contains,
			},
		}
		if fc.Weights != nil {
			c.Weights = &fusion.WeightDistribution{
				Base:    fc.Weights.Base,
				Brain:   fc.Weights.Brain,
				Persona: fc.Weights.Persona,
			}
		}
		for _, name := range fc.Expect.PriorityOrder {
			c.Expect.PriorityOrder = append(c.Expect.PriorityOrder, fusion.LayerName(name))
		}
		cases = append(cases, c)
	}
	return cases
}

// #endregion conversion
