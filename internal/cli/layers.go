package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

// #region layer-flags

// layerFlags holds the inline and file variants of the three layer inputs.
// A file flag wins over its inline counterpart.
type layerFlags struct {
	base, brain, persona             string
	baseFile, brainFile, personaFile string
}

func (f *layerFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.base, "base", "", "base layer text")
	flags.StringVar(&f.brain, "brain", "", "brain configuration layer text")
	flags.StringVar(&f.persona, "persona", "", "persona layer text")
	flags.StringVar(&f.baseFile, "base-file", "", "read base layer from file")
	flags.StringVar(&f.brainFile, "brain-file", "", "read brain layer from file")
	flags.StringVar(&f.personaFile, "persona-file", "", "read persona layer from file")
}

func (f *layerFlags) resolve() (fusion.Layers, error) {
	base, err := layerText(f.base, f.baseFile)
	if err != nil {
		return fusion.Layers{}, fmt.Errorf("base layer: %w", err)
	}
	brain, err := layerText(f.brain, f.brainFile)
	if err != nil {
		return fusion.Layers{}, fmt.Errorf("brain layer: %w", err)
	}
	persona, err := layerText(f.persona, f.personaFile)
	if err != nil {
		return fusion.Layers{}, fmt.Errorf("persona layer: %w", err)
	}
	return fusion.Layers{Base: base, Brain: brain, Persona: persona}, nil
}

func layerText(inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// #endregion layer-flags

// #region weight-parsing

// parseWeights parses a "base,brain,persona" triple like "0.2,0.3,0.5".
func parseWeights(s string) (fusion.WeightDistribution, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fusion.WeightDistribution{}, fmt.Errorf("expected three comma-separated weights, got %d", len(parts))
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fusion.WeightDistribution{}, fmt.Errorf("weight %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return fusion.WeightDistribution{Base: vals[0], Brain: vals[1], Persona: vals[2]}, nil
}

// #endregion weight-parsing
