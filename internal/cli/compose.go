package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/persona"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/resolver"
)

var composeFlags struct {
	layers       layerFlags
	strategy     string
	weights      string
	preset       string
	db           string
	conversation string
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Fuse the three layers into a single prompt",
	Long: `Compose the base, brain, and persona layers into one system prompt.

Weights come from --weights, from a named --preset, or from the built-in
defaults when neither is given. With --db, the active persona overlay for
--conversation fills the persona layer unless one is passed explicitly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layers, err := composeFlags.layers.resolve()
		if err != nil {
			return err
		}

		if composeFlags.weights != "" && composeFlags.preset != "" {
			return errors.New("--weights and --preset are mutually exclusive")
		}

		var weights *fusion.WeightDistribution
		switch {
		case composeFlags.weights != "":
			w, err := parseWeights(composeFlags.weights)
			if err != nil {
				return err
			}
			weights = &w
		case composeFlags.preset != "":
			w, ok := resolver.ResolvePreset(resolver.Preset(composeFlags.preset))
			if !ok {
				return fmt.Errorf("unknown weight preset %q", composeFlags.preset)
			}
			weights = &w
		}

		if composeFlags.db != "" && layers.Persona == "" {
			overlay, err := activeOverlay(composeFlags.db, composeFlags.conversation)
			if err != nil {
				return err
			}
			if overlay != nil {
				layers.Persona = overlay.Content
			}
		}

		prompt, err := fusion.FusePrompts(layers, fusion.Strategy(composeFlags.strategy), weights)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	},
}

// activeOverlay opens the store just long enough to read the active overlay.
func activeOverlay(dbPath, conversationID string) (*persona.Overlay, error) {
	store, err := persona.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	return store.Active(conversationID)
}

func init() {
	composeFlags.layers.register(composeCmd)
	composeCmd.Flags().StringVar(&composeFlags.strategy, "strategy", string(fusion.StrategySemanticWeighted), "fusion strategy: weighted or semanticWeighted")
	composeCmd.Flags().StringVar(&composeFlags.weights, "weights", "", "explicit weights as base,brain,persona (e.g. 0.2,0.3,0.5)")
	composeCmd.Flags().StringVar(&composeFlags.preset, "preset", "", "named weight preset (see 'fuse presets')")
	composeCmd.Flags().StringVar(&composeFlags.db, "db", "", "persona overlay database path")
	composeCmd.Flags().StringVar(&composeFlags.conversation, "conversation", "default", "conversation id for overlay lookup")
}
