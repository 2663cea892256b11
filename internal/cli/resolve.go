package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/resolver"
)

var resolveFlags struct {
	preset         string
	personaActive  bool
	personaContent string
	db             string
	conversation   string
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a weight distribution",
	Long: `Resolve the weight distribution for a fusion call. A named --preset
wins; otherwise the overlay context decides: an active, non-blank persona
yields the persona-dominant split, anything else the brain-dominant one.
With --db the overlay context comes from the stored active overlay.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var w fusion.WeightDistribution
		switch {
		case resolveFlags.preset != "":
			resolved, ok := resolver.ResolvePreset(resolver.Preset(resolveFlags.preset))
			if !ok {
				return fmt.Errorf("unknown weight preset %q", resolveFlags.preset)
			}
			w = resolved
		case resolveFlags.db != "":
			overlay, err := activeOverlay(resolveFlags.db, resolveFlags.conversation)
			if err != nil {
				return err
			}
			rc := resolver.Context{}
			if overlay != nil {
				rc.PersonaActive = true
				rc.PersonaContent = overlay.Content
			}
			w = resolver.Resolve(rc)
		default:
			w = resolver.Resolve(resolver.Context{
				PersonaActive:  resolveFlags.personaActive,
				PersonaContent: resolveFlags.personaContent,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "base=%g brain=%g persona=%g\n", w.Base, w.Brain, w.Persona)
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named weight presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range resolver.Presets() {
			w, _ := resolver.ResolvePreset(p)
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s base=%g brain=%g persona=%g\n", p, w.Base, w.Brain, w.Persona)
		}
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFlags.preset, "preset", "", "named weight preset")
	resolveCmd.Flags().BoolVar(&resolveFlags.personaActive, "persona-active", false, "treat a persona overlay as active")
	resolveCmd.Flags().StringVar(&resolveFlags.personaContent, "persona-content", "", "persona overlay content for the policy check")
	resolveCmd.Flags().StringVar(&resolveFlags.db, "db", "", "persona overlay database path")
	resolveCmd.Flags().StringVar(&resolveFlags.conversation, "conversation", "default", "conversation id for overlay lookup")
}
