package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

var conflictsFlags struct {
	layers  layerFlags
	jsonOut bool
}

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Detect opposing directions across layers",
	Long: `Scan the three layers for lexical oppositions: verbosity, tone,
speed, and approach. Exits 1 when any conflict is found so the command
can gate a pipeline.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layers, err := conflictsFlags.layers.resolve()
		if err != nil {
			return err
		}

		records := fusion.DetectConflicts(layers)

		if conflictsFlags.jsonOut {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				return err
			}
		} else if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no conflicts detected")
		} else {
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s vs %s: %s\n", r.Type, r.LayerA, r.LayerB, r.Description)
			}
		}

		if len(records) > 0 {
			return fmt.Errorf("%d conflict(s) detected", len(records))
		}
		return nil
	},
}

func init() {
	conflictsFlags.layers.register(conflictsCmd)
	conflictsCmd.Flags().BoolVar(&conflictsFlags.jsonOut, "json", false, "output as JSON")
}
