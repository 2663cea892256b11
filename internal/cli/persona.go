package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/persona"
)

var personaFlags struct {
	db           string
	conversation string
	name         string
	file         string
	limit        int
}

var personaCmd = &cobra.Command{
	Use:   "persona",
	Short: "Manage stored persona overlays",
}

var personaSaveCmd = &cobra.Command{
	Use:   "save [content]",
	Short: "Save a persona overlay and make it the active one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := ""
		if len(args) == 1 {
			content = args[0]
		}
		if personaFlags.file != "" {
			data, err := os.ReadFile(personaFlags.file)
			if err != nil {
				return fmt.Errorf("read overlay file: %w", err)
			}
			content = string(data)
		}
		if content == "" {
			return fmt.Errorf("overlay content required (argument or --file)")
		}

		store, err := persona.NewStore(personaFlags.db)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		overlay, err := store.Save(personaFlags.conversation, personaFlags.name, content)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved overlay %s (%s)\n", overlay.OverlayID, overlay.Name)
		return nil
	},
}

var personaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active persona overlay",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, err := activeOverlay(personaFlags.db, personaFlags.conversation)
		if err != nil {
			return err
		}
		if overlay == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "no active overlay")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, created %s)\n%s\n", overlay.Name, overlay.OverlayID, overlay.CreatedAt.Format(time.RFC3339), overlay.Content)
		return nil
	},
}

var personaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List overlays for a conversation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := persona.NewStore(personaFlags.db)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		overlays, err := store.List(personaFlags.conversation, personaFlags.limit)
		if err != nil {
			return err
		}
		for _, o := range overlays {
			marker := " "
			if o.Active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %-20s %s\n", marker, o.OverlayID, o.Name, o.CreatedAt.Format(time.RFC3339))
		}
		return nil
	},
}

var personaOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Deactivate the active overlay",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := persona.NewStore(personaFlags.db)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		if err := store.Deactivate(personaFlags.conversation); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "overlay deactivated")
		return nil
	},
}

func init() {
	personaCmd.PersistentFlags().StringVar(&personaFlags.db, "db", "fusion.db", "persona overlay database path")
	personaCmd.PersistentFlags().StringVar(&personaFlags.conversation, "conversation", "default", "conversation id")
	personaSaveCmd.Flags().StringVar(&personaFlags.name, "name", "overlay", "overlay name")
	personaSaveCmd.Flags().StringVar(&personaFlags.file, "file", "", "read overlay content from file")
	personaListCmd.Flags().IntVar(&personaFlags.limit, "last", 20, "show N most recent overlays")

	personaCmd.AddCommand(personaSaveCmd)
	personaCmd.AddCommand(personaShowCmd)
	personaCmd.AddCommand(personaListCmd)
	personaCmd.AddCommand(personaOffCmd)
}
