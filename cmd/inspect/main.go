package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/logging"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/persona"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to fusion.db")
	conversation := flag.String("conversation", "default", "conversation id for overlay listing")
	last := flag.Int("last", 20, "show N most recent entries")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/fusion.db [--conversation id] [--last N] [--json]")
		os.Exit(2)
	}

	store, err := persona.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *conversation, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

type report struct {
	Overlays []overlayRow `json:"overlays"`
	Fusions  []fusionRow  `json:"fusions"`
}

type overlayRow struct {
	OverlayID string `json:"overlay_id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type fusionRow struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Strategy       string `json:"strategy"`
	WeightsJSON    string `json:"weights"`
	ConflictCount  int    `json:"conflict_count"`
	PromptSHA      string `json:"prompt_sha,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func run(store *persona.Store, conversation string, last int, jsonOut bool) error {
	overlays, err := store.List(conversation, last)
	if err != nil {
		return err
	}
	entries, err := logging.Recent(store.DB(), last)
	if err != nil {
		return err
	}

	r := report{
		Overlays: make([]overlayRow, 0, len(overlays)),
		Fusions:  make([]fusionRow, 0, len(entries)),
	}
	for _, o := range overlays {
		r.Overlays = append(r.Overlays, overlayRow{
			OverlayID: o.OverlayID,
			Name:      o.Name,
			Active:    o.Active,
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, e := range entries {
		r.Fusions = append(r.Fusions, fusionRow{
			ConversationID: e.ConversationID,
			Strategy:       e.Strategy,
			WeightsJSON:    e.WeightsJSON,
			ConflictCount:  e.ConflictCount,
			PromptSHA:      shortSHA(e.PromptSHA),
			CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Printf("overlays (%s):\n", conversation)
	if len(r.Overlays) == 0 {
		fmt.Println("  none")
	}
	for _, o := range r.Overlays {
		marker := " "
		if o.Active {
			marker = "*"
		}
		fmt.Printf("  %s %s  %-20s %s\n", marker, o.OverlayID, o.Name, o.CreatedAt)
	}

	fmt.Println("\nrecent fusions:")
	if len(r.Fusions) == 0 {
		fmt.Println("  none")
	}
	for _, f := range r.Fusions {
		fmt.Printf("  %s  %-17s conflicts=%d  %s  %s\n",
			f.CreatedAt, f.Strategy, f.ConflictCount, f.WeightsJSON, f.PromptSHA)
	}
	return nil
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}

// #endregion report
