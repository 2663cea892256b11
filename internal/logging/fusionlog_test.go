package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/persona"
)

func tempDB(t *testing.T) *persona.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := persona.NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogFusionAndRecent(t *testing.T) {
	s := tempDB(t)

	entries := []FusionEntry{
		{ConversationID: "conv-1", Strategy: "weighted", WeightsJSON: `{"base":0.4,"brain":0.6,"persona":0}`, ConflictCount: 0},
		{ConversationID: "conv-1", Strategy: "semanticWeighted", WeightsJSON: `{"base":0.2,"brain":0.3,"persona":0.5}`, ConflictCount: 2, PromptSHA: PromptSHA("fused")},
	}
	for _, e := range entries {
		if err := LogFusion(s.DB(), e); err != nil {
			t.Fatalf("LogFusion: %v", err)
		}
	}

	got, err := Recent(s.DB(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	// Newest first.
	if got[0].Strategy != "semanticWeighted" {
		t.Errorf("expected newest entry first, got strategy %q", got[0].Strategy)
	}
	if got[0].ConflictCount != 2 {
		t.Errorf("expected conflict count 2, got %d", got[0].ConflictCount)
	}
	if got[1].ConversationID != "conv-1" {
		t.Errorf("expected conversation id, got %q", got[1].ConversationID)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestLogFusion_DefaultsCreatedAt(t *testing.T) {
	s := tempDB(t)

	before := time.Now().UTC().Add(-time.Second)
	if err := LogFusion(s.DB(), FusionEntry{Strategy: "weighted", WeightsJSON: "{}"}); err != nil {
		t.Fatalf("LogFusion: %v", err)
	}

	got, err := Recent(s.DB(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].CreatedAt.Before(before) {
		t.Errorf("expected created_at defaulted to now, got %v", got[0].CreatedAt)
	}
	if got[0].ConversationID != "" || got[0].PromptSHA != "" {
		t.Errorf("expected empty optional fields, got %+v", got[0])
	}
}

func TestPromptSHA_Deterministic(t *testing.T) {
	if PromptSHA("abc") != PromptSHA("abc") {
		t.Error("expected stable hash")
	}
	if PromptSHA("abc") == PromptSHA("abd") {
		t.Error("expected distinct hashes for distinct prompts")
	}
	if len(PromptSHA("abc")) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(PromptSHA("abc")))
	}
}
