package rpc

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/persona-fusion/go-fusion/gen/fusionpb"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/logging"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/persona"
)

func TestFuse_Semantic(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.Fuse(context.Background(), &pb.FuseRequest{
		Layers:   &pb.LayerBundle{Base: "B", Brain: "C", Persona: "P"},
		Strategy: "semanticWeighted",
		Weights:  &pb.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5},
	})
	if err != nil {
		t.Fatalf("Fuse: %v", err)
	}
	if !strings.Contains(resp.Prompt, "== CONFLICT RESOLUTION ==") {
		t.Errorf("expected directive in prompt:\n%s", resp.Prompt)
	}
	if !strings.Contains(resp.Prompt, "1. PERSONA instructions (weight: 0.5)") {
		t.Errorf("expected persona first in directive:\n%s", resp.Prompt)
	}
}

func TestFuse_EmptyStrategyDefaultsToSemantic(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.Fuse(context.Background(), &pb.FuseRequest{
		Layers: &pb.LayerBundle{Base: "rules"},
	})
	if err != nil {
		t.Fatalf("Fuse: %v", err)
	}
	if !strings.Contains(resp.Prompt, "== CONFLICT RESOLUTION ==") {
		t.Errorf("expected semantic output by default:\n%s", resp.Prompt)
	}
}

func TestFuse_InvalidWeightsIsInvalidArgument(t *testing.T) {
	s := NewServer(nil)

	_, err := s.Fuse(context.Background(), &pb.FuseRequest{
		Layers:  &pb.LayerBundle{Base: "x"},
		Weights: &pb.WeightDistribution{Base: 0.3, Brain: 0.3, Persona: 0.3},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if !strings.Contains(status.Convert(err).Message(), "0.9000") {
		t.Errorf("status should carry the computed sum, got %q", status.Convert(err).Message())
	}
}

func TestFuse_UnknownStrategyIsInvalidArgument(t *testing.T) {
	s := NewServer(nil)

	_, err := s.Fuse(context.Background(), &pb.FuseRequest{
		Layers:   &pb.LayerBundle{Base: "x"},
		Strategy: "bogus",
		Weights:  &pb.WeightDistribution{Base: 1},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if !strings.Contains(status.Convert(err).Message(), "bogus") {
		t.Errorf("status should name the strategy, got %q", status.Convert(err).Message())
	}
}

func TestFuse_RecordsProvenance(t *testing.T) {
	store, err := persona.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	s := NewServer(store.DB())
	_, err = s.Fuse(context.Background(), &pb.FuseRequest{
		Layers:         &pb.LayerBundle{Base: "Be verbose.", Persona: "Be brief."},
		Strategy:       "semanticWeighted",
		Weights:        &pb.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5},
		ConversationId: "conv-1",
	})
	if err != nil {
		t.Fatalf("Fuse: %v", err)
	}

	entries, err := logging.Recent(store.DB(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one provenance entry, got %d", len(entries))
	}
	if entries[0].ConversationID != "conv-1" {
		t.Errorf("wrong conversation id %q", entries[0].ConversationID)
	}
	if entries[0].ConflictCount != 1 {
		t.Errorf("expected 1 conflict recorded, got %d", entries[0].ConflictCount)
	}
	if entries[0].PromptSHA == "" {
		t.Error("expected prompt hash")
	}
}

func TestDetectConflicts(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.DetectConflicts(context.Background(), &pb.DetectConflictsRequest{
		Layers: &pb.LayerBundle{Base: "Be verbose and detailed.", Brain: "Maintain moderate length.", Persona: "Be extremely concise."},
	})
	if err != nil {
		t.Fatalf("DetectConflicts: %v", err)
	}
	if len(resp.Conflicts) == 0 {
		t.Fatal("expected at least one conflict")
	}

	found := false
	for _, c := range resp.Conflicts {
		if c.Type == "verbosity" && c.LayerA == "base" && c.LayerB == "persona" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected base/persona verbosity conflict, got %+v", resp.Conflicts)
	}
}

func TestDetectConflicts_NilLayers(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.DetectConflicts(context.Background(), &pb.DetectConflictsRequest{})
	if err != nil {
		t.Fatalf("DetectConflicts: %v", err)
	}
	if len(resp.Conflicts) != 0 {
		t.Errorf("expected no conflicts for empty layers, got %+v", resp.Conflicts)
	}
}

func TestResolveWeights_OverlayPolicy(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.ResolveWeights(context.Background(), &pb.ResolveWeightsRequest{
		PersonaActive:  true,
		PersonaContent: "pirate",
	})
	if err != nil {
		t.Fatalf("ResolveWeights: %v", err)
	}
	w := resp.GetWeights()
	if w.GetBase() != 0.2 || w.GetBrain() != 0.3 || w.GetPersona() != 0.5 {
		t.Errorf("unexpected distribution %+v", w)
	}
}

func TestResolveWeights_Preset(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.ResolveWeights(context.Background(), &pb.ResolveWeightsRequest{Preset: "safety-first"})
	if err != nil {
		t.Fatalf("ResolveWeights: %v", err)
	}
	if resp.GetWeights().GetBase() != 0.6 {
		t.Errorf("unexpected distribution %+v", resp.GetWeights())
	}
}

func TestResolveWeights_UnknownPreset(t *testing.T) {
	s := NewServer(nil)

	_, err := s.ResolveWeights(context.Background(), &pb.ResolveWeightsRequest{Preset: "nope"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
