package rpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/persona-fusion/go-fusion/gen/fusionpb"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

// #region mock
type mockFusionService struct {
	pb.FusionServiceClient

	fuseResp *pb.FuseResponse
	fuseErr  error
	fuseReq  *pb.FuseRequest

	conflictsResp *pb.DetectConflictsResponse
	conflictsErr  error

	resolveResp *pb.ResolveWeightsResponse
	resolveErr  error
}

func (m *mockFusionService) Fuse(_ context.Context, req *pb.FuseRequest, _ ...grpc.CallOption) (*pb.FuseResponse, error) {
	m.fuseReq = req
	return m.fuseResp, m.fuseErr
}

func (m *mockFusionService) DetectConflicts(_ context.Context, _ *pb.DetectConflictsRequest, _ ...grpc.CallOption) (*pb.DetectConflictsResponse, error) {
	return m.conflictsResp, m.conflictsErr
}

func (m *mockFusionService) ResolveWeights(_ context.Context, _ *pb.ResolveWeightsRequest, _ ...grpc.CallOption) (*pb.ResolveWeightsResponse, error) {
	return m.resolveResp, m.resolveErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockFusionService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
}

// #endregion constructor-tests

// #region fuse-tests
func TestClientFuse_Success(t *testing.T) {
	mock := &mockFusionService{
		fuseResp: &pb.FuseResponse{Prompt: "fused output"},
	}
	c := NewClientWithService(mock)

	w := fusion.WeightDistribution{Base: 0.2, Brain: 0.3, Persona: 0.5}
	got, err := c.Fuse(context.Background(), fusion.Layers{Base: "b"}, fusion.StrategySemanticWeighted, &w, "conv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fused output" {
		t.Errorf("expected prompt, got %q", got)
	}

	if mock.fuseReq.GetWeights() == nil {
		t.Fatal("weights should be set on the wire")
	}
	if mock.fuseReq.GetWeights().GetPersona() != 0.5 {
		t.Errorf("persona weight lost in conversion: %+v", mock.fuseReq.GetWeights())
	}
	if mock.fuseReq.GetConversationId() != "conv-1" {
		t.Errorf("conversation id lost: %q", mock.fuseReq.GetConversationId())
	}
}

func TestClientFuse_NilWeightsOmittedOnWire(t *testing.T) {
	mock := &mockFusionService{fuseResp: &pb.FuseResponse{Prompt: "p"}}
	c := NewClientWithService(mock)

	if _, err := c.Fuse(context.Background(), fusion.Layers{Base: "b"}, fusion.StrategyWeighted, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.fuseReq.GetWeights() != nil {
		t.Error("nil weights should stay unset on the wire")
	}
}

func TestClientFuse_Error(t *testing.T) {
	mock := &mockFusionService{fuseErr: errors.New("rpc failed")}
	c := NewClientWithService(mock)

	_, err := c.Fuse(context.Background(), fusion.Layers{}, fusion.StrategyWeighted, nil, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.fuseErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion fuse-tests

// #region conflict-tests
func TestClientDetectConflicts(t *testing.T) {
	mock := &mockFusionService{
		conflictsResp: &pb.DetectConflictsResponse{
			Conflicts: []*pb.Conflict{
				{Type: "verbosity", LayerA: "base", LayerB: "persona", Description: "opposing verbosity"},
			},
		},
	}
	c := NewClientWithService(mock)

	records, err := c.DetectConflicts(context.Background(), fusion.Layers{Base: "verbose", Persona: "brief"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Type != fusion.ConflictVerbosity {
		t.Errorf("expected verbosity type, got %q", records[0].Type)
	}
	if records[0].LayerA != fusion.LayerBase || records[0].LayerB != fusion.LayerPersona {
		t.Errorf("layer names lost in conversion: %+v", records[0])
	}
}

// #endregion conflict-tests

// #region resolve-tests
func TestClientResolveWeights(t *testing.T) {
	mock := &mockFusionService{
		resolveResp: &pb.ResolveWeightsResponse{
			Weights: &pb.WeightDistribution{Base: 0.4, Brain: 0.6},
		},
	}
	c := NewClientWithService(mock)

	w, err := c.ResolveWeights(context.Background(), false, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Base != 0.4 || w.Brain != 0.6 || w.Persona != 0 {
		t.Errorf("unexpected distribution %+v", w)
	}
}

func TestClientResolveWeights_Error(t *testing.T) {
	mock := &mockFusionService{resolveErr: errors.New("rpc failed")}
	c := NewClientWithService(mock)

	if _, err := c.ResolveWeights(context.Background(), true, "x", ""); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion resolve-tests
