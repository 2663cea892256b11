package rpc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/persona-fusion/go-fusion/gen/fusionpb"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/logging"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/resolver"
)

// #region server-struct

// Server implements the FusionService gRPC interface around the pure core.
type Server struct {
	pb.UnimplementedFusionServiceServer

	// db receives fusion provenance entries; nil disables logging.
	db *sql.DB
}

// NewServer creates a fusion server. Pass a database handle to record
// fusion provenance, or nil to serve without it.
func NewServer(db *sql.DB) *Server {
	return &Server{db: db}
}

// #endregion server-struct

// #region fuse

// Fuse composes the request's layers with the named strategy. Core
// validation errors surface as InvalidArgument.
func (s *Server) Fuse(ctx context.Context, req *pb.FuseRequest) (*pb.FuseResponse, error) {
	layers := layersFromProto(req.GetLayers())

	strategy := fusion.Strategy(req.GetStrategy())
	if req.GetStrategy() == "" {
		strategy = fusion.StrategySemanticWeighted
	}

	var weights *fusion.WeightDistribution
	if req.GetWeights() != nil {
		w := weightsFromProto(req.GetWeights())
		weights = &w
	}

	prompt, err := fusion.FusePrompts(layers, strategy, weights)
	if err != nil {
		return nil, coreErrToStatus(err)
	}

	s.logFusion(req.GetConversationId(), strategy, weights, layers, prompt)
	return &pb.FuseResponse{Prompt: prompt}, nil
}

// logFusion records provenance for a successful fusion. Failures are logged,
// never propagated; provenance must not break the call.
func (s *Server) logFusion(conversationID string, strategy fusion.Strategy, weights *fusion.WeightDistribution, layers fusion.Layers, prompt string) {
	if s.db == nil {
		return
	}
	effective := fusion.DefaultWeights()
	if weights != nil {
		effective = *weights
	}
	weightsJSON, _ := json.Marshal(map[string]float64{
		"base":    effective.Base,
		"brain":   effective.Brain,
		"persona": effective.Persona,
	})
	err := logging.LogFusion(s.db, logging.FusionEntry{
		ConversationID: conversationID,
		Strategy:       string(strategy),
		WeightsJSON:    string(weightsJSON),
		ConflictCount:  len(fusion.DetectConflicts(layers)),
		PromptSHA:      logging.PromptSHA(prompt),
	})
	if err != nil {
		log.Printf("[FUSE] failed to record provenance: %v", err)
	}
}

// #endregion fuse

// #region detect-conflicts

// DetectConflicts scans the request's layers for lexical oppositions.
// Never fails on layer content.
func (s *Server) DetectConflicts(ctx context.Context, req *pb.DetectConflictsRequest) (*pb.DetectConflictsResponse, error) {
	records := fusion.DetectConflicts(layersFromProto(req.GetLayers()))

	conflicts := make([]*pb.Conflict, len(records))
	for i, r := range records {
		conflicts[i] = &pb.Conflict{
			Type:        string(r.Type),
			LayerA:      string(r.LayerA),
			LayerB:      string(r.LayerB),
			Description: r.Description,
		}
	}
	return &pb.DetectConflictsResponse{Conflicts: conflicts}, nil
}

// #endregion detect-conflicts

// #region resolve-weights

// ResolveWeights maps a preset name or an overlay context to a distribution.
func (s *Server) ResolveWeights(ctx context.Context, req *pb.ResolveWeightsRequest) (*pb.ResolveWeightsResponse, error) {
	var w fusion.WeightDistribution
	if preset := req.GetPreset(); preset != "" {
		resolved, ok := resolver.ResolvePreset(resolver.Preset(preset))
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown weight preset %q", preset)
		}
		w = resolved
	} else {
		w = resolver.Resolve(resolver.Context{
			PersonaActive:  req.GetPersonaActive(),
			PersonaContent: req.GetPersonaContent(),
		})
	}

	return &pb.ResolveWeightsResponse{Weights: weightsToProto(w)}, nil
}

// #endregion resolve-weights

// #region conversion

func layersFromProto(b *pb.LayerBundle) fusion.Layers {
	if b == nil {
		return fusion.Layers{}
	}
	return fusion.Layers{
		Base:    b.GetBase(),
		Brain:   b.GetBrain(),
		Persona: b.GetPersona(),
	}
}

func weightsFromProto(w *pb.WeightDistribution) fusion.WeightDistribution {
	return fusion.WeightDistribution{
		Base:    w.GetBase(),
		Brain:   w.GetBrain(),
		Persona: w.GetPersona(),
	}
}

func weightsToProto(w fusion.WeightDistribution) *pb.WeightDistribution {
	return &pb.WeightDistribution{
		Base:    w.Base,
		Brain:   w.Brain,
		Persona: w.Persona,
	}
}

// coreErrToStatus maps the core's two error kinds to InvalidArgument;
// anything else is Internal.
func coreErrToStatus(err error) error {
	var invalid *fusion.InvalidWeightDistributionError
	var unknown *fusion.UnknownStrategyError
	if errors.As(err, &invalid) || errors.As(err, &unknown) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// #endregion conversion
