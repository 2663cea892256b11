package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/persona-fusion/go-fusion/gen/fusionpb"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/fusion"
)

// #region client-struct

// Client wraps the gRPC connection to a fusion server.
type Client struct {
	conn   *grpc.ClientConn
	client pb.FusionServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to a fusion gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewFusionServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.FusionServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region fuse

// Fuse composes the three layers on the server. A nil weights argument asks
// the server for the default distribution.
func (c *Client) Fuse(ctx context.Context, layers fusion.Layers, strategy fusion.Strategy, weights *fusion.WeightDistribution, conversationID string) (string, error) {
	req := &pb.FuseRequest{
		Layers: &pb.LayerBundle{
			Base:    layers.Base,
			Brain:   layers.Brain,
			Persona: layers.Persona,
		},
		Strategy:       string(strategy),
		ConversationId: conversationID,
	}
	if weights != nil {
		req.Weights = weightsToProto(*weights)
	}

	resp, err := c.client.Fuse(ctx, req)
	if err != nil {
		return "", fmt.Errorf("fuse rpc: %w", err)
	}
	return resp.Prompt, nil
}

// #endregion fuse

// #region detect-conflicts

// DetectConflicts scans the three layers for lexical oppositions on the server.
func (c *Client) DetectConflicts(ctx context.Context, layers fusion.Layers) ([]fusion.ConflictRecord, error) {
	resp, err := c.client.DetectConflicts(ctx, &pb.DetectConflictsRequest{
		Layers: &pb.LayerBundle{
			Base:    layers.Base,
			Brain:   layers.Brain,
			Persona: layers.Persona,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("detect conflicts rpc: %w", err)
	}

	records := make([]fusion.ConflictRecord, len(resp.Conflicts))
	for i, cf := range resp.Conflicts {
		records[i] = fusion.ConflictRecord{
			Type:        fusion.ConflictType(cf.Type),
			LayerA:      fusion.LayerName(cf.LayerA),
			LayerB:      fusion.LayerName(cf.LayerB),
			Description: cf.Description,
		}
	}
	return records, nil
}

// #endregion detect-conflicts

// #region resolve-weights

// ResolveWeights asks the server for a distribution, either from a named
// preset or from the overlay context.
func (c *Client) ResolveWeights(ctx context.Context, personaActive bool, personaContent, preset string) (fusion.WeightDistribution, error) {
	resp, err := c.client.ResolveWeights(ctx, &pb.ResolveWeightsRequest{
		PersonaActive:  personaActive,
		PersonaContent: personaContent,
		Preset:         preset,
	})
	if err != nil {
		return fusion.WeightDistribution{}, fmt.Errorf("resolve weights rpc: %w", err)
	}
	return weightsFromProto(resp.GetWeights()), nil
}

// #endregion resolve-weights
