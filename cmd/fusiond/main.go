package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/persona-fusion/go-fusion/gen/fusionpb"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/persona"
	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/rpc"
)

// #region main
func main() {
	dbPath := envOr("FUSION_DB", "fusion.db")
	addr := envOr("FUSION_ADDR", "localhost:50061")

	store, err := persona.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterFusionServiceServer(srv, rpc.NewServer(store.DB()))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[FUSIOND] shutting down")
		srv.GracefulStop()
	}()

	log.Printf("[FUSIOND] serving on %s (db: %s)", addr, dbPath)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
