// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderai/internal/ai"
	"wanderai/internal/config"
	httptransport "wanderai/internal/http"
	"wanderai/internal/infra"
	"wanderai/internal/kb"
	"wanderai/internal/maps"
	"wanderai/internal/modules/chat"
	"wanderai/internal/modules/quota"
	"wanderai/internal/modules/transcript"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	engine, err := kb.Load(cfg.KB.Path)
	if err != nil {
		log.Fatalf("knowledge base: %v", err)
	}
	log.Printf("knowledge base loaded: %d destinations", engine.Len())

	var routes *maps.RouteService
	if cfg.AI.MapsKey != "" {
		routes, err = maps.NewRouteService(cfg.AI.MapsKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	planner, err := ai.NewGeminiPlanner(ctx, cfg.AI.GeminiKey, engine, routes, cfg.Chat.HomeBase)
	if err != nil {
		log.Fatalf("planner init: %v", err)
	}
	defer planner.Close()

	chatSvc := chat.NewService(planner, time.Duration(cfg.Chat.TurnTimeoutSeconds)*time.Second, time.Now().UnixNano())
	snapshotTTL := time.Duration(cfg.Chat.SnapshotTTLHours) * time.Hour
	store := chat.NewStore(redisClient, snapshotTTL)
	registry := chat.NewRegistry(store)
	go registry.RunEvictionLoop(ctx, time.Hour, snapshotTTL)

	quotaSvc := quota.NewService(quota.NewStore(dbPool))
	transcriptSvc := transcript.NewService(transcript.NewStore(dbPool))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Chat:       chatSvc,
		Registry:   registry,
		Quota:      quotaSvc,
		Transcript: transcriptSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
