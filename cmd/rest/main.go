package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"paddy-kbs-be/internal/bootstrap"
	"paddy-kbs-be/internal/config"
	"paddy-kbs-be/internal/server"
	"paddy-kbs-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap: %v", err)
	}
	defer container.Close()

	// 4. Start Background Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("Background: Starting Consumer Service...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
