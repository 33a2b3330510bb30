package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ytchat-web/internal/bootstrap"
	"ytchat-web/internal/config"
	"ytchat-web/internal/server"
	"ytchat-web/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go container.WebSocketHub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Unable to start status consumer: %v", err)
	}
	container.MonitorService.Start(ctx)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			log.Panicf("Server stopped: %v", err)
		}
	}()

	// 5. Wait for shutdown signal, then tear down in order: no probe may
	// fire after the monitor stops.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	log.Println("Shutting down...")
	container.MonitorService.Stop()
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	container.Logger.Sync()
}
