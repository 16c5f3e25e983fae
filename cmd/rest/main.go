package main

import (
	"context"
	"log"

	"legalbridge-be/internal/bootstrap"
	"legalbridge-be/internal/config"
	"legalbridge-be/internal/server"
	"legalbridge-be/internal/tracer"
	"legalbridge-be/pkg/database"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Consumers
	// The session bus consumer feeds the session cache; it has to be live
	// before any request can authenticate.
	if err := container.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start background consumers: %v", err)
	}

	// 6. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
