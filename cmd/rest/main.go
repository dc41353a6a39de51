package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"badger-buds-be/internal/bootstrap"
	"badger-buds-be/internal/config"
	"badger-buds-be/internal/repository/memory"
	"badger-buds-be/internal/repository/unitofwork"
	"badger-buds-be/internal/server"
	"badger-buds-be/internal/tracer"
	"badger-buds-be/pkg/catalog"
	"badger-buds-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled)
	defer shutdownTracer(context.Background())

	// 3. Initialize Catalog Storage
	uowFactory, err := newRepositoryFactory(cfg)
	if err != nil {
		log.Panicf("Unable to initialize catalog: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(uowFactory, cfg)
	defer container.Close()

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(ctx); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

func newRepositoryFactory(cfg *config.Config) (unitofwork.RepositoryFactory, error) {
	if cfg.Catalog.Source == config.CatalogSourceFile {
		cats, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] Using Catalog Source: FILE (%s, %d cats)", cfg.Catalog.File, len(cats))
		return memory.NewCatalog(cats), nil
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using Catalog Source: POSTGRES")
	return unitofwork.NewRepositoryFactory(gormDB), nil
}
