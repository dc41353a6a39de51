package main

import (
	"context"
	"flag"
	"os"

	"badger-buds-be/internal/config"
	"badger-buds-be/internal/repository/unitofwork"
	"badger-buds-be/pkg/catalog"
	"badger-buds-be/pkg/database"

	"github.com/fatih/color"
)

// Upserts a catalog file into the cats table. Re-running it is safe.
func main() {
	cfg := config.Load()

	file := flag.String("file", cfg.Catalog.File, "catalog file (YAML or JSON)")
	flag.Parse()

	cats, err := catalog.LoadFile(*file)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	defer uow.Rollback()

	color.Cyan("Seeding %d cats from %s...", len(cats), *file)
	for _, cat := range cats {
		if err := uow.CatRepository().Upsert(ctx, cat); err != nil {
			color.Red("Error upserting cat %s (%s): %v", cat.Name, cat.Id, err)
			os.Exit(1)
		}
		color.White("  %s (%s)", cat.Name, cat.Id)
	}

	if err := uow.Commit(); err != nil {
		color.Red("Error: commit failed: %v", err)
		os.Exit(1)
	}
	color.Green("✅ Catalog seeding completed!")
}
