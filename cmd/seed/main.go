package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"directorio/config"
	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/hours"
	"directorio/internal/domain/lifecycle"
	"directorio/internal/domain/repository"
	logs "directorio/internal/infra/log"
	"directorio/internal/infra/persistence/memory"
	"directorio/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Loads business fixtures into the configured database.
//
//	seed -file ./config/seed/businesses.json
//	seed -file ./config/seed/businesses.json -dry-run
func main() {
	file := flag.String("file", "./config/seed/businesses.json", "Fixture file with a JSON array of businesses")
	dryRun := flag.Bool("dry-run", false, "Validate and count the fixtures in memory without touching the database")
	pending := flag.Bool("pending", false, "Store the businesses as pending moderation instead of approved")
	locale := flag.String("locale", string(hours.LocaleSpanish), "Day-name locale of the fixture hours (es or en)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	businesses, err := loadFixtures(*file, hours.ParseLocale(*locale), !*pending)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		err = dryRunSeed(ctx, os.Stdout, businesses)
	} else {
		err = seedDatabase(ctx, businesses)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dryRunSeed stores the fixtures in memory and prints how the directory would list them.
func dryRunSeed(ctx context.Context, out io.Writer, businesses []*entity.Business) error {
	repo := memory.NewBusinessRepository()
	if err := insertAll(ctx, repo, businesses); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d businesses validated\n", repo.Len())
	for _, category := range entity.Categories() {
		criteria := filter.State{Category: &category}.Criteria()
		items, _, err := repo.ListApproved(ctx, criteria, repository.Page{Limit: len(businesses)})
		if err != nil {
			return errors.WithStack(err)
		}
		if len(items) > 0 {
			fmt.Fprintf(out, "  %-18s %d\n", category.Label(), len(items))
		}
	}

	return nil
}

// seedDatabase starts only the persistence part of the application.
func seedDatabase(ctx context.Context, businesses []*entity.Business) error {
	var (
		repo   repository.BusinessRepository
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewBusinessRepository,
		),
		fx.Populate(&repo, &logger),
	)

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start persistence")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to close database", slog.Any("error", err))
		}
	}()

	if err := insertAll(ctx, repo, businesses); err != nil {
		return err
	}
	logger.Info("Seed completed", slog.Int("businesses", len(businesses)))

	return nil
}

func insertAll(ctx context.Context, repo repository.BusinessRepository, businesses []*entity.Business) error {
	for _, b := range businesses {
		if err := repo.Create(ctx, b); err != nil {
			return errors.Wrapf(err, "failed to store %q", b.Name)
		}
	}

	return nil
}
