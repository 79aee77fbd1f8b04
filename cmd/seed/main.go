package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flatmate-finder/internal/config"
	dbpkg "github.com/BruksfildServices01/flatmate-finder/internal/db"
	"github.com/BruksfildServices01/flatmate-finder/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/flatmate-finder/internal/infra/repository"
	"github.com/BruksfildServices01/flatmate-finder/internal/logger"
	"github.com/BruksfildServices01/flatmate-finder/internal/seed"
)

type options struct {
	reset bool
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Load demo users, listings and roommate requests",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.reset, "reset", false, "delete all existing rows before seeding")
	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg := config.Load()
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var s *seed.Seeder
	if cfg.UsesMemoryStore() {
		log.Warn("seeding the in-memory store; nothing will persist")
		store := memstore.New()
		s = &seed.Seeder{Users: store.Users(), Listings: store.Listings(), Roommates: store.Roommates()}
	} else {
		db, err := dbpkg.NewDB(ctx, cfg, log)
		if err != nil {
			return err
		}
		if opts.reset {
			if err := reset(ctx, db); err != nil {
				return err
			}
			log.Info("existing data cleared")
		}
		s = &seed.Seeder{
			Users:     infraRepo.NewUserGormRepository(db),
			Listings:  infraRepo.NewListingGormRepository(db),
			Roommates: infraRepo.NewRoommateGormRepository(db),
		}
	}

	sum, err := s.Run(ctx)
	if err != nil {
		return err
	}

	log.Info("seed complete",
		zap.Int("users", sum.Users),
		zap.Int("listings", sum.Listings),
		zap.Int("roommate_requests", sum.RoommateRequests),
	)
	return nil
}

func reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(
		`TRUNCATE TABLE reviews, bookings, roommate_requests, listings, audit_logs, users CASCADE`,
	).Error
}
