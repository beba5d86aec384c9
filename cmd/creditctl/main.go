// Command creditctl inspects and adjusts credit balances directly against the
// database, for operators without an admin API token.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/repo"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/authservice"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/creditservice"
	pkgauth "github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd(connect).Execute(); err != nil {
		log.Fatal().Err(err).Msg("creditctl failed")
	}
}

// connect opens the database from the environment and builds the services
// the commands need.
func connect(ctx context.Context, cfg *config.Config) (*backend, error) {
	pool, err := pgxpool.New(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't reach database: %w", err)
	}

	txManager := pg.NewTXManager(pool)
	repos := repo.New(pg.New(pool), txManager)
	credits := creditservice.New(repos.CreditRepo, repos.TransactionRepo, txManager, cfg.BalanceCacheTTL)
	users := authservice.New(repos.UserRepo, credits, pkgauth.NewHashService(0), pkgauth.NewJWTService(cfg.JWTSecret))

	return &backend{
		credits: credits,
		users:   users,
		close:   pool.Close,
	}, nil
}
