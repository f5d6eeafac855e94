package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pkordes/parcel-intake/internal/repo"
	"github.com/pkordes/parcel-intake/internal/service"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the unit catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			units, err := service.NewUnitService(repo.NewUnitRepo(pool)).List(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range units {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", u.ID, u.Label)
			}
			return nil
		},
	}
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, errors.New("--database-url or DATABASE_URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
