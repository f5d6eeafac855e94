package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/parcel-intake/migrations"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the unit catalog schema",
	}
	cmd.AddCommand(
		migrateSubCmd("up", "Apply all pending migrations", func(ctx context.Context, p *goose.Provider) ([]*goose.MigrationResult, error) {
			return p.Up(ctx)
		}),
		migrateSubCmd("down", "Roll back the latest migration", func(ctx context.Context, p *goose.Provider) ([]*goose.MigrationResult, error) {
			r, err := p.Down(ctx)
			if err != nil {
				return nil, err
			}
			return []*goose.MigrationResult{r}, nil
		}),
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s.State, s.Source.Path)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func migrateSubCmd(use, short string, run func(context.Context, *goose.Provider) ([]*goose.MigrationResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
				results, err := run(ctx, p)
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintln(cmd.OutOrStdout(), r.String())
				}
				return nil
			})
		},
	}
}

func withProvider(cmd *cobra.Command, fn func(context.Context, *goose.Provider) error) error {
	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, p)
}
