package main

import (
	"context"

	"portfolio_backend/database"
	"portfolio_backend/internal/app"
	"portfolio_backend/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal("Command failed", "error", err)
	}
}

func newRootCmd() *cobra.Command {
	var migrate bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	serveCmd.Flags().BoolVar(&migrate, "migrate", true, "run AutoMigrate before serving")

	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio CMS backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// без подкоманды запускается сервер
		RunE: serveCmd.RunE,
	}
	rootCmd.Flags().BoolVar(&migrate, "migrate", true, "run AutoMigrate before serving")

	rootCmd.AddCommand(
		serveCmd,
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update database tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
					return database.AutoMigrate(a.DB)
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Fill an empty database with the admin user and sample content",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
					if err := database.AutoMigrate(a.DB); err != nil {
						return err
					}
					return app.Seed(ctx, a)
				})
			},
		},
	)

	return rootCmd
}

func serve(ctx context.Context, migrate bool) error {
	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		if err := a.Prepare(ctx, migrate); err != nil {
			return err
		}
		return a.Serve(ctx)
	})
}

func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.Bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
