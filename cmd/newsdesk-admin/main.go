package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jbeshir/newsdesk/internal/app"
	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Logs go to stderr so command output on stdout stays machine readable.
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.ErrorContext(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "newsdesk-admin",
		Short:         "Operator tasks for the newsdesk article store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRepairInteractionsCmd(), newInvalidateArticleCmd(), newInvalidateAllCmd())
	return root
}

func newRepairInteractionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair-interactions",
		Short: "Collapse duplicate interaction rows to the most recent row per user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			admin, err := app.SetupAdmin(ctx, false)
			if err != nil {
				return fmt.Errorf("setting up: %w", err)
			}
			defer closeAdmin(ctx, admin)

			result, err := admin.RepairInteractions.Execute(ctx, command.Empty{})
			if err != nil {
				return fmt.Errorf("repairing interactions after removing %d rows: %w", result.Removed, err)
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
		},
	}
}

func newInvalidateArticleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate-article <id-or-slug>",
		Short: "Delete every cached payload for an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			admin, err := app.SetupAdmin(ctx, true)
			if err != nil {
				return fmt.Errorf("setting up: %w", err)
			}
			defer closeAdmin(ctx, admin)

			if _, err := admin.InvalidateArticle.Execute(ctx, args[0]); err != nil {
				return fmt.Errorf("invalidating article [%s]: %w", args[0], err)
			}

			domain.LoggerFromContext(ctx).InfoContext(ctx, "article cache invalidated", "article", args[0])
			return nil
		},
	}
}

func newInvalidateAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate-all",
		Short: "Delete every cached article payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			admin, err := app.SetupAdmin(ctx, true)
			if err != nil {
				return fmt.Errorf("setting up: %w", err)
			}
			defer closeAdmin(ctx, admin)

			if _, err := admin.InvalidateAllArticles.Execute(ctx, command.Empty{}); err != nil {
				return fmt.Errorf("invalidating all articles: %w", err)
			}
			return nil
		},
	}
}

func closeAdmin(ctx context.Context, admin *app.Admin) {
	if err := admin.Close(); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "closing cache backend", "error", err)
	}
}
