package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/EchoNews615/komibot/internal/application/moderation/usecases"
	"github.com/EchoNews615/komibot/internal/infrastructure/config"
	"github.com/EchoNews615/komibot/internal/infrastructure/database"
	"github.com/EchoNews615/komibot/internal/infrastructure/reporting"
	"github.com/EchoNews615/komibot/internal/infrastructure/repository"
	moderationhandlers "github.com/EchoNews615/komibot/internal/interfaces/http/handlers/moderation"
	httpRouter "github.com/EchoNews615/komibot/internal/interfaces/http"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the moderation tracking HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if !cfg.Auth.Enabled {
		logger.Warn("API key auth is disabled; mutating endpoints are open to anyone who can reach this server")
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to apply migrations", "error", err)
	}

	log := logger.NewLogger()

	memberRepo := repository.NewMemberRepository(database.Get())
	logRepo := repository.NewLogRepository(database.Get())
	punishmentRepo := repository.NewPunishmentRepository(database.Get())
	ticketRepo := repository.NewTicketRepository(database.Get())
	renderer := reporting.NewRenderer(cfg.Export.Dir, log)

	periodSliceUC := usecases.NewPeriodSliceUseCase(logRepo, punishmentRepo, ticketRepo, log)

	handlers := httpRouter.Handlers{
		Member: moderationhandlers.NewMemberHandler(
			usecases.NewSyncMemberUseCase(memberRepo, log),
			usecases.NewSyncMembersBatchUseCase(memberRepo, log),
			usecases.NewRemoveMemberUseCase(memberRepo, log),
			usecases.NewListMembersUseCase(memberRepo, punishmentRepo, ticketRepo, log),
			usecases.NewMemberDetailUseCase(memberRepo, punishmentRepo, logRepo, ticketRepo, log),
			usecases.NewMemberLogsUseCase(logRepo, log),
			usecases.NewMemberPunishmentsUseCase(punishmentRepo, log),
		),
		Punishment: moderationhandlers.NewPunishmentHandler(
			usecases.NewAppendLogUseCase(logRepo, log),
			usecases.NewRecordPunishmentUseCase(punishmentRepo, log),
			usecases.NewRecordTicketBatchUseCase(ticketRepo, log),
			usecases.NewClearMemberUseCase(logRepo, punishmentRepo, log),
			usecases.NewClearAllUseCase(logRepo, punishmentRepo, ticketRepo, log),
			usecases.NewNextActionUseCase(punishmentRepo, log),
		),
		Report: moderationhandlers.NewReportHandler(
			periodSliceUC,
			usecases.NewBuildMonthlyReportUseCase(periodSliceUC, renderer, log),
		),
	}

	router := httpRouter.NewRouter(cfg, handlers, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
