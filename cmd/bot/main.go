package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/qattan/daily-post-bot/internal/config"
	"github.com/qattan/daily-post-bot/internal/content"
	"github.com/qattan/daily-post-bot/internal/database"
	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
	"github.com/qattan/daily-post-bot/internal/domain/service"
	"github.com/qattan/daily-post-bot/internal/handlers"
	"github.com/qattan/daily-post-bot/internal/logger"
	"github.com/qattan/daily-post-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("Running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}
	zlog.Info("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	providers := map[domain.PostType]contract.ContentProvider{
		domain.PostTypeDua:    content.NewDuaProvider(nil),
		domain.PostTypeHadith: content.NewHadithProvider(cfg.SunnahAPIKey, nil),
	}

	services := service.New(database.NewDailyPostRepo(db), slackClient, providers, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go services.Scheduler.Run(ctx)

	handler := handlers.New(services.DailyPost, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	zlog.Info("Server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
