package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"fwhr-bot/config"
	telegram "fwhr-bot/internal/api"
	"fwhr-bot/internal/container"
	"fwhr-bot/internal/infrastructure/source"
	"fwhr-bot/internal/infrastructure/storage"
	"fwhr-bot/internal/infrastructure/vision"
	"fwhr-bot/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger, err := log.NewLogger(log.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		NoColor: cfg.AppEnv == "production",
	})
	if err != nil {
		logrus.Fatalf("Failed to init logger: %v", err)
	}

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required")
	}

	// Модели dlib: детектор лиц и 68-точечный предиктор формы
	provider, err := vision.NewDlibLandmarks(cfg.ModelsDir)
	if err != nil {
		logger.Fatalf("Failed to load face models: %v", err)
	}
	defer provider.Close()

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository(cfg.Options())
	loader := source.NewLoader(nil)

	// Собираем сервисы приложения
	appContainer := container.New(container.Deps{
		Users:      userRepo,
		Provider:   provider,
		Renderer:   vision.NewGoCVRenderer(),
		Source:     loader,
		Thresholds: cfg.Thresholds(),
		PhotoTTL:   cfg.PhotoCacheTTL,
		Workers:    cfg.BatchWorkers,
		Logger:     logger,
	})

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, loader, logger)
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(log.Fields{"env": cfg.AppEnv, "models": cfg.ModelsDir}).Info("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		logger.Fatalf("Bot error: %v", err)
	}
	logger.Info("Bot stopped")
}
