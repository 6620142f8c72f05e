package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"fwhr-bot/internal/domain/entity"
)

type Config struct {
	TelegramToken string

	Method        string
	Top           string  `validate:"oneof=eyebrow eyelid"`
	MaxEyeDif     float64 `validate:"gt=0"`
	MaxNoseDif    float64 `validate:"gt=0"`
	MaxSpaceRatio float64 `validate:"gt=0"`

	ModelsDir     string `validate:"required"`
	LogLevel      string `validate:"oneof=trace debug info warn warning error"`
	LogFile       string
	AppEnv        string
	PhotoCacheTTL time.Duration `validate:"gt=0"`
	BatchWorkers  int           `validate:"min=1,max=64"`
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Method:        getEnv("FWHR_METHOD", string(entity.MethodAverage)),
		Top:           getEnv("FWHR_TOP", string(entity.TopEyebrow)),
		ModelsDir:     getEnv("DLIB_MODELS_DIR", "./models"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		AppEnv:        getEnv("APP_ENV", "development"),
	}

	defaults := entity.DefaultThresholds()
	var err error
	if cfg.MaxEyeDif, err = getFloat("FWHR_MAX_EYE_DIF", defaults.MaxEyeDif); err != nil {
		return nil, err
	}
	if cfg.MaxNoseDif, err = getFloat("FWHR_MAX_NOSE_DIF", defaults.MaxNoseDif); err != nil {
		return nil, err
	}
	if cfg.MaxSpaceRatio, err = getFloat("FWHR_MAX_SPACE_RATIO", defaults.MaxSpaceRatio); err != nil {
		return nil, err
	}
	if cfg.PhotoCacheTTL, err = getDuration("PHOTO_CACHE_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.BatchWorkers, err = getInt("BATCH_WORKERS", 4); err != nil {
		return nil, err
	}

	// Регистр и пробелы не важны, как и в командах бота
	cfg.Method = string(entity.ParseMethod(cfg.Method))
	if top, err := entity.ParseTop(cfg.Top); err == nil {
		cfg.Top = string(top)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Options параметры расчёта по умолчанию для новых пользователей
func (c *Config) Options() entity.Options {
	return entity.Options{
		Method: entity.ParseMethod(c.Method),
		Top:    entity.Top(c.Top),
	}
}

// Thresholds пороги проверки позы
func (c *Config) Thresholds() entity.Thresholds {
	return entity.Thresholds{
		MaxEyeDif:     c.MaxEyeDif,
		MaxNoseDif:    c.MaxNoseDif,
		MaxSpaceRatio: c.MaxSpaceRatio,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
