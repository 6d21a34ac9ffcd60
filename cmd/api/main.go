package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/vitaclub/wellness-engine/internal/catalog"
	"github.com/vitaclub/wellness-engine/internal/engine"
	httpapi "github.com/vitaclub/wellness-engine/internal/http"
	"github.com/vitaclub/wellness-engine/internal/storage"
)

type Config struct {
	Address     string
	MenuPath    string
	WeightsPath string
	DBPath      string
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := loadConfig()

	menu := catalog.Default
	if cfg.MenuPath != "" {
		loaded, err := catalog.LoadFromFile(cfg.MenuPath)
		if err != nil {
			logger.Warn("use built-in menu", zap.Error(err))
		} else {
			menu = loaded
		}
	}

	weights, err := engine.LoadWeightsFromFile(cfg.WeightsPath)
	if err != nil {
		logger.Warn("use default weights", zap.Error(err))
		weights = engine.DefaultWeights()
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()
	if err := store.EnsureSchema(); err != nil {
		logger.Fatal("ensure schema", zap.Error(err))
	}

	eng := engine.New(menu, weights)
	srv := httpapi.NewServer(eng, &httpapi.SQLiteAssessmentsRepo{Store: store}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"*"},
	})

	logger.Info("API listening", zap.String("address", cfg.Address), zap.Int("menu_items", len(menu)))
	if err := http.ListenAndServe(cfg.Address, c.Handler(srv.Routes())); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func loadConfig() Config {
	return Config{
		Address:     getEnv("API_ADDRESS", ":8080"),
		MenuPath:    getEnv("MENU_PATH", "data/menu.json"),
		WeightsPath: getEnv("WEIGHTS_PATH", "configs/weights.json"),
		DBPath:      getEnv("DB_PATH", "wellness.db"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
