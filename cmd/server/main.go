package main

import (
	"net/http"

	"go.uber.org/zap"

	"BookShelf/internal/config"
	"BookShelf/internal/handlers"
	"BookShelf/internal/middleware"
	"BookShelf/internal/repo"
	"BookShelf/internal/service"
	"BookShelf/internal/session"
	"BookShelf/internal/storage"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	// сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	fileStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		sugar.Fatalw("failed to initialize upload dir", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo, fileStore, sugar)

	sessions := session.NewMemoryStore()

	h := handlers.NewHandler(userService, itemService, sessions, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"UploadDir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
