package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kisanbandhu/console/internal/config"
	"kisanbandhu/console/internal/db"
	"kisanbandhu/console/internal/handler"
	transport "kisanbandhu/console/internal/http"
	"kisanbandhu/console/internal/imagehost"
	"kisanbandhu/console/internal/logger"
	"kisanbandhu/console/internal/network"
	"kisanbandhu/console/internal/repository"
	"kisanbandhu/console/internal/service"
	"kisanbandhu/console/internal/service/ai"
	"kisanbandhu/console/internal/snowflake"
	"kisanbandhu/console/internal/upstream"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		log.Fatal("KB_ADMIN_USER and KB_ADMIN_PASSWORD must be set")
	}

	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	settingsRepo := repository.NewSettingsRepository(dbConn)
	historyRepo := repository.NewHistoryRepository(dbConn)

	clients := network.NewClientFactory(cfg.ProxyURL)
	if cfg.ProxyURL != "" {
		// A broken proxy should show up at startup, not on the first upstream call.
		if err := clients.TestProxy(context.Background(), cfg.UpstreamURL); err != nil {
			logger.Warn("proxy check failed",
				"module", "network",
				"action", "proxy_check",
				"resource", "proxy",
				"result", "failed",
				"error", err,
			)
		}
	}
	platform := upstream.New(cfg.UpstreamURL, clients)
	imageHost := imagehost.NewCloudinary(cfg.CloudinaryCloud, cfg.CloudinaryPreset, clients)

	var provider ai.Provider
	if cfg.AIAPIKey != "" {
		provider, err = ai.NewProvider(ai.Config{
			Provider: cfg.AIProvider,
			APIKey:   cfg.AIAPIKey,
			BaseURL:  cfg.AIBaseURL,
			Model:    cfg.AIModel,
		})
		if err != nil {
			log.Fatalf("init AI provider: %v", err)
		}
	}

	authService := service.NewAuthService(settingsRepo, cfg.AdminUser, cfg.AdminPassword)
	schemeService := service.NewSchemeService(platform)
	cropService := service.NewCropService(platform)
	newsService := service.NewNewsService(platform, clients)
	notificationService := service.NewNotificationService(platform, historyRepo)
	imageService := service.NewImageService(imageHost)
	translateService := service.NewTranslateService(provider, ai.NewRateLimiter(ai.DefaultRateLimit))
	dashboardService := service.NewDashboardService(platform, historyRepo)

	router := transport.NewRouter(transport.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Language:     handler.NewLanguageHandler(),
		Scheme:       handler.NewSchemeHandler(schemeService),
		Crop:         handler.NewCropHandler(cropService),
		News:         handler.NewNewsHandler(newsService),
		Notification: handler.NewNotificationHandler(notificationService),
		Image:        handler.NewImageHandler(imageService),
		Translate:    handler.NewTranslateHandler(translateService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}, authService, cfg.StaticDir)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
