package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CICEROsandbox/oversetter/internal/config"
	"github.com/CICEROsandbox/oversetter/internal/handler"
	transport "github.com/CICEROsandbox/oversetter/internal/http"
	"github.com/CICEROsandbox/oversetter/internal/logger"
	"github.com/CICEROsandbox/oversetter/internal/network"
	"github.com/CICEROsandbox/oversetter/internal/service"
	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

// @title Oversetter API
// @version 1.0
// @description Climate science translation between Norwegian and English.
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	provider, err := ai.NewProvider(ai.Config{
		Provider:    cfg.AIProvider,
		APIKey:      cfg.AIKey,
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
	})
	if err != nil {
		log.Fatalf("configure ai provider: %v", err)
	}

	rateLimiter := ai.NewRateLimiter(cfg.RateLimit)
	references := service.NewReferenceService(cfg.ReferenceCSV)
	clientFactory := network.NewClientFactory(cfg.ProxyURL)

	translationService := service.NewTranslationService(provider, rateLimiter, references, cfg.ChunkRunes, cfg.MaxExamples)
	articleService := service.NewArticleService(clientFactory, cfg.FeedURL)

	translateHandler := handler.NewTranslateHandler(translationService)
	articleHandler := handler.NewArticleHandler(articleService, translationService)
	exportHandler := handler.NewExportHandler()
	metaHandler := handler.NewMetaHandler(&cfg, references)

	router := transport.NewRouter(translateHandler, articleHandler, exportHandler, metaHandler, cfg.StaticDir)

	// Handle graceful shutdown
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
