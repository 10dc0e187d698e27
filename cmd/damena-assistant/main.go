package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"damena-assistant/internal/api"
	"damena-assistant/internal/api/handlers"
	"damena-assistant/internal/repository"
	"damena-assistant/internal/service"
	"damena-assistant/pkg/config"
	"damena-assistant/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Damena assistant service")

	// Load the knowledge base
	knowledgeRepo, err := repository.NewKnowledgeRepository(cfg.Knowledge.DataPath, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}

	// Initialize services
	matcher := service.NewMatcherService(knowledgeRepo, cfg.Knowledge.ReferenceUser, appLogger)
	responder := service.NewResponderService(appLogger)
	suggester := service.NewSuggestionService()

	// A missing API key degrades the assistant to local answers only.
	var remote service.RemoteResponder
	llmService, err := service.NewLLMService(&cfg.GigaChat, cfg.Chat.RemoteTimeout, appLogger)
	if err != nil {
		appLogger.Warn("LLM service unavailable, running in local-only mode", zap.Error(err))
	} else {
		remote = llmService
		defer llmService.Close()
	}

	chatService := service.NewChatService(matcher, responder, suggester, remote, appLogger)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(remote, appLogger)
	sessionHandler := handlers.NewSessionHandler(chatService, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, sessionHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
