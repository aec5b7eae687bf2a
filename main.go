// File: cuidarte/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuidarte/config"
	"cuidarte/handlers"
	"cuidarte/middleware"
	"cuidarte/notion"
	"cuidarte/routes"
	"cuidarte/services/notification"
	"cuidarte/services/scheduling"
	syncsvc "cuidarte/services/sync"
	"cuidarte/services/tasks"
	"cuidarte/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// External collaborators.
	notionClient := notion.NewClient(config.AppConfig.NotionAPIURL, config.AppConfig.NotionToken)
	slackNotifier := notification.NewSlackNotifier(config.AppConfig.SlackWebhookTestimonials)

	// Notification sideband: asynq worker draining the queue plus the
	// dispatcher feeding it.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()
	worker := tasks.StartWorker(redisOpt, slackNotifier)

	dispatcher := &tasks.QueueDispatcher{
		Client:   asynqClient,
		Notifier: slackNotifier,
	}

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Notion:     notionClient,
		DatabaseID: config.AppConfig.NotionTestimonialsDB,
		AssigneeID: config.AppConfig.NotionResponsableID,
		Dispatcher: dispatcher,
	}
	syncService := &syncsvc.DefaultSyncService{
		Notion:     notionClient,
		DatabaseID: config.AppConfig.NotionTestimonialsDB,
		Pacing:     syncsvc.PacingFromConfig(),
	}

	testimonialHandler := handlers.NewTestimonialHandler(schedulingService)
	syncHandler := handlers.NewSyncHandler(syncService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookTestimonial: testimonialHandler.BookTestimonialHandler,
		SyncStatus:      syncHandler.SyncStatusHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetQueueClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
