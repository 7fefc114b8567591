package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heart-risk-service/internal/adapters/primary/http/handlers"
	"heart-risk-service/internal/adapters/primary/http/middleware"
	"heart-risk-service/internal/adapters/primary/http/web"
	"heart-risk-service/internal/config"
	"heart-risk-service/internal/core/services"
	"heart-risk-service/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	config.InitLogger(cfg.Logger)

	// Model provider is loaded once; the server does not start without it.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	classifier, model, err := provider.Open(loadCtx, cfg)
	cancelLoad()
	if err != nil {
		log.Fatalf("open model provider: %v", err)
	}
	log.WithFields(log.Fields{
		"model":   model.Name,
		"version": model.Version,
		"kind":    model.Kind,
		"source":  model.Source,
	}).Info("model provider ready")

	// Core Services (Application Layer)
	assessmentSvc := services.NewAssessmentService(classifier, model)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(assessmentSvc)

	tmpl, err := web.Load()
	if err != nil {
		log.Fatalf("load templates: %v", err)
	}

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	h.RegisterPages(router)
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/healthz", h.Health)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
