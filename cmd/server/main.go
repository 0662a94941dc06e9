package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucian886/healthManagement/internal/app/config"
	"github.com/lucian886/healthManagement/internal/app/dsn"
	"github.com/lucian886/healthManagement/internal/app/handler"
	"github.com/lucian886/healthManagement/internal/app/pkg/ai"
	"github.com/lucian886/healthManagement/internal/app/pkg/auth"
	"github.com/lucian886/healthManagement/internal/app/pkg/storage"
	"github.com/lucian886/healthManagement/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// Bearer tokens still work without redis, session cookies do not.
		log.WithError(err).Warn("redis unavailable, running without cookie sessions")
		sessionSvc = nil
	}

	store, err := storage.NewMinIO(cfg.MinIOHost+":"+cfg.MinIOPort,
		cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, cfg.MinIOPublicBase)
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	aiClient := ai.NewHTTPClient(cfg.AIServiceURL, time.Duration(cfg.AITimeoutSeconds)*time.Second)

	router := gin.Default()
	h := handler.NewHandler(repo, cfg, jwtSvc, sessionSvc, store, aiClient)
	h.RegisterHandler(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	if sessionSvc != nil {
		_ = sessionSvc.Close()
	}
}
