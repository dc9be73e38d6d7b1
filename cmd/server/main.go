package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "gocloud.dev/blob/fileblob"

	"github.com/stitchfit/marketplace/internal/blob"
	"github.com/stitchfit/marketplace/internal/config"
	"github.com/stitchfit/marketplace/internal/db"
	"github.com/stitchfit/marketplace/internal/events"
	"github.com/stitchfit/marketplace/internal/httpserver"
	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/mailer"
	loggingmw "github.com/stitchfit/marketplace/internal/middleware/logging"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/search"
	"github.com/stitchfit/marketplace/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmpty(cfg.BlobBucketURL, "BLOB_BUCKET_URL")
	config.MustNonEmpty(cfg.BlobBaseURL, "BLOB_BASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	store, err := blob.Open(context.Background(), cfg.BlobBucketURL, cfg.BlobBaseURL)
	if err != nil {
		log.Fatalf("blob open: %v", err)
	}

	var index *search.Index
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		index = search.NewIndex(esClient)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	mail := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SenderEmail)

	r := repo.New(gormDB)
	authSvc := service.NewAuthService(r, mail, producer, cfg.JWTSecret)
	orderSvc := service.NewOrderService(r, producer)
	catalogSvc := service.NewCatalogService(r, index, producer)
	partySvc := service.NewPartyService(r)
	imageSvc := service.NewImageService(r, store)
	contactSvc := service.NewContactService(r, mail)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpserver.NewValidator()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc},
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc},
		ProfileHandler: &httpserver.ProfileHTTP{Svc: partySvc},
		ImageHandler:   &httpserver.ImageHTTP{Svc: imageSvc},
		ContactHandler: &httpserver.ContactHTTP{Svc: contactSvc},
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("blob close error: %v", err)
	}

	logger.Info("shutdown complete")
}
