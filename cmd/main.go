package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/guhz021/microblog-api/config"
	"github.com/guhz021/microblog-api/internal/container"
	"github.com/guhz021/microblog-api/internal/infrastructure/mongodb"
	"github.com/guhz021/microblog-api/internal/interface/middleware"
	"github.com/guhz021/microblog-api/internal/router"
	"github.com/guhz021/microblog-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoConnTimeout)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to mongodb")
	}
	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		logger.WithError(err).Fatal("failed to ensure mongodb indexes")
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(client)
	container.SetMongoDB(db)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RealIP())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	}))
	if cfg.HTTPLogEnabled {
		engine.Use(middleware.AccessLog(logger))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Rota não encontrada")
	})

	reg := router.NewRegistry(engine)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("http server shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.WithError(err).Error("mongodb disconnect")
	}
	logger.Info("server stopped")
}
