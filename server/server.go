// Package server assembles the HTTP service from configuration and runs it
// until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/backup"
	"github.com/mariam168/smart-shop-sub001/config"
	orderControllers "github.com/mariam168/smart-shop-sub001/controllers/order"
	"github.com/mariam168/smart-shop-sub001/database"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/routes"
	"github.com/mariam168/smart-shop-sub001/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run connects both databases, serves HTTP on cfg.Port and shuts down
// gracefully once ctx is done.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	if err := st.EnsureIndexes(ctx); err != nil {
		return err
	}
	log.Info("document store ready", zap.String("database", cfg.MongoDatabase))

	db, err := database.Open(cfg.DatabaseURL, !cfg.Production())
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("relational store ready")

	hub := orderControllers.NewHub(log)
	defer hub.Close()

	engine := NewEngine(cfg, log)
	routes.SetupRoutes(engine, routes.NewDeps(st, db, hub, cfg.JWTSecret, cfg.AdminAPIKey, cfg.UploadsDir))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.BackupDir != "" {
		g.Go(func() error {
			(&backup.Scheduler{
				Src:       cfg.UploadsDir,
				Dest:      cfg.BackupDir,
				Retention: cfg.BackupRetention,
				Hour:      cfg.BackupHour,
				Log:       log.Named("backup"),
			}).Run(gctx)
			return nil
		})
	}
	return g.Wait()
}

// NewEngine returns the gin engine with logging, recovery, CORS, the uploads
// file server and a health check. Routes are added by the caller.
func NewEngine(cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logger.Gin(log), gin.Recovery())

	// Allow large file uploads (1 GB)
	r.MaxMultipartMemory = 1 << 30

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-API-KEY", "X-Lang"},
		ExposeHeaders: []string{"Content-Length", "X-Total-Count"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.Static("/uploads", cfg.UploadsDir)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}
