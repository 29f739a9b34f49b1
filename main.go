package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PremPrakashCodes/preplate/configs"
	"github.com/PremPrakashCodes/preplate/middlewares"
	"github.com/PremPrakashCodes/preplate/pkg/logger"
	"github.com/PremPrakashCodes/preplate/routes"
	"github.com/PremPrakashCodes/preplate/ws"
)

func main() {
	cfg := configs.LoadConfig()

	log := logger.Init(cfg.Production())
	defer log.Sync()

	if cfg.UsingFallbackSecret() {
		if cfg.Production() {
			log.Fatal("JWT_SECRET is not set; refusing to start in production with the fallback secret")
		}
		log.Warn("JWT_SECRET is not set, using the development fallback secret")
	}

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	hub := ws.NewOrderHub(log)
	go hub.Run()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))

	routes.RegisterRoutes(r, db, cfg, hub)

	log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
