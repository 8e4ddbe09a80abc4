package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/irisagenda/agenda-api/internal/config"
	dbpkg "github.com/irisagenda/agenda-api/internal/db"
	"github.com/irisagenda/agenda-api/internal/logger"
	"github.com/irisagenda/agenda-api/internal/middleware"
	"github.com/irisagenda/agenda-api/internal/routes"
)

func main() {

	_ = godotenv.Load()
	logger.Setup()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
