package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbertime/barbertime-api/internal/cache"
	"github.com/barbertime/barbertime-api/internal/config"
	dbpkg "github.com/barbertime/barbertime-api/internal/db"
	"github.com/barbertime/barbertime-api/internal/middleware"
	"github.com/barbertime/barbertime-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
