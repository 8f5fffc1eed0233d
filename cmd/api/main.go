package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barblab-api/internal/db"
	"github.com/BruksfildServices01/barblab-api/internal/routes"
	"github.com/BruksfildServices01/barblab-api/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var store session.Store
	if cfg.RedisAddr != "" {
		store = session.NewRedisStore(cfg.RedisAddr)
		log.Printf("sessions backed by redis at %s", cfg.RedisAddr)
	} else {
		store = session.NewMemoryStore()
		log.Print("sessions backed by in-memory store")
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
