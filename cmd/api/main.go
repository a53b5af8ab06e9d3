package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VaultSyncBR/backup-console/internal/cache"
	"github.com/VaultSyncBR/backup-console/internal/config"
	dbpkg "github.com/VaultSyncBR/backup-console/internal/db"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
	"github.com/VaultSyncBR/backup-console/internal/routes"
	"github.com/VaultSyncBR/backup-console/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	tokens := cache.NewRedisTokenStore(cfg)
	files := storage.NewBackupFileStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, tokens, files)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
