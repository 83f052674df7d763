// Command framecut-api serves the configurator over HTTP.
//
// Configuration comes from the environment (and .env outside production):
//
//	PORT, APP_ENV, CATALOG_FAMILY, CATALOG_YAML, CATALOG_DRIVER, CATALOG_DSN,
//	CORS_ORIGINS, R2_ENDPOINT, R2_ACCESS_KEY, R2_SECRET_KEY, R2_BUCKET_NAME,
//	R2_PUBLIC_BASE_URL
package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/FrameCut/internal/api"
	"github.com/piwi3910/FrameCut/internal/config"
	"github.com/piwi3910/FrameCut/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	cat, closeCatalog := cfg.LoadCatalog(ctx)
	cancel()
	defer closeCatalog()

	var uploader storage.Uploader
	if cfg.Storage.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		r2, err := storage.NewR2Client(ctx, cfg.Storage)
		cancel()
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		uploader = r2
		log.Printf("storage: uploading exports to bucket %s", cfg.Storage.Bucket)
	} else {
		log.Println("storage: R2 not configured, document uploads disabled")
	}

	r := api.NewRouter(cat, uploader, cfg.AllowedOrigins)

	log.Printf("framecut-api (%s) listening on %s, %s catalog", cfg.Env, cfg.Addr(), cat.Family())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
