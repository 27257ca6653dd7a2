package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/catalog"
	"github.com/snap-point/tour-guide-api/config"
	"github.com/snap-point/tour-guide-api/media"
	"github.com/snap-point/tour-guide-api/routes"
	"github.com/snap-point/tour-guide-api/sessions"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := loadCatalog(ctx)

	var signer media.Signer = media.StaticSigner{}
	if r2 := config.GetR2Config(); r2.Enabled() {
		signer = media.NewR2Signer(config.NewR2Client(r2), r2.BucketName, media.DefaultURLExpiry)
		log.Printf("Signing audio URLs against bucket %s", r2.BucketName)
	} else if r2.PublicURL != "" {
		signer = media.StaticSigner{BaseURL: r2.PublicURL}
	}

	manager := sessions.NewManager(cat, cfg.SessionTTL)
	go manager.Run(ctx, cfg.SweepInterval)

	// Create a new Gin router
	r := gin.New()
	r.Use(gin.LoggerWithWriter(os.Stdout), gin.Recovery())

	routes.SetupRoutes(r, &routes.Services{
		Catalog:  cat,
		Sessions: manager,
		Tokens:   sessions.NewTokenIssuer(cfg.SessionSecret),
		Signer:   signer,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

// loadCatalog reads the catalog from Postgres when configured and falls back
// to the built-in one otherwise.
func loadCatalog(ctx context.Context) *catalog.Catalog {
	dbCfg := config.GetDBConfig()
	if dbCfg == nil {
		log.Printf("DB_HOST not set, using built-in catalog")
		return catalog.Default(time.Now())
	}

	db, err := config.InitDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	cat, err := catalog.Load(ctx, db)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d attractions and %d audio tours from database", len(cat.Attractions), len(cat.AudioTours))
	return cat
}
