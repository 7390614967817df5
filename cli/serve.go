package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"rpa-roi/config"
	httpLayer "rpa-roi/http"
	"rpa-roi/repository"
	"rpa-roi/service"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ROI calculation HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &CLIError{Message: "invalid configuration", Hint: "check the ROI_* environment variables", Err: err}
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	presets, err := config.LoadPresetTable(cfg.PresetsFile)
	if err != nil {
		return MapError(err)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()
		cache = redisCache
		log.Printf("Caching results in Redis at %s", cfg.RedisAddr)
	} else {
		memoryCache := repository.NewMemoryCache()
		defer memoryCache.Close()
		cache = memoryCache
	}

	roiService := service.NewROIService(cache, cfg.CacheTTL)
	roiHandler := httpLayer.NewROIHandler(roiService, presets)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	router := mux.NewRouter()
	roiHandler.RegisterRoutes(router, rateLimiter)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("ROI API listening on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides ROI_PORT)")
	RootCmd.AddCommand(serveCmd)
}
