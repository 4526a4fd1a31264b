package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "net/http/pprof"

	"variant-service/internal/catalog"
	"variant-service/internal/config"
	serverhttp "variant-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	cat := catalog.New()
	if cfg.CatalogFile != "" {
		n, err := cat.LoadFile(cfg.CatalogFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("load catalog")
		}
		logger.Info().Int("variants", n).Str("file", cfg.CatalogFile).Msg("catalog loaded")
	}

	r := serverhttp.NewRouter(cfg, logger, cat)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
