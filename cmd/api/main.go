package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/go-chi/chi/v5"

	appai "github.com/medicode-ai/medicode/internal/application/ai"
	"github.com/medicode-ai/medicode/internal/config"
	openaiClient "github.com/medicode-ai/medicode/internal/infra/ai/openai"
	"github.com/medicode-ai/medicode/internal/infra/httpserver"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		stdlog.Fatalf("config load error: %v", err)
	}
	if cfg.Upstream.APIKey == "" {
		stdlog.Fatal("upstream API key missing: set upstream.apiKey or OPENAI_API_KEY")
	}

	logger := &log.Logger{Handler: text.New(os.Stderr), Level: log.InfoLevel}

	// init upstream model client + service
	upstream := openaiClient.NewClient(cfg.Upstream.APIKey, cfg.Upstream.Model)
	svc := appai.NewService(upstream)

	// init router
	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Upstream.APIKey, logger))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// Completions can take a while; don't cut long replies off.
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			stdlog.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("shutdown error")
	}
}
