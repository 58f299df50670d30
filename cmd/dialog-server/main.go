// Command dialog-server serves music personality dialogues over HTTP. Each
// session is created for one case (a person's audio feature values) and the
// system opens with its extraversion prediction; subsequent messages run one
// dialogue turn each.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/internal/httpapi"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/musicpersona"
	"github.com/hupe1980/dialogmesh/nlu"
	nluanthropic "github.com/hupe1980/dialogmesh/nlu/anthropic"
	nluopenai "github.com/hupe1980/dialogmesh/nlu/openai"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	bundlePath := flag.String("bundle", "extraversion_bundle.yml", "classifier bundle YAML file")
	nluBackend := flag.String("nlu", "keyword", "understander backend: keyword, openai or anthropic")
	nluConfigPath := flag.String("nlu-config", "", "understander YAML config (required for LLM backends)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "json", "json or text")
	flag.Parse()

	logger := logging.NewSlogLogger(parseLevel(*logLevel), *logFormat, false).
		WithComponent("dialog-server")

	bundle, err := musicpersona.LoadBundle(*bundlePath)
	if err != nil {
		logger.Error("Cannot load classifier bundle", "error", err)
		os.Exit(1)
	}

	understander, err := buildUnderstander(*nluBackend, *nluConfigPath, logger)
	if err != nil {
		logger.Error("Cannot build understander", "error", err)
		os.Exit(1)
	}

	newDomain := func(params map[string]float64) core.Domain {
		return musicpersona.NewFromBundle(bundle, params)
	}
	api := httpapi.New(newDomain, understander, musicpersona.Generator{}, func(o *httpapi.Options) {
		o.Logger = logger
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", "addr", *addr, "nlu", *nluBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}

func buildUnderstander(backend, configPath string, logger logging.Logger) (core.Understander, error) {
	if backend == "keyword" {
		return musicpersona.Understander{}, nil
	}
	if configPath == "" {
		return nil, fmt.Errorf("nlu backend %q requires -nlu-config", backend)
	}
	cfg, err := nlu.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	reg := musicpersona.NewRegistry()
	switch backend {
	case "openai":
		return nluopenai.New(reg, nluopenai.FromConfig(cfg), func(o *nluopenai.Options) {
			o.Logger = logger
		}), nil
	case "anthropic":
		return nluanthropic.New(reg, nluanthropic.FromConfig(cfg), func(o *nluanthropic.Options) {
			o.Logger = logger
		}), nil
	}
	return nil, fmt.Errorf("unknown nlu backend %q", backend)
}

func parseLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
