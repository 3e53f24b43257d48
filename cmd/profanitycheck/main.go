package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/Quorum-Code/profanitycheck/internal/config"
	"github.com/Quorum-Code/profanitycheck/internal/logging"
	"github.com/Quorum-Code/profanitycheck/internal/webserver"
)

type RunConfig struct {
	Debug   bool
	EnvPath string
}

func main() {
	rcfg := RunConfig{}

	flag.BoolVar(&rcfg.Debug, "debug", false, "Enable debug mode")
	flag.StringVar(&rcfg.EnvPath, "env", ".env", "Path to .env file")
	flag.Parse()

	cfg, err := config.Load(rcfg.EnvPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	cfg.Debug = rcfg.Debug
	if cfg.Debug {
		cfg.LogLevel = "DEBUG"
	}

	logger := logging.Configure(cfg.LogLevel)

	err = webserver.StartServer(cfg, logger)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
