// cmd/afkbot/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/agent"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/config"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/lifecycle"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/logger"
	"go.uber.org/zap"
)

const (
	defaultConfigPath = "/etc/afkbot/afkbot.json"
	envPrefix         = "AFKBOT"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "Path to config file (JSON or YAML)")
	envFile := flag.String("env", ".env", "Path to dotenv file")
	flag.Parse()

	// the default file is optional, the environment alone is enough
	path := *configPath
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	var cfg config.AgentConfig
	if err := config.LoadAndValidate(path, &cfg, config.WithEnv(envPrefix, *envFile)); err != nil {
		return err
	}

	zl, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGHUP reopens the log file after external rotation
	if r, ok := closer.(logger.Reopener); ok {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		go logger.ReopenOnSignal(ctx, r, hup, zl)
	}

	a, err := agent.New(&cfg, zl)
	if err != nil {
		return err
	}

	opts := &lifecycle.ServerOptions{
		ListenAddr:        cfg.Health.ListenAddr,
		ServiceName:       cfg.Health.ServiceName,
		Service:           a,
		EnableHealthCheck: cfg.Health.ListenAddr != "",
		Logger:            zl,
	}

	err = lifecycle.RunServer(ctx, opts)
	if err != nil {
		zl.Error("Agent exited with error", zap.Error(err))
	}

	return err
}
