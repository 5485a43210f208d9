package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cosplitz/cosplitz-client/internal/adapter"
	"github.com/cosplitz/cosplitz-client/internal/client"
	"github.com/cosplitz/cosplitz-client/internal/config"
	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/internal/service"
	"github.com/cosplitz/cosplitz-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cosplitz-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	api, err := adapter.NewHTTPAuthAPI(cfg.API, cfg.App, log, func() {
		log.Warn().Msg("backend rejected the session token")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create auth api")
	}

	sessionStore, err := store.NewSessionStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	sessions := service.NewSessionService(api, sessionStore, log)

	app := client.NewApp(sessions, log)
	if err = app.Run(flag.Args()); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
