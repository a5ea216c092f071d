package main

import (
	"fmt"

	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/handler"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("basketd")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	h := handler.NewHandler(handler.NewBasketStore(), log)
	srv := server.NewServer(h.Init(), cfg.Server, log)
	srv.RunServer()
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
