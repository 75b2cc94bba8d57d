package main

import (
	"os"

	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/server"
)

// @title Campus API
// @version 1.0
// @description Student roster, teaching staff and course catalog of a university
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	srv, err := server.NewServer(config.Path())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
