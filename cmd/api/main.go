package main

import (
	"os"

	"github.com/hanifz/tracerstudy/internal/pkg/logger"
	"github.com/hanifz/tracerstudy/internal/server"
)

// @title Tracer Study API
// @version 1.0
// @description API for the university alumni tracer study portal

// @contact.name API Support
// @contact.email support@tracerstudy.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
