package main

import (
	"os"

	"github.com/axela/cetpro-backend/internal/pkg/logger"
	"github.com/axela/cetpro-backend/internal/server"
)

// @title CETPRO Backend API
// @version 1.0
// @description Multi-tenant management API for vocational education institutions

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
