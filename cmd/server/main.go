package main

import (
	log "github.com/sirupsen/logrus"

	"go-linkedin-scout/internal/config"
	"go-linkedin-scout/internal/logger"
	"go-linkedin-scout/internal/scraper/linkedin"
	"go-linkedin-scout/internal/server"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	sc := linkedin.New(cfg)
	srv := server.New(cfg, sc)

	log.Printf("🚀 Server listening on port %s", cfg.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
