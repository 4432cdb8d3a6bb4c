package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/kmorris/pathtracer/pkg/logger"
	"github.com/kmorris/pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the web server")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log := logger.New(*logLevel, "")
	defer log.Sync()

	srv := server.NewServer(*port, log)
	if err := srv.Start(); err != nil {
		log.Fatal("web server failed", zap.Error(err))
	}
}
