package main

import (
	"hotelfin/config"
	"hotelfin/di"
	"hotelfin/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
