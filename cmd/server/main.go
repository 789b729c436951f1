package main

import (
	"github.com/navigate-zea/navigate/backend/internal/server"
	"github.com/navigate-zea/navigate/backend/internal/util"
	"github.com/navigate-zea/navigate/backend/pkg/logger"
	"github.com/navigate-zea/navigate/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
