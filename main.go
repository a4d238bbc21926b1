package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gridpath/astar"
	"gridpath/config"
	"gridpath/server"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	port       = flag.Int("port", 0, "listen port, overrides the config")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("config: ", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer logger.Sync()

	if cfg.Env == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}

	finder := astar.New(
		astar.WithLogger(logger.Named("astar")),
		astar.WithExpansionLimit(cfg.ExpansionLimit),
	)
	if err := server.New(finder, logger.Named("server")).Run(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
