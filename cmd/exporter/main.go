package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/config"
	"github.com/hamed0406/monexport/internal/httpapi"
	"github.com/hamed0406/monexport/internal/logging"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("MONITOR_CONFIG"), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	srv := httpapi.NewServer(logger, cfg.OutputPath)

	logger.Info("exporter_listen",
		zap.String("addr", cfg.Addr),
		zap.String("metrics_file", cfg.OutputPath),
	)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
