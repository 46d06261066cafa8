package main

import (
	"time"

	"gym_page_auditor/internal/application/config"
	"gym_page_auditor/internal/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	logInstance := log.New()
	logInstance.SetFormatter(&log.JSONFormatter{
		TimestampFormat:   time.RFC3339,
		DisableHTMLEscape: true,
	})

	cfg, err := config.NewAppConfig()
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to load config`)
		return
	}

	//log level
	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to parse log level`)
		return
	}
	logInstance.SetLevel(logLevel)

	cli.Execute(logInstance, cfg)
}
