package services

import (
	"Hoard/internal/config"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	setLogOutputType(configuration, log)
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}
}

// NewDiscardLogService returns a LogService that drops every entry.
func NewDiscardLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Server.LogConfig.Level))
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		return
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr":
		log.SetOutput(os.Stderr)
	case "file":
		if configuration.Server.LogConfig.LogPath == "" {
			log.Error("file output requires logPath to be set, logging to stdout")
			log.SetOutput(os.Stdout)
			return
		}
		logFolder := strings.TrimRight(configuration.Server.LogConfig.LogPath, "/")
		logName := fmt.Sprintf("%s-%s.log", "hoard", time.Now().Format("2006-01-02"))
		logPath := filepath.Join(logFolder, logName)
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal(err)
		}
		log.Out = file
	}
}
