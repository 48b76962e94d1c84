package initializers

import (
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/fiberlog"
)

var jsonFormatter = &log.JSONFormatter{
	FieldMap: log.FieldMap{
		log.FieldKeyTime: "@timestamp",
		log.FieldKeyMsg:  "message",
	},
}

// InitLogger глобальный логгер с уровнем из конфига, логгер запросов всегда на debug, тела запросов не пишутся из-за паролей
func InitLogger(level string) *fiberlog.Config {
	log.SetFormatter(jsonFormatter)
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).WithField("level", level).Warn("неизвестный уровень логирования, используется info")
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)

	requestLogger := log.New()
	requestLogger.SetFormatter(jsonFormatter)
	requestLogger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: requestLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.RequestID,
		},
	}
}
