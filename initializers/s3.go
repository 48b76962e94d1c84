package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	s3client "hr-evaluation-backend/s3"
)

// InitS3 без хранилища сервис работает, загрузка фото и подписей отвечает ошибкой
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, хранение файлов отключено")
		return
	}
	if _, err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
