package initializers

import (
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	"hr-evaluation-backend/lib/smtp"
)

func InitSmtp() {
	smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if !smtp.Instance.IsConfigured() {
		log.Warn("SMTP не настроен, уведомления по почте отключены")
	}
}
