package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-evaluation-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	models := []struct {
		name  string
		model interface{}
	}{
		{"Department", &dbmodels.Department{}},
		{"Branch", &dbmodels.Branch{}},
		{"Position", &dbmodels.Position{}},
		{"Employee", &dbmodels.Employee{}},
		{"Submission", &dbmodels.Submission{}},
		{"SubmissionHistory", &dbmodels.SubmissionHistory{}},
		{"SeenSubmission", &dbmodels.SeenSubmission{}},
		{"Suspension", &dbmodels.Suspension{}},
		{"Registration", &dbmodels.Registration{}},
	}
	for _, item := range models {
		if err := DB.AutoMigrate(item.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", item.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
