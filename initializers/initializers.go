package initializers

import (
	"context"
	"time"

	"hr-evaluation-backend/config"
	"hr-evaluation-backend/fiberlog"
	authhandler "hr-evaluation-backend/lib/auth"
	dashboardhandler "hr-evaluation-backend/lib/dashboard"
	branchprovider "hr-evaluation-backend/lib/dicts/branch"
	departmentprovider "hr-evaluation-backend/lib/dicts/department"
	positionprovider "hr-evaluation-backend/lib/dicts/position"
	employeehandler "hr-evaluation-backend/lib/employee"
	xlsexport "hr-evaluation-backend/lib/export/xls"
	filestorage "hr-evaluation-backend/lib/file-storage"
	"hr-evaluation-backend/lib/rbac"
	registrationhandler "hr-evaluation-backend/lib/registration"
	submissionhandler "hr-evaluation-backend/lib/submission"
	suspensionhandler "hr-evaluation-backend/lib/suspension"
	suspensionworker "hr-evaluation-backend/lib/suspension/worker"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.Log.Level)
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	departmentprovider.NewHandler()
	branchprovider.NewHandler()
	positionprovider.NewHandler()
	suspensionhandler.NewHandler()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	submissionhandler.NewHandler()
	registrationhandler.NewHandler()
	dashboardhandler.NewHandler()
	rbac.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Перевод истекших отстранений на рассмотрение
	interval := time.Duration(config.Conf.Evaluation.SuspensionCheckInterval) * time.Second
	suspensionworker.StartWorker(ctx, interval)
}
