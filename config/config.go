package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int    `default:"10485760" env:"APP_BODY_LIMIT"`

		// адрес для уведомлений об ошибках 5xx, пустой = выключено
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-evaluation" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		MaxOpenConns   int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns   int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnLifetime   int    `default:"1800" env:"DB_CONN_LIFETIME_SEC"`
	}
	Auth struct {
		JWTSecret      string `default:"secret" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Log struct {
		// panic | fatal | error | warn | info | debug | trace
		Level string `default:"info" env:"LOG_LEVEL"`
	}
	Admin struct {
		Email     string `default:"" env:"ADMIN_EMAIL"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		FirstName string `default:"Admin" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"ADMIN_LAST_NAME"`
	}
	Fixtures struct {
		Dir string `default:"./static_preload" env:"FIXTURES_DIR"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"hr-evaluation" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Export struct {
		// каталог с ttf шрифтами для pdf, без шрифта кириллица транслитерируется
		FontDir string `default:"./static/font" env:"EXPORT_FONT_DIR"`
	}
	Evaluation struct {
		// DUAL_SIGNATURE | EMPLOYEE_FINAL
		EvaluatorViewPolicy     string `default:"DUAL_SIGNATURE" env:"EVALUATOR_VIEW_POLICY"`
		SuspensionCheckInterval int    `default:"600" env:"SUSPENSION_CHECK_INTERVAL_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env используется только при локальном запуске
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			panic(err)
		}
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
