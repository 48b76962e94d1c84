package initializers

import (
	"time"

	"hr-evaluation-backend/config"
	"hr-evaluation-backend/db"
)

func InitDBConnection() {
	conf := config.Conf.Database
	pool := db.PoolSettings{
		MaxOpenConns:    conf.MaxOpenConns,
		MaxIdleConns:    conf.MaxIdleConns,
		ConnMaxLifetime: time.Duration(conf.ConnLifetime) * time.Second,
	}
	err := db.Connect(conf.Host, conf.Port, conf.Name, conf.User, conf.Password, *conf.DebugMode, *conf.MigrateOnStart, pool)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
