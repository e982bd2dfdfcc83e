package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Api struct {
		Telegram struct {
			Token string `envconfig:"API_TELEGRAM_TOKEN" required:"true"`
		}
		Status struct {
			Port uint16 `envconfig:"API_STATUS_PORT" default:"8080" required:"true"`
		}
	}
	Catalog struct {
		Host         string        `envconfig:"CATALOG_HOST" default:"kitapyurdu.com" required:"true"`
		FetchTimeout time.Duration `envconfig:"CATALOG_FETCH_TIMEOUT" default:"20s" required:"true"`
	}
	Check struct {
		Interval    time.Duration `envconfig:"CHECK_INTERVAL" default:"300s" required:"true"`
		Delay       time.Duration `envconfig:"CHECK_DELAY" default:"1s" required:"true"`
		Concurrency uint16        `envconfig:"CHECK_CONCURRENCY" default:"4" required:"true"`
	}
	Db struct {
		Dir string `envconfig:"DB_DIR" default:"." required:"true"`
	}
	Admin struct {
		// SuperId is the single non-removable super admin, always a member of the admin set.
		SuperId string `envconfig:"ADMIN_SUPER_ID" required:"true"`
	}
	Log struct {
		Level int `envconfig:"LOG_LEVEL" default:"-4" required:"true"`
	}
}

func NewConfigFromEnv() (cfg Config, err error) {
	err = envconfig.Process("", &cfg)
	return
}
