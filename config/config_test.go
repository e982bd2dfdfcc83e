package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	os.Setenv("API_TELEGRAM_TOKEN", "yohoho")
	os.Setenv("API_STATUS_PORT", "56789")
	os.Setenv("ADMIN_SUPER_ID", "123456789")
	os.Setenv("CHECK_INTERVAL", "2m")
	os.Setenv("LOG_LEVEL", "4")
	cfg, err := NewConfigFromEnv()
	assert.Nil(t, err)
	assert.Equal(t, "yohoho", cfg.Api.Telegram.Token)
	assert.Equal(t, uint16(56789), cfg.Api.Status.Port)
	assert.Equal(t, "123456789", cfg.Admin.SuperId)
	assert.Equal(t, 2*time.Minute, cfg.Check.Interval)
	assert.Equal(t, time.Second, cfg.Check.Delay)
	assert.Equal(t, uint16(4), cfg.Check.Concurrency)
	assert.Equal(t, "kitapyurdu.com", cfg.Catalog.Host)
	assert.Equal(t, 20*time.Second, cfg.Catalog.FetchTimeout)
	assert.Equal(t, 4, cfg.Log.Level)
}
