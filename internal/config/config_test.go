package config_test

import (
	"testing"
	"time"

	"go-leave/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAllocations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := config.ParseAllocations("PAID:25, rtt:10.5")

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.True(t, decimal.NewFromInt(25).Equal(got["PAID"]))
		assert.True(t, decimal.RequireFromString("10.5").Equal(got["RTT"]))
	})

	t.Run("empty", func(t *testing.T) {
		got, err := config.ParseAllocations("")

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative missing separator", func(t *testing.T) {
		_, err := config.ParseAllocations("PAID25")
		assert.Error(t, err)
	})

	t.Run("negative zero days", func(t *testing.T) {
		_, err := config.ParseAllocations("PAID:0")
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "8088")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("LEAVE_INITIAL_ALLOCATIONS", "PAID:25")
	t.Setenv("RATE_LIMIT_BURST", "oops")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.True(t, decimal.NewFromInt(25).Equal(cfg.Leave.InitialAllocations["PAID"]))

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err = config.Load()
	assert.Error(t, err)
}
