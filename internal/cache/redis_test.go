package cache

import (
	"testing"

	"github.com/mxshop-next/internal/config"
)

func TestInitRedisDisabled(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("redis should be disabled")
	}
	if Client() != nil {
		t.Fatalf("client should be nil when disabled")
	}
	if err := Close(); err != nil {
		t.Fatalf("close disabled redis failed: %v", err)
	}
}

func TestKey(t *testing.T) {
	redisPrefix = ""
	if got := Key("rate", "login"); got != "mx:rate:login" {
		t.Fatalf("default prefix key want mx:rate:login got %s", got)
	}
	redisPrefix = "shop"
	defer func() { redisPrefix = "" }()
	if got := Key("rate", " ", "sms"); got != "shop:rate:sms" {
		t.Fatalf("blank parts should be skipped, got %s", got)
	}
}
