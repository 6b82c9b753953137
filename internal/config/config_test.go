package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg := Load()
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "order-notifier", cfg.NotifierGroup)
	assert.Equal(t, 2, cfg.NotifierWorkers)
	assert.Zero(t, cfg.OperatorChatID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OPERATOR_CHAT_ID", "4242")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("NOTIFIER_GROUP", "ops")
	t.Setenv("NOTIFIER_WORKERS", "8")

	cfg := Load()
	assert.Equal(t, int64(4242), cfg.OperatorChatID)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ops", cfg.NotifierGroup)
	assert.Equal(t, 8, cfg.NotifierWorkers)
}

func TestLoadBadWorkerCountFallsBack(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("NOTIFIER_WORKERS", "zero")

	assert.Equal(t, 1, Load().NotifierWorkers)
}
