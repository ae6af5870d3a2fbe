package utils

import (
	"testing"

	"labport/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestConfiguredLevelReadsLogLevel(t *testing.T) {
	prevLevel := config.AppConfig.LogLevel
	prevEnv := config.AppConfig.Env
	defer func() {
		config.AppConfig.LogLevel = prevLevel
		config.AppConfig.Env = prevEnv
	}()

	config.AppConfig.LogLevel = "warn"
	assert.Equal(t, zapcore.WarnLevel, configuredLevel())

	config.AppConfig.LogLevel = "error"
	assert.Equal(t, zapcore.ErrorLevel, configuredLevel())

	// Unset or garbage falls back per environment.
	config.AppConfig.LogLevel = ""
	config.AppConfig.Env = "production"
	assert.Equal(t, zapcore.InfoLevel, configuredLevel())

	config.AppConfig.LogLevel = "shouting"
	config.AppConfig.Env = "development"
	assert.Equal(t, zapcore.DebugLevel, configuredLevel())
}
