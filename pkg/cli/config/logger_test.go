package config_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "DEBUG"},
		{level: "info"},
		{level: "Info"},
		{level: "warn"},
		{level: "WARN"},
		{level: "error"},
		{level: "ERROR"},
		{level: "invalid", wantErr: true},
		{level: "", wantErr: true},
		{level: "warning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			for _, asJSON := range []bool{false, true} {
				cfg := &config.Logger{Level: tt.level, JSON: asJSON, Writer: &bytes.Buffer{}}

				logger, err := cfg.Configure()
				if tt.wantErr {
					gt.Error(t, err)
					continue
				}
				gt.NoError(t, err)
				gt.NotNil(t, logger)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Logger{Level: "warn", JSON: true, Writer: &buf}

	logger, err := cfg.Configure()
	gt.NoError(t, err)

	logger.Info("takeoff")
	logger.Warn("crosswind")

	gt.False(t, bytes.Contains(buf.Bytes(), []byte("takeoff")))
	gt.True(t, bytes.Contains(buf.Bytes(), []byte("crosswind")))
}

func TestLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Logger{Level: "info", JSON: true, Writer: &buf}

	logger, err := cfg.Configure()
	gt.NoError(t, err)

	logger.Info("starting", "sentry", config.Sentry{
		DSN: "https://key@sentry.example.com/1",
		Env: "staging",
	})

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("key@sentry.example.com")))
	gt.True(t, bytes.Contains(buf.Bytes(), []byte("staging")))
}

func TestLogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Logger{Level: "debug", Writer: &buf}

	logger, err := cfg.Configure()
	gt.NoError(t, err)

	logger.Debug("preflight check", "aircraft", "Yak 54")
	gt.String(t, buf.String()).Contains("preflight check")
	gt.String(t, buf.String()).Contains("Yak 54")
}

func TestLogger_Flags(t *testing.T) {
	cfg := &config.Logger{}
	names := flagNames(cfg.Flags())

	gt.Array(t, names).Length(2)
	gt.Value(t, names).Equal([]string{"log-level", "log-json"})
}
