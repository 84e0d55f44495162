package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"cashless/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RedactsSensitiveAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "cashless"
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("login", slog.String("username", "alice"), slog.String("password", "hunter2"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cashless", line["service"])
	assert.Equal(t, "alice", line["username"])
	assert.Equal(t, redacted, line["password"])
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
