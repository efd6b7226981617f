package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		value   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			level, err := ParseLogLevel(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_SERVER_TOKEN", "secret")
	t.Setenv("REVERSI_SERVER_PREFORK", "false")
	t.Setenv("REVERSI_REDIS_URL", "")
	t.Setenv("REVERSI_POSTGRES_URL", "postgres://localhost/reversi")

	cfg := LoadServerConfig()

	require.Equal(t, &ServerConfig{
		ServerHost:  "localhost",
		ServerPort:  "3000",
		Token:       "secret",
		Prefork:     false,
		RedisURL:    "",
		PostgresURL: "postgres://localhost/reversi",
	}, cfg)
}
