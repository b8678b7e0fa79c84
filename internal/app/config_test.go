package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	storedb "github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "HEARTBEAT_SCHEDULE", "REMINDER_SCHEDULE", "REMINDER_WINDOW_DAYS", "JOBS_ENABLED", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig(logger.NewNop())

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, storedb.DriverPostgres, cfg.Store.Driver)
	require.Equal(t, "@every 5m", cfg.HeartbeatSchedule)
	require.Equal(t, "0 0 8 * * *", cfg.ReminderSchedule)
	require.Equal(t, 7*24*time.Hour, cfg.ReminderWindow)
	require.True(t, cfg.JobsEnabled)
	require.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("REMINDER_WINDOW_DAYS", "3")
	t.Setenv("JOBS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	cfg := LoadConfig(nil)

	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "/tmp/x.db", cfg.Store.SQLitePath)
	require.Equal(t, 3*24*time.Hour, cfg.ReminderWindow)
	require.False(t, cfg.JobsEnabled)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
