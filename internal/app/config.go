package app

import (
	"strings"
	"time"

	storedb "github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/platform/envutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type Config struct {
	Port           string
	LogMode        string
	Environment    string
	Version        string
	AllowedOrigins []string

	Store storedb.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LivenessKey   string
	LivenessTTL   time.Duration

	JobsEnabled          bool
	JobRunTimeout        time.Duration
	HeartbeatSchedule    string
	HeartbeatLogPath     string
	HeartbeatHealthQuery bool
	ReminderSchedule     string
	ReminderLogPath      string
	ReminderWindow       time.Duration

	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:           envutil.String("PORT", "8080"),
		LogMode:        envutil.String("LOG_MODE", "development"),
		Environment:    envutil.String("APP_ENV", "development"),
		Version:        envutil.String("APP_VERSION", ""),
		AllowedOrigins: splitList(envutil.String("CORS_ALLOWED_ORIGINS", "")),

		Store: storedb.Config{
			Driver:           envutil.String("DB_DRIVER", storedb.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "crm"),
			SQLitePath:       envutil.String("SQLITE_PATH", "crm.db"),
			MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:     envutil.Int("DB_MAX_IDLE_CONNS", 5),
		},

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),
		LivenessKey:   envutil.String("HEARTBEAT_REDIS_KEY", "crm:heartbeat"),
		LivenessTTL:   envutil.Duration("HEARTBEAT_REDIS_TTL", 15*time.Minute),

		JobsEnabled:          envutil.Bool("JOBS_ENABLED", true),
		JobRunTimeout:        envutil.Duration("JOB_RUN_TIMEOUT", time.Minute),
		HeartbeatSchedule:    envutil.String("HEARTBEAT_SCHEDULE", "@every 5m"),
		HeartbeatLogPath:     envutil.String("HEARTBEAT_LOG_PATH", "/tmp/crm_heartbeat_log.txt"),
		HeartbeatHealthQuery: envutil.Bool("HEARTBEAT_HEALTH_QUERY", true),
		ReminderSchedule:     envutil.String("REMINDER_SCHEDULE", "0 0 8 * * *"),
		ReminderLogPath:      envutil.String("REMINDER_LOG_PATH", "/tmp/order_reminders_log.txt"),
		ReminderWindow:       time.Duration(envutil.Int("REMINDER_WINDOW_DAYS", 7)) * 24 * time.Hour,

		MetricsEnabled:  envutil.Bool("METRICS_ENABLED", true),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if log != nil {
		log.Info("Config loaded",
			"port", cfg.Port,
			"db_driver", cfg.Store.Driver,
			"jobs_enabled", cfg.JobsEnabled,
			"metrics_enabled", cfg.MetricsEnabled,
			"redis", cfg.RedisAddr != "",
		)
	}
	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
