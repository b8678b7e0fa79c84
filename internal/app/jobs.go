package app

import (
	"fmt"

	redisclient "github.com/yungbote/crm-backend/internal/clients/redis"
	"github.com/yungbote/crm-backend/internal/jobs"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type jobLogs struct {
	heartbeat *logger.Logger
	reminders *logger.Logger
}

func (l jobLogs) Sync() {
	if l.heartbeat != nil {
		l.heartbeat.Sync()
	}
	if l.reminders != nil {
		l.reminders.Sync()
	}
}

func wireJobs(log *logger.Logger, cfg Config, serviceset Services, liveness redisclient.Liveness, metrics *observability.Metrics) (*jobs.Scheduler, jobLogs, error) {
	log.Info("Wiring jobs...")

	var recorder jobs.RunRecorder
	if metrics != nil {
		recorder = metrics
	}
	scheduler := jobs.NewScheduler(log, recorder, cfg.JobRunTimeout)

	heartbeatOut, err := logger.NewPlainFile(cfg.HeartbeatLogPath)
	if err != nil {
		return nil, jobLogs{}, fmt.Errorf("heartbeat log: %w", err)
	}
	remindersOut, err := logger.NewFile(cfg.ReminderLogPath)
	if err != nil {
		return nil, jobLogs{heartbeat: heartbeatOut}, fmt.Errorf("reminder log: %w", err)
	}
	outs := jobLogs{heartbeat: heartbeatOut, reminders: remindersOut}

	deps := jobs.HeartbeatDeps{Out: heartbeatOut, Log: log}
	if cfg.HeartbeatHealthQuery {
		deps.Probe = serviceset.Query
	}
	if liveness != nil {
		deps.Liveness = liveness
	}
	if err := scheduler.Register(cfg.HeartbeatSchedule, jobs.NewHeartbeat(deps)); err != nil {
		return nil, outs, err
	}

	reminders := jobs.NewOrderReminders(jobs.OrderRemindersDeps{
		Out:    remindersOut,
		Log:    log,
		Orders: serviceset.Query,
		Window: cfg.ReminderWindow,
	})
	if err := scheduler.Register(cfg.ReminderSchedule, reminders); err != nil {
		return nil, outs, err
	}

	return scheduler, outs, nil
}
