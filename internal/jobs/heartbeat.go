package jobs

import (
	"context"
	"time"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

const heartbeatLayout = "02/01/2006-15:04:05"

// HealthProbe answers the in-process health query; QueryService.Hello fits.
type HealthProbe interface {
	Hello(ctx context.Context) (string, error)
}

type LivenessRecorder interface {
	RecordHeartbeat(ctx context.Context, at time.Time) error
}

// Heartbeat appends "<dd/mm/YYYY-HH:MM:SS> CRM is alive" to its log on every
// run, followed by the health probe's answer when a probe is configured.
type Heartbeat struct {
	out      *logger.Logger
	log      *logger.Logger
	probe    HealthProbe
	liveness LivenessRecorder
	now      func() time.Time
}

type HeartbeatDeps struct {
	Out      *logger.Logger
	Log      *logger.Logger
	Probe    HealthProbe
	Liveness LivenessRecorder
	Now      func() time.Time
}

func NewHeartbeat(deps HeartbeatDeps) *Heartbeat {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Heartbeat{
		out:      deps.Out,
		log:      deps.Log.With("job", "heartbeat"),
		probe:    deps.Probe,
		liveness: deps.Liveness,
		now:      now,
	}
}

func (h *Heartbeat) Name() string { return "heartbeat" }

func (h *Heartbeat) Run(ctx context.Context) error {
	now := h.now()
	stamp := now.Format(heartbeatLayout)
	h.out.Info(stamp + " CRM is alive")

	if h.probe != nil {
		greeting, err := h.probe.Hello(ctx)
		if err != nil {
			h.out.Info(stamp + " health check failed: " + err.Error())
		} else {
			h.out.Info(stamp + " hello: " + greeting)
		}
	}
	h.out.Sync()

	if h.liveness != nil {
		if err := h.liveness.RecordHeartbeat(ctx, now); err != nil {
			h.log.Warn("Liveness write failed", "error", err)
		}
	}
	return nil
}
