package jobs

import (
	"time"

	"go.uber.org/zap"
)

// SessionSweepJobName is the scheduler name of the idle-session sweep
const SessionSweepJobName = "session_sweep"

// SessionSweeper drops idle dashboard sessions. Implemented by session.Store.
type SessionSweeper interface {
	SweepIdle(now time.Time) int
}

// SessionSweepJob removes dashboard sessions nobody has used within the idle timeout
type SessionSweepJob struct {
	sweeper SessionSweeper
	now     func() time.Time
	logger  *zap.Logger
}

func NewSessionSweepJob(sweeper SessionSweeper, logger *zap.Logger) *SessionSweepJob {
	return &SessionSweepJob{sweeper: sweeper, now: time.Now, logger: logger}
}

// Run sweeps once. Returns the number of sessions removed.
func (j *SessionSweepJob) Run() int {
	start := j.now()
	removed := j.sweeper.SweepIdle(start)
	j.logger.Debug("session sweep completed",
		zap.Int("removed", removed),
		zap.Duration("duration", time.Since(start)))
	return removed
}

// RegisterSessionSweepJob registers the sweep on the scheduler under cronExpr
func RegisterSessionSweepJob(scheduler *Scheduler, sweeper SessionSweeper, logger *zap.Logger, cronExpr string) error {
	job := NewSessionSweepJob(sweeper, logger)
	return scheduler.AddJob(SessionSweepJobName, cronExpr, func() { job.Run() })
}
