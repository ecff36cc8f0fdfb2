// File: internal/jobs/session_purge.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"huglu_mobile_backend/internal/config"
	"huglu_mobile_backend/internal/session"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionPurgeJob removes expired session entries on a schedule.
type SessionPurgeJob struct {
	store         session.Store
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewSessionPurgeJob creates a new SessionPurgeJob.
func NewSessionPurgeJob(
	store session.Store,
	logger *zap.Logger,
	cfg *config.Config,
) *SessionPurgeJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &SessionPurgeJob{
		store:         store,
		logger:        logger.Named("SessionPurgeJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *SessionPurgeJob) SetupAndStart() error {
	jobSpec := j.cfg.SessionPurgeJobSchedule // e.g., "@hourly", "0 * * * *"
	if jobSpec == "" {
		j.logger.Warn("Session purge job schedule not defined (SESSION_PURGE_JOB_SCHEDULE). Job will not run.")
		return nil // Not a fatal error, just won't run
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule session purge job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Session purge job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *SessionPurgeJob) runJob() {
	j.logger.Info("Starting session purge job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	purgedCount, err := j.store.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error("Session purge job run failed", zap.Error(err))
	} else {
		j.logger.Info("Session purge job run completed", zap.Int64("entries_purged", purgedCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *SessionPurgeJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping session purge job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Session purge job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Session purge job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	cl.zl.Info(msg, fields...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
