// internal/app/system/workers/statecleanup.go
package workers

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleEvicter drops state not seen within ttl and reports how many entries
// were removed. *dashstate.Store satisfies it.
type IdleEvicter interface {
	EvictIdle(ttl time.Duration) int
}

// StateCleanup is a background worker that evicts idle dashboard state.
type StateCleanup struct {
	states   IdleEvicter
	log      *zap.Logger
	interval time.Duration
	idleTTL  time.Duration

	cron *cron.Cron
	once sync.Once
}

// NewStateCleanup creates a new state cleanup worker.
//
// Parameters:
//   - states: the dashboard state store
//   - logger: zap logger for logging
//   - interval: how often to run cleanup (e.g., 5 minutes)
//   - idleTTL: how long a slot may go unseen before it is evicted (e.g., 2 hours)
func NewStateCleanup(states IdleEvicter, logger *zap.Logger, interval, idleTTL time.Duration) *StateCleanup {
	return &StateCleanup{
		states:   states,
		log:      logger,
		interval: interval,
		idleTTL:  idleTTL,
	}
}

// Start schedules the cleanup job. It fails only if the interval is not
// positive.
func (w *StateCleanup) Start() error {
	if w.interval <= 0 {
		return fmt.Errorf("state cleanup interval must be positive, got %s", w.interval)
	}

	w.cron = cron.New(cron.WithChain(cron.Recover(cronLogger{w.log})))
	if _, err := w.cron.AddFunc(fmt.Sprintf("@every %s", w.interval), w.RunOnce); err != nil {
		return fmt.Errorf("schedule state cleanup: %w", err)
	}
	w.cron.Start()

	w.log.Info("state cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_ttl", w.idleTTL))
	return nil
}

// Stop halts scheduling and waits for a running cleanup to finish.
func (w *StateCleanup) Stop() {
	w.once.Do(func() {
		if w.cron == nil {
			return
		}
		<-w.cron.Stop().Done()
		w.log.Info("state cleanup worker stopped")
	})
}

// RunOnce performs one eviction pass.
func (w *StateCleanup) RunOnce() {
	if n := w.states.EvictIdle(w.idleTTL); n > 0 {
		w.log.Info("evicted idle dashboard state", zap.Int("count", n))
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ log *zap.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
