package auth

import (
	"net/http"

	"go.uber.org/zap"
)

// AddAlert queues a one-shot message that the next full page shows as a
// blocking browser alert. It must be called before the response is written.
func (sm *SessionManager) AddAlert(w http.ResponseWriter, r *http.Request, msg string) {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed while adding alert", zap.Error(err))
	}
	sess.AddFlash(msg, alertKey)
	if err := sess.Save(r, w); err != nil {
		sm.log.Error("save alert", zap.Error(err))
	}
}

// PopAlerts returns and clears queued alerts. Nothing is written when the
// queue is empty.
func (sm *SessionManager) PopAlerts(w http.ResponseWriter, r *http.Request) []string {
	sess, err := sm.GetSession(r)
	if err != nil {
		return nil
	}
	flashes := sess.Flashes(alertKey)
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		sm.log.Error("clear alerts", zap.Error(err))
	}

	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
