// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/xenodash/internal/app/store/analytics"
	"github.com/dalemusser/xenodash/internal/app/store/dashstate"
	"github.com/dalemusser/xenodash/internal/app/system/metrics"
	"github.com/dalemusser/xenodash/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the upstream clients and the in-memory state store.
// Nothing is dialed here; the first request (or /health) reaches out.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	states := dashstate.New()

	deps := Deps{
		API:     analytics.New(appCfg.APIBase, newUpstreamClient("analytics")),
		Legacy:  analytics.NewLegacy(appCfg.LegacyAPIBase, newUpstreamClient("legacy")),
		States:  states,
		Cleanup: workers.NewStateCleanup(states, logger, appCfg.StateCleanupInterval, appCfg.StateIdleTTL),
	}

	logger.Info("upstream clients ready",
		zap.String("api_base", appCfg.APIBase),
		zap.String("legacy_api_base", appCfg.LegacyAPIBase))
	return deps, nil
}

// newUpstreamClient returns an http.Client whose calls are counted and
// timed under the given client label. Deadlines come from request contexts.
func newUpstreamClient(name string) *http.Client {
	return &http.Client{Transport: metrics.InstrumentTransport(name, http.DefaultTransport)}
}

// EnsureSchema has nothing to prepare: there is no local schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
