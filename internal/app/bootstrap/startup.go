// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/xenodash/internal/app/resources"
	"github.com/dalemusser/xenodash/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the upstream
// clients are built, but before the HTTP handler is built. It loads the
// shared templates, applies configured deadlines and starts the state
// cleanup worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Auth:   appCfg.TimeoutAuth,
		Fetch:  appCfg.TimeoutFetch,
		Export: appCfg.TimeoutExport,
	})
	logger.Info("upstream timeouts configured", zap.Any("timeouts", timeouts.Current()))

	if deps.Cleanup != nil {
		if err := deps.Cleanup.Start(); err != nil {
			logger.Error("state cleanup worker failed to start", zap.Error(err))
			return err
		}
	}
	return nil
}
