// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background work and drops idle upstream connections.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.Cleanup != nil {
		logger.Info("stopping state cleanup worker")
		deps.Cleanup.Stop()
	}
	if deps.API != nil {
		deps.API.HTTP.CloseIdleConnections()
	}
	if deps.Legacy != nil {
		deps.Legacy.HTTP.CloseIdleConnections()
	}
	return nil
}
