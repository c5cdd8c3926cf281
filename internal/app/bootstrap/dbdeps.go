// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/xenodash/internal/app/store/analytics"
	"github.com/dalemusser/xenodash/internal/app/store/dashstate"
	"github.com/dalemusser/xenodash/internal/app/system/workers"
)

// Deps holds the back-end dependencies for the app. There is no database:
// every figure comes from the analytics API, and per-session dashboard
// state lives in memory.
type Deps struct {
	API    *analytics.Client
	Legacy *analytics.LegacyClient
	States *dashstate.Store

	// Cleanup is started in Startup and stopped in Shutdown.
	Cleanup *workers.StateCleanup
}
