// internal/app/features/dashboard/container.go
package dashboard

import (
	"context"
	"time"

	"github.com/dalemusser/xenodash/internal/app/store/dashstate"
	"github.com/dalemusser/xenodash/internal/app/system/metrics"
	"github.com/dalemusser/xenodash/internal/app/system/timeouts"
	"github.com/dalemusser/xenodash/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FetchFailedMessage is the alert shown when any dashboard read fails.
const FetchFailedMessage = "Failed to fetch dashboard data. Maybe token expired."

// DataSource is the slice of the analytics API the dashboard reads from.
// *analytics.Client satisfies it.
type DataSource interface {
	Summary(ctx context.Context, token string) (models.SummaryMetrics, error)
	OrdersByDate(ctx context.Context, token string, rng models.DateRange) ([]models.OrderByDate, error)
	TopCustomers(ctx context.Context, token string) ([]models.TopCustomer, error)
	ExportTopCustomers(ctx context.Context, token string) ([]byte, error)
}

// Container owns per-session dashboard state and the fetch that fills it.
type Container struct {
	API    DataSource
	States *dashstate.Store
	Log    *zap.Logger
}

// NewContainer constructs a Container.
func NewContainer(api DataSource, states *dashstate.Store, logger *zap.Logger) *Container {
	return &Container{API: api, States: states, Log: logger}
}

// State returns the current state for sid; a missing slot reads as the zero
// state.
func (c *Container) State(sid string) models.DashboardState {
	st, _ := c.States.Get(sid)
	return st
}

// BeginAuth marks sid as waiting on a login round trip.
func (c *Container) BeginAuth(sid string) {
	c.States.Update(sid, func(st *models.DashboardState) {
		st.Phase = models.PhaseAuthenticating
	})
}

// Refresh runs the three dashboard reads concurrently with token and rng.
//
// Without a token it does nothing. Only when all three succeed are summary,
// series and top customers replaced together; on any failure the previous
// data is kept, the loading flag is cleared and the first error is returned.
func (c *Container) Refresh(ctx context.Context, sid, token string, rng models.DateRange) error {
	if token == "" {
		return nil
	}

	c.States.Update(sid, func(st *models.DashboardState) {
		st.Loading = true
		st.Filter = rng
		st.Phase = models.PhaseLoading
	})

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), c.Log, "dashboard fetch")
	defer cancel()

	var (
		summary models.SummaryMetrics
		orders  []models.OrderByDate
		top     []models.TopCustomer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = c.API.Summary(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = c.API.OrdersByDate(gctx, token, rng)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = c.API.TopCustomers(gctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		c.States.Update(sid, func(st *models.DashboardState) {
			st.Loading = false
			st.Phase = models.PhaseReady
		})
		metrics.DashboardFetchesTotal.WithLabelValues("error").Inc()
		c.Log.Warn("dashboard fetch failed", zap.String("sid", sid), zap.Error(err))
		return err
	}

	c.States.Update(sid, func(st *models.DashboardState) {
		st.Summary = summary
		st.OrdersByDate = orders
		st.TopCustomers = top
		st.Loading = false
		st.Phase = models.PhaseReady
		st.LastFetched = time.Now()
	})
	metrics.DashboardFetchesTotal.WithLabelValues("ok").Inc()
	return nil
}

// Clear drops everything held for sid: summary, series, top customers and
// filter. The session reads as unauthenticated afterwards.
func (c *Container) Clear(sid string) {
	c.States.Delete(sid)
}

// Export downloads the top-customers CSV with token.
func (c *Container) Export(ctx context.Context, token string) ([]byte, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Export(), c.Log, "top customers export")
	defer cancel()
	return c.API.ExportTopCustomers(ctx, token)
}
