// internal/app/features/overview/handler.go
package overview

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/dalemusser/xenodash/internal/app/features/errors"
	"github.com/dalemusser/xenodash/internal/app/features/components"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/dalemusser/xenodash/internal/app/system/timeouts"
	"github.com/dalemusser/xenodash/internal/app/system/viewdata"
	"github.com/dalemusser/xenodash/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadFailedMessage is the single alert shown when any metric fails.
const LoadFailedMessage = "Failed to load overview data"

// Source is the legacy metrics service. *analytics.LegacyClient satisfies it.
type Source interface {
	TotalCustomers(ctx context.Context) (models.Number, error)
	TotalOrders(ctx context.Context) (models.Number, error)
	TotalRevenue(ctx context.Context) (models.Number, error)
	TopCustomers(ctx context.Context) ([]models.TopCustomer, error)
	OrdersByDate(ctx context.Context) ([]models.OrderByDate, error)
}

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Legacy     Source
}

func NewHandler(legacy Source, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sm,
		ErrLog:     errLog,
		Legacy:     legacy,
	}
}

// Metrics is everything the overview page shows.
type Metrics struct {
	TotalCustomers models.Number
	TotalOrders    models.Number
	TotalRevenue   models.Number
	TopCustomers   []models.TopCustomer
	OrdersByDate   []models.OrderByDate
}

// Load fetches the five metrics concurrently. Nothing is returned unless
// all five succeed.
func Load(ctx context.Context, src Source) (Metrics, error) {
	var m Metrics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		m.TotalCustomers, err = src.TotalCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.TotalOrders, err = src.TotalOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.TotalRevenue, err = src.TotalRevenue(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.TopCustomers, err = src.TopCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.OrdersByDate, err = src.OrdersByDate(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}
	return m, nil
}

type pageData struct {
	viewdata.BaseVM
	Cards     []template.HTML
	Customers template.HTML
	Chart     template.HTML
}

// widgets renders the components for m.
func widgets(m Metrics) ([]template.HTML, template.HTML, template.HTML, error) {
	cards := []components.SummaryCard{
		components.NewSummaryCard("Total Customers", m.TotalCustomers),
		components.NewSummaryCard("Total Orders", m.TotalOrders),
		components.NewSummaryCard("Total Revenue", m.TotalRevenue),
	}
	out := make([]template.HTML, 0, len(cards))
	for _, c := range cards {
		h, err := c.HTML()
		if err != nil {
			return nil, "", "", err
		}
		out = append(out, h)
	}

	customers, err := components.NewTopCustomers(m.TopCustomers).HTML()
	if err != nil {
		return nil, "", "", err
	}
	chart, err := components.NewOrdersChart("overview-orders", m.OrdersByDate).HTML()
	if err != nil {
		return nil, "", "", err
	}
	return out, customers, chart, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /overview                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeOverview renders the legacy metrics. A failed load still renders
// the page, zeroed, with an alert.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Overview", "/"),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "overview")
	m, err := Load(ctx, h.Legacy)
	cancel()
	if err != nil {
		h.Log.Warn("overview load failed", zap.Error(err))
		data.Alerts = append(data.Alerts, LoadFailedMessage)
	}

	data.Cards, data.Customers, data.Chart, err = widgets(m)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render overview widgets", err, "Could not render the overview.", "/")
		return
	}

	templates.Render(w, r, "overview_page", data)
}
