package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/xenodash/internal/app/features/dashboard"
	"github.com/dalemusser/xenodash/internal/app/store/dashstate"
	"github.com/dalemusser/xenodash/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSource is a DataSource whose answers are set per test.
type stubSource struct {
	summary    models.SummaryMetrics
	orders     []models.OrderByDate
	top        []models.TopCustomer
	csv        []byte
	summaryErr error
	ordersErr  error
	topErr     error
	exportErr  error

	// barrier, when set, makes each read wait until all three have started.
	barrier *sync.WaitGroup

	mu      sync.Mutex
	tokens  []string
	lastRng models.DateRange
}

func (s *stubSource) enter(token string) {
	s.mu.Lock()
	s.tokens = append(s.tokens, token)
	s.mu.Unlock()
	if s.barrier != nil {
		s.barrier.Done()
		s.barrier.Wait()
	}
}

func (s *stubSource) Summary(ctx context.Context, token string) (models.SummaryMetrics, error) {
	s.enter(token)
	return s.summary, s.summaryErr
}

func (s *stubSource) OrdersByDate(ctx context.Context, token string, rng models.DateRange) ([]models.OrderByDate, error) {
	s.enter(token)
	s.mu.Lock()
	s.lastRng = rng
	s.mu.Unlock()
	return s.orders, s.ordersErr
}

func (s *stubSource) TopCustomers(ctx context.Context, token string) ([]models.TopCustomer, error) {
	s.enter(token)
	return s.top, s.topErr
}

func (s *stubSource) ExportTopCustomers(ctx context.Context, token string) ([]byte, error) {
	return s.csv, s.exportErr
}

func fullSource() *stubSource {
	return &stubSource{
		summary: models.SummaryMetrics{TotalCustomers: 4, TotalOrders: 9, TotalRevenue: 1200.5},
		orders:  []models.OrderByDate{{Date: "2024-01-01", OrdersCount: 3, Revenue: 120.5}},
		top:     []models.TopCustomer{{FirstName: "Asha", LastName: "Rao", TotalSpent: 900}},
	}
}

func newContainer(src dashboard.DataSource) *dashboard.Container {
	return dashboard.NewContainer(src, dashstate.New(), zap.NewNop())
}

func TestRefresh_NoTokenIsNoop(t *testing.T) {
	src := fullSource()
	c := newContainer(src)

	require.NoError(t, c.Refresh(context.Background(), "sid", "", models.DateRange{}))
	assert.Empty(t, src.tokens)
	assert.Equal(t, 0, c.States.Len())
}

func TestRefresh_AllSucceed_ReplacesState(t *testing.T) {
	src := fullSource()
	c := newContainer(src)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rng := models.DateRange{Start: &start}

	require.NoError(t, c.Refresh(context.Background(), "sid", "tok", rng))

	st := c.State("sid")
	assert.Equal(t, models.PhaseReady, st.Phase)
	assert.False(t, st.Loading)
	assert.True(t, st.HasData())
	assert.Equal(t, 9.0, st.Summary.TotalOrders.Float())
	assert.Len(t, st.OrdersByDate, 1)
	assert.Len(t, st.TopCustomers, 1)
	assert.Equal(t, "2024-01-01", st.Filter.StartParam())
	assert.Equal(t, rng, src.lastRng)
	assert.Equal(t, []string{"tok", "tok", "tok"}, src.tokens)
}

func TestRefresh_OneFails_NoPartialUpdate(t *testing.T) {
	for _, which := range []string{"summary", "orders", "top"} {
		t.Run(which, func(t *testing.T) {
			c := newContainer(fullSource())
			require.NoError(t, c.Refresh(context.Background(), "sid", "tok", models.DateRange{}))
			before := c.State("sid")

			next := &stubSource{
				summary: models.SummaryMetrics{TotalOrders: 999},
				orders:  []models.OrderByDate{{Date: "2030-01-01"}, {Date: "2030-01-02"}},
				top:     []models.TopCustomer{{FirstName: "New"}},
			}
			boom := errors.New("boom")
			switch which {
			case "summary":
				next.summaryErr = boom
			case "orders":
				next.ordersErr = boom
			case "top":
				next.topErr = boom
			}
			c.API = next

			err := c.Refresh(context.Background(), "sid", "tok", models.DateRange{})
			require.ErrorIs(t, err, boom)

			after := c.State("sid")
			assert.False(t, after.Loading)
			assert.Equal(t, before.Summary, after.Summary)
			assert.Equal(t, before.OrdersByDate, after.OrdersByDate)
			assert.Equal(t, before.TopCustomers, after.TopCustomers)
			assert.Equal(t, before.LastFetched, after.LastFetched)
		})
	}
}

func TestRefresh_FirstFetchFails_EmptyButUsable(t *testing.T) {
	src := fullSource()
	src.ordersErr = errors.New("expired")
	c := newContainer(src)

	require.Error(t, c.Refresh(context.Background(), "sid", "tok", models.DateRange{}))

	st := c.State("sid")
	assert.False(t, st.HasData())
	assert.False(t, st.Loading)
	assert.Zero(t, st.Summary.TotalCustomers.Float())
}

func TestRefresh_ReadsRunConcurrently(t *testing.T) {
	src := fullSource()
	var wg sync.WaitGroup
	wg.Add(3)
	src.barrier = &wg
	c := newContainer(src)

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background(), "sid", "tok", models.DateRange{}) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("reads did not run concurrently; barrier never released")
	}
}

func TestBeginAuth(t *testing.T) {
	c := newContainer(fullSource())
	c.BeginAuth("sid")
	assert.Equal(t, models.PhaseAuthenticating, c.State("sid").Phase)
}

func TestClear_DropsEverything(t *testing.T) {
	c := newContainer(fullSource())
	require.NoError(t, c.Refresh(context.Background(), "sid", "tok", models.DateRange{}))

	c.Clear("sid")

	st := c.State("sid")
	assert.Equal(t, models.DashboardState{}, st)
	assert.Equal(t, 0, c.States.Len())
}

func TestExport(t *testing.T) {
	src := fullSource()
	src.csv = []byte("a,b\n")
	c := newContainer(src)

	b, err := c.Export(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(b))
}
