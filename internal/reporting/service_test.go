package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"admin-dashboard/config"
	"admin-dashboard/internal/auth"
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGate struct {
	principal *auth.Principal
	err       error
}

func (g *stubGate) CurrentPrincipal() (*auth.Principal, bool) {
	return g.principal, g.principal != nil
}

func (g *stubGate) AwaitPrincipal(ctx context.Context) (*auth.Principal, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.principal, nil
}

type stubSnapshots struct {
	orders   []models.Order
	products []models.Product
	users    []models.UserProfile

	orderReads   int
	productReads int
	userReads    int
	lastFilter   store.OrderFilter
	err          error
}

func (s *stubSnapshots) GetOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	s.orderReads++
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

func (s *stubSnapshots) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, errors.New("order not found")
}

func (s *stubSnapshots) GetProducts(ctx context.Context) ([]models.Product, error) {
	s.productReads++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubSnapshots) GetUsers(ctx context.Context) ([]models.UserProfile, error) {
	s.userReads++
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

func testConfig() config.ReportingConfig {
	return config.ReportingConfig{
		AuthWaitTimeout: 4 * time.Second,
		DayBuckets:      30,
		MonthBuckets:    12,
		TopProductsMax:  20,
	}
}

func adminGate() *stubGate {
	return &stubGate{principal: &auth.Principal{ID: "staff-1", Role: "admin"}}
}

func TestDashboardStatsAuthTimeoutSkipsReads(t *testing.T) {
	snaps := &stubSnapshots{}
	svc := NewService(snaps, &stubGate{err: auth.ErrAuthTimeout}, testConfig())

	_, err := svc.DashboardStats(context.Background())

	assert.ErrorIs(t, err, auth.ErrAuthTimeout)
	assert.Zero(t, snaps.orderReads)
	assert.Zero(t, snaps.productReads)
	assert.Zero(t, snaps.userReads)
}

func TestDashboardStats(t *testing.T) {
	now := time.Now()
	snaps := &stubSnapshots{
		orders: []models.Order{
			order(models.PaymentStatusSuccess, 120, now),
			order(models.PaymentStatusPending, 80, now),
		},
		products: make([]models.Product, 4),
		users:    make([]models.UserProfile, 9),
	}
	svc := NewService(snaps, adminGate(), testConfig())

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 9, stats.TotalUsers)
}

func TestDashboardStatsPropagatesReadFailure(t *testing.T) {
	readErr := errors.New("connection reset")
	snaps := &stubSnapshots{err: readErr}
	svc := NewService(snaps, adminGate(), testConfig())

	_, err := svc.DashboardStats(context.Background())
	assert.ErrorIs(t, err, readErr)
}

func TestCategoryDistributionFiltersOnSuccess(t *testing.T) {
	snaps := &stubSnapshots{}
	svc := NewService(snaps, adminGate(), testConfig())

	_, err := svc.CategoryDistribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusSuccess, snaps.lastFilter.PaymentStatus)
}

func TestChartSeriesUsesConfiguredWindow(t *testing.T) {
	var orders []models.Order
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		orders = append(orders, order(models.PaymentStatusSuccess, 10, start.AddDate(0, i, 0)))
	}

	cfg := testConfig()
	cfg.MonthBuckets = 6
	svc := NewService(&stubSnapshots{orders: orders}, adminGate(), cfg)

	points, err := svc.ChartSeries(context.Background(), PeriodMonth)
	require.NoError(t, err)
	assert.Len(t, points, 6)
}

func TestTopProductsClampsLimit(t *testing.T) {
	orders := []models.Order{
		successOrderWithItems(
			models.OrderItem{ProductID: "p1", Quantity: 1},
			models.OrderItem{ProductID: "p2", Quantity: 2},
		),
	}

	cfg := testConfig()
	cfg.TopProductsMax = 1
	svc := NewService(&stubSnapshots{orders: orders}, adminGate(), cfg)

	ranks, err := svc.TopProducts(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, ranks, 1)
}

func TestRecentOrdersFilter(t *testing.T) {
	snaps := &stubSnapshots{}
	svc := NewService(snaps, adminGate(), testConfig())

	_, err := svc.RecentOrders(context.Background(), models.PaymentStatusPending, 25)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, snaps.lastFilter.PaymentStatus)
	assert.Equal(t, 25, snaps.lastFilter.Limit)
	assert.True(t, snaps.lastFilter.Descending)
}

func TestFailureReason(t *testing.T) {
	permErr := &store.PermissionError{Table: "orders"}

	assert.Equal(t, "auth_timeout", failureReason(auth.ErrAuthTimeout))
	assert.Equal(t, "permission_denied", failureReason(permErr))
	assert.Equal(t, "permission_denied", failureReason(errors.Join(errors.New("wrapped"), permErr)))
	assert.Equal(t, "fetch", failureReason(errors.New("connection reset")))
}
