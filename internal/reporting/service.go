package reporting

import (
	"context"
	"errors"
	"time"

	"admin-dashboard/config"
	"admin-dashboard/internal/auth"
	"admin-dashboard/internal/models"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/util"

	"go.uber.org/zap"
)

// Snapshots is the store capability the reports reduce over: full-collection
// reads with at most a status filter, ordering, and a limit.
type Snapshots interface {
	GetOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetUsers(ctx context.Context) ([]models.UserProfile, error)
}

// Service builds dashboard reports. Every call waits for auth readiness,
// takes fresh snapshots, and reduces them in memory; nothing is cached and
// concurrent calls read independently.
type Service struct {
	snapshots Snapshots
	gate      auth.AuthGate
	cfg       config.ReportingConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a reporting service
func NewService(snapshots Snapshots, gate auth.AuthGate, cfg config.ReportingConfig) *Service {
	return &Service{
		snapshots: snapshots,
		gate:      gate,
		cfg:       cfg,
		logger:    util.NamedLogger("reporting"),
		now:       time.Now,
	}
}

// DashboardStats builds the headline aggregate from full orders, products,
// and users snapshots.
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	ctx, span := util.StartSpan(ctx, "reporting.DashboardStats")
	defer span.End()

	const report = "dashboard_stats"
	defer s.observe(report, time.Now())

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail(report, err)
	}

	orders, err := s.readOrders(ctx, store.OrderFilter{})
	if err != nil {
		return nil, s.fail(report, err)
	}
	products, err := s.readProducts(ctx)
	if err != nil {
		return nil, s.fail(report, err)
	}
	users, err := s.readUsers(ctx)
	if err != nil {
		return nil, s.fail(report, err)
	}

	stats := ComputeStats(orders, len(products), len(users), s.now())
	util.ReportBuildsTotal.WithLabelValues(report).Inc()
	return &stats, nil
}

// CategoryDistribution builds the category share breakdown
func (s *Service) CategoryDistribution(ctx context.Context) ([]models.CategoryShare, error) {
	ctx, span := util.StartSpan(ctx, "reporting.CategoryDistribution")
	defer span.End()

	const report = "category_distribution"
	defer s.observe(report, time.Now())

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail(report, err)
	}

	orders, err := s.readOrders(ctx, store.OrderFilter{PaymentStatus: models.PaymentStatusSuccess})
	if err != nil {
		return nil, s.fail(report, err)
	}
	products, err := s.readProducts(ctx)
	if err != nil {
		return nil, s.fail(report, err)
	}

	util.ReportBuildsTotal.WithLabelValues(report).Inc()
	return CategoryDistribution(orders, products), nil
}

// ChartSeries builds the time-bucketed sales series for a period granularity
func (s *Service) ChartSeries(ctx context.Context, period Period) ([]models.ChartPoint, error) {
	ctx, span := util.StartSpan(ctx, "reporting.ChartSeries")
	defer span.End()

	const report = "chart_series"
	defer s.observe(report, time.Now())

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail(report, err)
	}

	orders, err := s.readOrders(ctx, store.OrderFilter{PaymentStatus: models.PaymentStatusSuccess})
	if err != nil {
		return nil, s.fail(report, err)
	}

	maxBuckets := s.cfg.DayBuckets
	if period == PeriodMonth {
		maxBuckets = s.cfg.MonthBuckets
	}

	util.ReportBuildsTotal.WithLabelValues(report).Inc()
	return ChartSeries(orders, period, maxBuckets), nil
}

// TopProducts builds the units-sold product ranking, truncated to limit
func (s *Service) TopProducts(ctx context.Context, limit int) ([]models.ProductRank, error) {
	ctx, span := util.StartSpan(ctx, "reporting.TopProducts")
	defer span.End()

	const report = "top_products"
	defer s.observe(report, time.Now())

	if limit <= 0 || limit > s.cfg.TopProductsMax {
		limit = s.cfg.TopProductsMax
	}

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail(report, err)
	}

	orders, err := s.readOrders(ctx, store.OrderFilter{PaymentStatus: models.PaymentStatusSuccess})
	if err != nil {
		return nil, s.fail(report, err)
	}

	util.ReportBuildsTotal.WithLabelValues(report).Inc()
	return TopProducts(orders, limit), nil
}

// RecentOrders lists orders newest-first with an optional payment-status filter
func (s *Service) RecentOrders(ctx context.Context, status string, limit int) ([]models.Order, error) {
	ctx, span := util.StartSpan(ctx, "reporting.RecentOrders")
	defer span.End()

	const report = "recent_orders"

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail(report, err)
	}

	orders, err := s.readOrders(ctx, store.OrderFilter{
		PaymentStatus: status,
		Limit:         limit,
		Descending:    true,
	})
	if err != nil {
		return nil, s.fail(report, err)
	}
	return orders, nil
}

// Order retrieves a single order with line items
func (s *Service) Order(ctx context.Context, id string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "reporting.Order")
	defer span.End()

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail("order", err)
	}
	return s.snapshots.GetOrderByID(ctx, id)
}

// Products lists the full catalog snapshot
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "reporting.Products")
	defer span.End()

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail("products", err)
	}
	return s.readProducts(ctx)
}

// Users lists the full user snapshot
func (s *Service) Users(ctx context.Context) ([]models.UserProfile, error) {
	ctx, span := util.StartSpan(ctx, "reporting.Users")
	defer span.End()

	if _, err := s.gate.AwaitPrincipal(ctx); err != nil {
		return nil, s.fail("users", err)
	}
	return s.readUsers(ctx)
}

func (s *Service) readOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	start := time.Now()
	orders, err := s.snapshots.GetOrders(ctx, filter)
	util.SnapshotReadDuration.WithLabelValues("orders").Observe(time.Since(start).Seconds())
	return orders, err
}

func (s *Service) readProducts(ctx context.Context) ([]models.Product, error) {
	start := time.Now()
	products, err := s.snapshots.GetProducts(ctx)
	util.SnapshotReadDuration.WithLabelValues("products").Observe(time.Since(start).Seconds())
	return products, err
}

func (s *Service) readUsers(ctx context.Context) ([]models.UserProfile, error) {
	start := time.Now()
	users, err := s.snapshots.GetUsers(ctx)
	util.SnapshotReadDuration.WithLabelValues("users").Observe(time.Since(start).Seconds())
	return users, err
}

func (s *Service) observe(report string, start time.Time) {
	util.ReportBuildDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// fail logs and counts a report failure, then passes the error through
// unchanged for the handler to classify.
func (s *Service) fail(report string, err error) error {
	s.logger.Error("Report build failed",
		zap.String("report", report),
		zap.Error(err))
	util.ReportBuildFailuresTotal.WithLabelValues(report, failureReason(err)).Inc()
	return err
}

func failureReason(err error) string {
	var permErr *store.PermissionError
	switch {
	case errors.Is(err, auth.ErrAuthTimeout):
		return "auth_timeout"
	case errors.As(err, &permErr):
		return "permission_denied"
	default:
		return "fetch"
	}
}
