package reporting

import (
	"testing"
	"time"

	"admin-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func order(status string, amount float64, created time.Time) models.Order {
	return models.Order{
		PaymentStatus: status,
		TotalAmount:   amount,
		CreatedAt:     created,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		order(models.PaymentStatusSuccess, 100, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)),
		order(models.PaymentStatusSuccess, 50, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)),
		order(models.PaymentStatusPending, 999, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
	}

	stats := ComputeStats(orders, 7, 12, now)

	assert.Equal(t, 150.0, stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 100.0, stats.RevenueGrowth)
	assert.Equal(t, 0.0, stats.OrdersGrowth)
}

func TestComputeStatsRevenueIndependentOfOrderOrder(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	a := order(models.PaymentStatusSuccess, 10, now.AddDate(0, -3, 0))
	b := order(models.PaymentStatusSuccess, 20, now.AddDate(0, -1, 0))
	c := order(models.PaymentStatusFailed, 40, now)

	forward := ComputeStats([]models.Order{a, b, c}, 0, 0, now)
	backward := ComputeStats([]models.Order{c, b, a}, 0, 0, now)

	assert.Equal(t, 30.0, forward.TotalRevenue)
	assert.Equal(t, forward, backward)
}

func TestComputeStatsLifetimeIncludesOldOrders(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Outside both growth windows but still part of the lifetime total.
	old := order(models.PaymentStatusSuccess, 500, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC))

	stats := ComputeStats([]models.Order{old}, 0, 0, now)

	assert.Equal(t, 500.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.RevenueGrowth)
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"previous zero current positive", 100, 0, 100},
		{"doubled", 200, 100, 100},
		{"halved", 50, 100, -50},
		{"rounded to one decimal", 100, 300, -66.7},
		{"flat", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, growthPercent(tt.current, tt.previous))
		})
	}
}

func TestComputeStatsMonthBoundaries(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	// First instant of the current month counts as current; last instant of
	// the previous month counts as previous.
	cur := order(models.PaymentStatusSuccess, 10, now)
	prev := order(models.PaymentStatusSuccess, 10, now.Add(-time.Nanosecond))

	stats := ComputeStats([]models.Order{cur, prev}, 0, 0, now)

	assert.Equal(t, 0.0, stats.RevenueGrowth)
	assert.Equal(t, 0.0, stats.OrdersGrowth)
}
