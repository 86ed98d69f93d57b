package reporting

import (
	"math"
	"time"

	"admin-dashboard/internal/models"
)

// ComputeStats reduces a full order snapshot into the headline dashboard
// aggregate. Only orders with payment status "success" count toward revenue;
// month-over-month buckets are derived from calendar-month boundaries around
// now. Orders outside both windows still count toward the lifetime total.
func ComputeStats(orders []models.Order, productCount, userCount int, now time.Time) models.DashboardStats {
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousMonthStart := currentMonthStart.AddDate(0, -1, 0)

	var totalRevenue float64
	var curRevenue, prevRevenue float64
	var curOrders, prevOrders int

	for _, order := range orders {
		if order.PaymentStatus != models.PaymentStatusSuccess {
			continue
		}

		totalRevenue += order.TotalAmount

		created := order.CreatedAt
		switch {
		case !created.Before(currentMonthStart):
			curRevenue += order.TotalAmount
			curOrders++
		case !created.Before(previousMonthStart):
			prevRevenue += order.TotalAmount
			prevOrders++
		}
	}

	return models.DashboardStats{
		TotalRevenue:  totalRevenue,
		TotalOrders:   len(orders),
		TotalProducts: productCount,
		TotalUsers:    userCount,
		RevenueGrowth: growthPercent(curRevenue, prevRevenue),
		OrdersGrowth:  growthPercent(float64(curOrders), float64(prevOrders)),
	}
}

// growthPercent is the month-over-month relative change, rounded to one
// decimal place. A previous of zero means 100% growth when anything happened
// this month and 0% otherwise.
func growthPercent(current, previous float64) float64 {
	switch {
	case previous > 0:
		return math.Round((current-previous)/previous*1000) / 10
	case current > 0:
		return 100
	default:
		return 0
	}
}
