package reporting

import (
	"fmt"
	"math"
	"sort"

	"admin-dashboard/internal/models"
)

// Period is the chart bucket granularity
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a period string
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodMonth:
		return Period(s), nil
	default:
		return "", fmt.Errorf("invalid period %q: must be %q or %q", s, PeriodDay, PeriodMonth)
	}
}

func (p Period) layout() string {
	if p == PeriodMonth {
		return "2006-01"
	}
	return "2006-01-02"
}

type bucket struct {
	revenue float64
	orders  int
}

// ChartSeries buckets successful orders by creation date into fixed-width
// period keys, keeping the most recent maxBuckets buckets. Both key formats
// are zero-padded, so lexicographic order is chronological order.
func ChartSeries(orders []models.Order, period Period, maxBuckets int) []models.ChartPoint {
	layout := period.layout()
	buckets := make(map[string]*bucket)

	for _, order := range orders {
		if order.PaymentStatus != models.PaymentStatusSuccess {
			continue
		}
		key := order.CreatedAt.Format(layout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.revenue += order.TotalAmount
		b.orders++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if maxBuckets > 0 && len(keys) > maxBuckets {
		keys = keys[len(keys)-maxBuckets:]
	}

	points := make([]models.ChartPoint, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		points = append(points, models.ChartPoint{
			Period:  key,
			Revenue: math.Round(b.revenue*100) / 100,
			Orders:  b.orders,
		})
	}
	return points
}
