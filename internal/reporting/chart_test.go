package reporting

import (
	"sort"
	"testing"
	"time"

	"admin-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	day, err := ParsePeriod("day")
	require.NoError(t, err)
	assert.Equal(t, PeriodDay, day)

	month, err := ParsePeriod("month")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, month)

	_, err = ParsePeriod("week")
	assert.Error(t, err)
}

func TestChartSeriesDayBuckets(t *testing.T) {
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	orders := []models.Order{
		order(models.PaymentStatusSuccess, 10.25, base),
		order(models.PaymentStatusSuccess, 20.50, base.Add(2*time.Hour)),
		order(models.PaymentStatusSuccess, 5, base.AddDate(0, 0, 1)),
		order(models.PaymentStatusFailed, 1000, base),
	}

	points := ChartSeries(orders, PeriodDay, 30)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-06-01", points[0].Period)
	assert.Equal(t, 30.75, points[0].Revenue)
	assert.Equal(t, 2, points[0].Orders)

	assert.Equal(t, "2024-06-02", points[1].Period)
	assert.Equal(t, 5.0, points[1].Revenue)
	assert.Equal(t, 1, points[1].Orders)
}

func TestChartSeriesMonthBuckets(t *testing.T) {
	orders := []models.Order{
		order(models.PaymentStatusSuccess, 100, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		order(models.PaymentStatusSuccess, 200, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
		order(models.PaymentStatusSuccess, 50, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}

	points := ChartSeries(orders, PeriodMonth, 12)
	require.Len(t, points, 2)
	assert.Equal(t, "2023-12", points[0].Period)
	assert.Equal(t, "2024-01", points[1].Period)
	assert.Equal(t, 300.0, points[1].Revenue)
}

func TestChartSeriesKeysStrictlyIncreasing(t *testing.T) {
	var orders []models.Order
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		orders = append(orders, order(models.PaymentStatusSuccess, float64(i), start.AddDate(0, 0, i)))
	}

	points := ChartSeries(orders, PeriodDay, 30)
	require.Len(t, points, 30)

	keys := make([]string, len(points))
	for i, p := range points {
		keys[i] = p.Period
	}
	assert.True(t, sort.StringsAreSorted(keys))

	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}

	// Truncation drops the oldest buckets.
	assert.Equal(t, "2024-01-31", keys[0])
}

func TestChartSeriesMonthTruncation(t *testing.T) {
	var orders []models.Order
	for year := 2022; year <= 2024; year++ {
		for month := time.January; month <= time.December; month++ {
			orders = append(orders, order(models.PaymentStatusSuccess, 1,
				time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)))
		}
	}

	points := ChartSeries(orders, PeriodMonth, 12)
	require.Len(t, points, 12)
	assert.Equal(t, "2024-01", points[0].Period)
	assert.Equal(t, "2024-12", points[11].Period)
}

func TestChartSeriesZeroPaddedKeys(t *testing.T) {
	// Zero padding is what makes lexicographic order chronological.
	orders := []models.Order{
		order(models.PaymentStatusSuccess, 1, time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC)),
		order(models.PaymentStatusSuccess, 1, time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC)),
	}

	points := ChartSeries(orders, PeriodDay, 30)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-09-09", points[0].Period)
	assert.Equal(t, "2024-10-10", points[1].Period)
}

func TestChartSeriesEmpty(t *testing.T) {
	points := ChartSeries(nil, PeriodDay, 30)
	assert.Empty(t, points)
}

func TestChartSeriesLargeInputStaysBounded(t *testing.T) {
	var orders []models.Order
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1500; i++ {
		orders = append(orders, order(models.PaymentStatusSuccess, 2, start.AddDate(0, 0, i)))
	}

	for _, tc := range []struct {
		period Period
		max    int
	}{
		{PeriodDay, 30},
		{PeriodMonth, 12},
	} {
		t.Run(string(tc.period), func(t *testing.T) {
			points := ChartSeries(orders, tc.period, tc.max)
			assert.LessOrEqual(t, len(points), tc.max)
		})
	}
}
