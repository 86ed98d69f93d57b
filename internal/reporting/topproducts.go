package reporting

import (
	"sort"

	"admin-dashboard/internal/models"
)

// TopProducts ranks products by units sold across successful orders' line
// items. Revenue uses the unit price recorded on the line item, preserving
// historical pricing. The sort is stable, so ties keep input order and two
// runs over the same snapshot produce identical rankings.
func TopProducts(orders []models.Order, limit int) []models.ProductRank {
	type acc struct {
		name    string
		units   int
		revenue float64
	}

	totals := make(map[string]*acc)
	var seen []string

	for _, order := range orders {
		if order.PaymentStatus != models.PaymentStatusSuccess {
			continue
		}
		for _, item := range order.Items {
			a, ok := totals[item.ProductID]
			if !ok {
				a = &acc{name: item.Name}
				totals[item.ProductID] = a
				seen = append(seen, item.ProductID)
			}
			a.units += item.Quantity
			a.revenue += item.UnitPrice * float64(item.Quantity)
		}
	}

	ranks := make([]models.ProductRank, 0, len(seen))
	for _, id := range seen {
		a := totals[id]
		ranks = append(ranks, models.ProductRank{
			ProductID: id,
			Name:      a.name,
			UnitsSold: a.units,
			Revenue:   a.revenue,
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].UnitsSold > ranks[j].UnitsSold
	})

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
