package reporting

import (
	"math"
	"sort"
	"strings"

	"admin-dashboard/internal/models"
)

// CategoryDistribution reduces successful orders into per-category unit
// shares. Item names resolve to categories through the catalog (lower-cased
// name lookup), falling back to the keyword classifier for items whose
// product is gone or uncategorized. Shares are independently rounded, so
// they may sum to 100 plus or minus a point per category.
func CategoryDistribution(orders []models.Order, products []models.Product) []models.CategoryShare {
	lookup := make(map[string]string, len(products))
	for _, product := range products {
		category := product.Category
		if category == "" {
			category = ClassifyCategory(product.Name)
		}
		lookup[strings.ToLower(product.Name)] = category
	}

	counts := make(map[string]int)
	total := 0

	for _, order := range orders {
		if order.PaymentStatus != models.PaymentStatusSuccess {
			continue
		}
		for _, item := range order.Items {
			category, ok := lookup[strings.ToLower(item.Name)]
			if !ok {
				category = ClassifyCategory(item.Name)
			}
			counts[category] += item.Quantity
			total += item.Quantity
		}
	}

	if total == 0 {
		return []models.CategoryShare{}
	}

	shares := make([]models.CategoryShare, 0, len(counts))
	for category, count := range counts {
		shares = append(shares, models.CategoryShare{
			Category:   category,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
			Color:      CategoryColor(category),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percentage != shares[j].Percentage {
			return shares[i].Percentage > shares[j].Percentage
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}
