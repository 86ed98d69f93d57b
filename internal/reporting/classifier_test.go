package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Spalding Basketball", CategoryBasketball},
		{"Ultra Running Shoes", CategoryRunning}, // running wins over shoe: first rule match
		{"Cotton T-Shirt", CategoryClothing},
		{"Training Shorts", CategoryClothing},
		{"Nike Air Max", CategorySneakers},
		{"Adidas Samba", CategorySneakers},
		{"Leather Sneaker", CategorySneakers},
		{"Water Bottle", CategoryOther},
		{"", CategoryOther},
		{"BASKETBALL HOOP", CategoryBasketball},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.name))
		})
	}
}

func TestCategoryColorFallback(t *testing.T) {
	assert.Equal(t, "#6366f1", CategoryColor(CategorySneakers))
	assert.Equal(t, fallbackColor, CategoryColor("Gadgets"))
}
