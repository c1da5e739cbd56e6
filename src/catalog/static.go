package catalog

import (
	"context"
	"sort"
	"strings"
)

type staticItem struct {
	keyword     string
	name        string
	brand       string
	price       float64
	description string
}

// Static is a deterministic in-memory catalog. It backs the CLI simulation
// and the tests when no model API key is configured.
type Static struct {
	merchant string
	items    []staticItem
}

func NewStatic(merchant string) *Static {
	return &Static{
		merchant: merchant,
		items: []staticItem{
			{"redmi note 13", "Redmi Note 13 5G 6GB/128GB", "Xiaomi", 16999, "6.67\" AMOLED, Dimensity 6080"},
			{"redmi note 13", "Redmi Note 13 5G 8GB/256GB", "Xiaomi", 18999, "6.67\" AMOLED, Dimensity 6080"},
			{"redmi note 13", "Redmi Note 13 Pro 8GB/256GB", "Xiaomi", 21999, "200MP camera, Snapdragon 7s Gen 2"},
			{"coffee", "Philips HD7431/20 Coffee Maker", "Philips", 3499, "Drip coffee maker, 0.6L"},
			{"coffee", "Morphy Richards Europa Espresso Machine", "Morphy Richards", 5499, "4-cup espresso and cappuccino"},
			{"coffee", "De'Longhi Dedica EC685 Espresso Machine", "De'Longhi", 24999, "15-bar pump espresso"},
			{"gaming laptop", "HP Victus 15 Ryzen 5 RTX 3050", "HP", 62999, "15.6\" FHD 144Hz, 16GB RAM"},
			{"gaming laptop", "Lenovo LOQ 15 i5 RTX 4050", "Lenovo", 71999, "15.6\" FHD 144Hz, 16GB RAM"},
			{"gaming laptop", "ASUS TUF Gaming A15 Ryzen 7 RTX 4060", "ASUS", 79999, "15.6\" FHD 144Hz, 16GB RAM"},
		},
	}
}

func (s *Static) Search(ctx context.Context, query string) ([]Product, error) {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return []Product{}, nil
	}

	results := make([]Product, 0, MaxResults)
	for _, item := range s.items {
		if !strings.Contains(q, item.keyword) {
			continue
		}
		results = append(results, Product{
			ID:          newProductID(),
			Name:        item.name,
			Price:       item.price,
			Currency:    "INR",
			Description: item.description,
			Brand:       item.brand,
			Merchant:    s.merchant,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results, nil
}
