package data

import "github.com/hikegear/storefront/models"

// Categories available in the storefront filter, "All" first.
func Categories() []string {
	return []string{models.CategoryAll, "Backpacks", "Footwear", "Clothing", "Camping", "Accessories"}
}

// SeedProducts returns the initial HikeGear catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Mountain Explorer Backpack",
			Price:       149.99,
			Image:       "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=2000&q=80",
			Category:    "Backpacks",
			Description: "Durable 50L backpack perfect for multi-day hiking adventures.",
			Stock:       12,
			InStock:     true,
			Rating:      4.8,
		},
		{
			ID:          "2",
			Name:        "Trail Runner Hiking Boots",
			Price:       189.99,
			Image:       "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9?auto=format&fit=crop&w=2000&q=80",
			Category:    "Footwear",
			Description: "Waterproof hiking boots with superior grip and comfort.",
			Stock:       8,
			InStock:     true,
			Rating:      4.6,
		},
		{
			ID:          "3",
			Name:        "Alpine Trekking Poles",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1482938289607-e9573fc25ebb?auto=format&fit=crop&w=2000&q=80",
			Category:    "Accessories",
			Description: "Lightweight carbon fiber trekking poles for stability and support.",
			Stock:       25,
			InStock:     true,
			Rating:      4.7,
		},
		{
			ID:          "4",
			Name:        "Summit Sleeping Bag",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=2000&q=80",
			Category:    "Camping",
			Description: "Ultra-warm sleeping bag rated for temperatures down to -10°C.",
			Stock:       0,
			InStock:     false,
			Rating:      4.9,
		},
		{
			ID:          "5",
			Name:        "Weather Shield Jacket",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86?auto=format&fit=crop&w=2000&q=80",
			Category:    "Clothing",
			Description: "Breathable waterproof jacket for all-weather protection.",
			Stock:       15,
			InStock:     true,
			Rating:      4.5,
		},
		{
			ID:          "6",
			Name:        "Peak Performance Tent",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1472396961693-142e6e269027?auto=format&fit=crop&w=2000&q=80",
			Category:    "Camping",
			Description: "4-season expedition tent for extreme weather conditions.",
			Stock:       5,
			InStock:     true,
			Rating:      4.8,
		},
	}
}
