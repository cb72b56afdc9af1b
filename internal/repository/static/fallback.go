// Package static holds the compiled-in fallback catalog. It is served whenever
// the upstream catalog API is unreachable or returns nothing; a successful
// refresh replaces it wholesale.
package static

import "voltbay-storefront/internal/domain"

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

// Categories returns a fresh copy of the fallback category list.
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

// Products returns a fresh copy of the fallback product list.
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

var categories = []domain.Category{
	{ID: "cat-smartphones", Name: "Smartphones", Slug: "smartphones", Image: "/images/categories/smartphones.jpg"},
	{ID: "cat-accessories", Name: "Mobile Accessories", Slug: "mobile-accessories", Image: "/images/categories/accessories.jpg"},
	{ID: "cat-audio", Name: "Audio", Slug: "audio", Image: "/images/categories/audio.jpg"},
	{ID: "cat-laptops", Name: "Laptops", Slug: "laptops", Image: "/images/categories/laptops.jpg"},
	{ID: "cat-wearables", Name: "Wearables", Slug: "wearables", Image: "/images/categories/wearables.jpg"},
}

var products = []domain.Product{
	{
		ID: "p-galaxy-s25", Title: "Samsung Galaxy S25 128GB", Slug: "samsung-galaxy-s25-128gb",
		Image: "/images/products/galaxy-s25.jpg", HoverImage: "/images/products/galaxy-s25-back.jpg",
		Price: 74999, MRP: 82999, Discount: 10, Rating: 4.7, ReviewCount: 2314,
		Badge: domain.BadgeBestseller, CategoryID: "cat-smartphones", Brand: "Samsung",
		Type: "smartphone", FiveG: true, InStock: true,
		Variants: []domain.Variant{
			{SKU: "S25-BLK-128", Name: "Black / 128GB", Attributes: map[string]string{"color": "black", "storage": "128GB"}, Status: domain.VariantStatusActive},
			{SKU: "S25-BLK-256", Name: "Black / 256GB", Price: f64(82999), MRP: f64(89999), Attributes: map[string]string{"color": "black", "storage": "256GB"}, Status: domain.VariantStatusActive},
			{SKU: "S25-GRN-128", Name: "Green / 128GB", Attributes: map[string]string{"color": "green", "storage": "128GB"}, Status: domain.VariantStatusActive},
		},
	},
	{
		ID: "p-iphone-16", Title: "Apple iPhone 16", Slug: "apple-iphone-16",
		Image: "/images/products/iphone-16.jpg", HoverImage: "/images/products/iphone-16-back.jpg",
		Price: 79900, MRP: 79900, Rating: 4.8, ReviewCount: 5120,
		Badge: domain.BadgeNew, CategoryID: "cat-smartphones", Brand: "Apple",
		Type: "smartphone", FiveG: true, InStock: true,
		Variants: []domain.Variant{
			{SKU: "IP16-BLU-128", Name: "Ultramarine / 128GB", Attributes: map[string]string{"color": "ultramarine", "storage": "128GB"}, Status: domain.VariantStatusActive},
			{SKU: "IP16-BLU-256", Name: "Ultramarine / 256GB", Price: f64(89900), Attributes: map[string]string{"color": "ultramarine", "storage": "256GB"}, Status: domain.VariantStatusActive},
		},
	},
	{
		ID: "p-pixel-9a", Title: "Google Pixel 9a", Slug: "google-pixel-9a",
		Image: "/images/products/pixel-9a.jpg", HoverImage: "/images/products/pixel-9a-back.jpg",
		Price: 49900, MRP: 52900, Discount: 6, Rating: 4.5, ReviewCount: 980,
		CategoryID: "cat-smartphones", Brand: "Google",
		Type: "smartphone", FiveG: true, InStock: true,
	},
	{
		ID: "p-anker-737", Title: "Anker 737 Power Bank 24000mAh", Slug: "anker-737-power-bank",
		Image: "/images/products/anker-737.jpg", HoverImage: "/images/products/anker-737-ports.jpg",
		Price: 1099, MRP: 1499, Discount: 27, Rating: 4.8, ReviewCount: 3410,
		Badge: domain.BadgeBestseller, CategoryID: "cat-accessories", Brand: "Anker",
		Type: "power-bank", Compatible: []string{"usb-c", "usb-a"}, InStock: true,
	},
	{
		ID: "p-anker-nano", Title: "Anker Nano 30W USB-C Charger", Slug: "anker-nano-30w-charger",
		Image: "/images/products/anker-nano.jpg", HoverImage: "/images/products/anker-nano-side.jpg",
		Price: 249, MRP: 329, Discount: 24, Rating: 4.6, ReviewCount: 1875,
		Badge: domain.BadgeSale, CategoryID: "cat-accessories", Brand: "Anker",
		Type: "charger", Compatible: []string{"usb-c"}, InStock: true,
		Variants: []domain.Variant{
			{SKU: "NANO30-WHT", Name: "White", Attributes: map[string]string{"color": "white"}, Status: domain.VariantStatusActive},
			{SKU: "NANO30-BLK", Name: "Black", Attributes: map[string]string{"color": "black"}, Status: domain.VariantStatusActive},
		},
	},
	{
		ID: "p-anker-cable", Title: "Anker PowerLine III USB-C Cable 1.8m", Slug: "anker-powerline-iii-cable",
		Image: "/images/products/anker-cable.jpg", HoverImage: "/images/products/anker-cable-coil.jpg",
		Price: 159, MRP: 199, Discount: 20, Rating: 4.7, ReviewCount: 5230,
		CategoryID: "cat-accessories", Brand: "Anker",
		Type: "cable", Compatible: []string{"usb-c"}, InStock: true,
	},
	{
		ID: "p-belkin-pad", Title: "Belkin BoostCharge Wireless Charging Pad 15W", Slug: "belkin-boostcharge-pad",
		Image: "/images/products/belkin-pad.jpg", HoverImage: "/images/products/belkin-pad-top.jpg",
		Price: 499, MRP: 599, Discount: 17, Rating: 4.3, ReviewCount: 640,
		CategoryID: "cat-accessories", Brand: "Belkin",
		Type: "wireless-charger", Compatible: []string{"qi"}, InStock: true,
	},
	{
		ID: "p-ugreen-hub", Title: "UGREEN 6-in-1 USB-C Hub", Slug: "ugreen-6-in-1-hub",
		Image: "/images/products/ugreen-hub.jpg", HoverImage: "/images/products/ugreen-hub-ports.jpg",
		Price: 699, MRP: 899, Discount: 22, Rating: 4.4, ReviewCount: 1120,
		Badge: domain.BadgeNew, CategoryID: "cat-accessories", Brand: "UGREEN",
		Type: "hub", Compatible: []string{"usb-c", "hdmi"}, InStock: true,
	},
	{
		ID: "p-baseus-mount", Title: "Baseus Magnetic Car Mount", Slug: "baseus-magnetic-car-mount",
		Image: "/images/products/baseus-mount.jpg", HoverImage: "/images/products/baseus-mount-side.jpg",
		Price: 299, MRP: 399, Discount: 25, Rating: 3.9, ReviewCount: 310,
		CategoryID: "cat-accessories", Brand: "Baseus",
		Type: "mount", Compatible: []string{"magsafe"}, InStock: false,
	},
	{
		ID: "p-sony-wh1000", Title: "Sony WH-1000XM5 Wireless Headphones", Slug: "sony-wh-1000xm5",
		Image: "/images/products/sony-wh1000.jpg", HoverImage: "/images/products/sony-wh1000-fold.jpg",
		Price: 26990, MRP: 29990, Discount: 10, Rating: 4.9, ReviewCount: 8450,
		Badge: domain.BadgeBestseller, CategoryID: "cat-audio", Brand: "Sony",
		Type: "headphones", InStock: true,
		Variants: []domain.Variant{
			{SKU: "XM5-BLK", Name: "Black", Attributes: map[string]string{"color": "black"}, Status: domain.VariantStatusActive},
			{SKU: "XM5-SLV", Name: "Silver", Attributes: map[string]string{"color": "silver"}, Status: domain.VariantStatusOutOfStock, Stock: i(0)},
		},
	},
	{
		ID: "p-airpods-4", Title: "Apple AirPods 4", Slug: "apple-airpods-4",
		Image: "/images/products/airpods-4.jpg", HoverImage: "/images/products/airpods-4-case.jpg",
		Price: 12900, MRP: 12900, Rating: 4.6, ReviewCount: 2980,
		Badge: domain.BadgeNew, CategoryID: "cat-audio", Brand: "Apple",
		Type: "earbuds", InStock: true,
	},
	{
		ID: "p-macbook-air", Title: "Apple MacBook Air 13 M4", Slug: "apple-macbook-air-13-m4",
		Image: "/images/products/macbook-air.jpg", HoverImage: "/images/products/macbook-air-open.jpg",
		Price: 109900, MRP: 114900, Discount: 4, Rating: 4.8, ReviewCount: 1530,
		CategoryID: "cat-laptops", Brand: "Apple",
		Type: "laptop", InStock: true,
		Variants: []domain.Variant{
			{SKU: "MBA13-M4-16-256", Name: "16GB / 256GB", Attributes: map[string]string{"ram": "16GB", "storage": "256GB"}, Status: domain.VariantStatusActive},
			{SKU: "MBA13-M4-16-512", Name: "16GB / 512GB", Price: f64(129900), Attributes: map[string]string{"ram": "16GB", "storage": "512GB"}, Status: domain.VariantStatusActive},
		},
	},
	{
		ID: "p-galaxy-watch", Title: "Samsung Galaxy Watch 7", Slug: "samsung-galaxy-watch-7",
		Image: "/images/products/galaxy-watch.jpg", HoverImage: "/images/products/galaxy-watch-band.jpg",
		Price: 29999, MRP: 32999, Discount: 9, Rating: 4.2, ReviewCount: 760,
		CategoryID: "cat-wearables", Brand: "Samsung",
		Type: "smartwatch", InStock: true,
		Variants: []domain.Variant{
			{SKU: "GW7-40-GRN", Name: "40mm / Green", Attributes: map[string]string{"size": "40mm", "color": "green"}, Status: domain.VariantStatusActive},
			{SKU: "GW7-44-SLV", Name: "44mm / Silver", Price: f64(33999), Attributes: map[string]string{"size": "44mm", "color": "silver"}, Status: domain.VariantStatusActive},
		},
	},
}
