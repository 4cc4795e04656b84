package catalog

// Item represents a single product record used across the system.
// It is the canonical type for the store, the catalog API, and display.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"in_stock"`
}

// Demo returns the fixed demo catalog served by vitrined and used by the
// static fetcher. Eight items across four categories.
func Demo() []Item {
	return []Item{
		{ID: "iphone-15-pro", Name: "iPhone 15 Pro", Price: 999, Category: "Smartphones", InStock: true},
		{ID: "iphone-se", Name: "iPhone SE", Price: 429, Category: "Smartphones", InStock: true},
		{ID: "galaxy-s24", Name: "Galaxy S24", Price: 799, Category: "Smartphones", InStock: false},
		{ID: "macbook-pro-14", Name: "MacBook Pro 14", Price: 1999, Category: "Laptops", InStock: true},
		{ID: "thinkpad-x1", Name: "ThinkPad X1 Carbon", Price: 1649, Category: "Laptops", InStock: true},
		{ID: "airpods-pro", Name: "AirPods Pro", Price: 249, Category: "Audio", InStock: true},
		{ID: "sony-wh1000xm5", Name: "Sony WH-1000XM5", Price: 399, Category: "Audio", InStock: false},
		{ID: "ipad-air", Name: "iPad Air", Price: 599, Category: "Tablets", InStock: true},
	}
}
