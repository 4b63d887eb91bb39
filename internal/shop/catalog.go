package shop

import "strings"

// Banner is one slide of the promotional carousel.
type Banner struct {
	Title    string
	Subtitle string
}

// Category is a featured product category.
type Category struct {
	Name string
	Icon string
}

// Brand is a featured brand.
type Brand struct {
	Name string
}

// Catalog is the static content of the home screen.
type Catalog struct {
	Banners    []Banner
	Categories []Category
	Brands     []Brand
}

// DefaultCatalog returns the built-in storefront content.
func DefaultCatalog() Catalog {
	return Catalog{
		Banners: []Banner{
			{Title: "Clearance Sale", Subtitle: "Up to 50% off electronics"},
			{Title: "New Arrivals", Subtitle: "Fresh picks for the season"},
			{Title: "Free Shipping", Subtitle: "On all orders over $50"},
		},
		Categories: []Category{
			{Name: "Electronics", Icon: "⚡"},
			{Name: "Clothing", Icon: "👕"},
			{Name: "Computers", Icon: "💻"},
			{Name: "Home & Kitchen", Icon: "🏠"},
			{Name: "Health & Beauty", Icon: "💄"},
			{Name: "Jewelry", Icon: "💍"},
			{Name: "Toys", Icon: "🧸"},
			{Name: "Sports", Icon: "⚽"},
		},
		Brands: []Brand{
			{Name: "Apple"},
			{Name: "Samsung"},
			{Name: "Sony"},
			{Name: "Nike"},
			{Name: "Adidas"},
			{Name: "Philips"},
		},
	}
}

// Filter returns the categories and brands whose names contain query,
// ignoring case. A blank query matches everything.
func (c Catalog) Filter(query string) ([]Category, []Brand) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Categories, c.Brands
	}

	var cats []Category
	for _, cat := range c.Categories {
		if strings.Contains(strings.ToLower(cat.Name), q) {
			cats = append(cats, cat)
		}
	}
	var brands []Brand
	for _, b := range c.Brands {
		if strings.Contains(strings.ToLower(b.Name), q) {
			brands = append(brands, b)
		}
	}
	return cats, brands
}
