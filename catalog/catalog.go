// Package catalog holds the fixed product list offered when adding bill items.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/satheeshds/billing/gst"
)

// Product is a catalog entry.
type Product struct {
	Name    string `json:"name"`
	HSNCode string `json:"hsn_code"`
}

// Category groups products under a tag.
type Category struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// Catalog is an ordered list of categories.
type Catalog []Category

// Categories lists the category tags in display order.
var Categories = []string{
	"Cement",
	"Steel",
	"Hardware",
	"Plywood",
	"Electrical Items",
	"Paint",
	"Rice / Food grains",
	gst.OthersCategory,
}

var products = map[string][]Product{
	"Cement": {
		{"PPC", "252329"},
		{"OPC", "252329"},
	},
	"Steel": {
		{"TMT Bars (Fe 500D)", "721420"},
		{"MS Rods", "721499"},
		{"Binding Wire", "721710"},
		{"Structural Steel", "721633"},
	},
	"Hardware": {
		{"Nails (per kg)", "731700"},
		{"Hinges (pair)", "830210"},
		{"Screws (box)", "731815"},
		{"Locks", "830140"},
		{"Door Handles", "830241"},
	},
	"Plywood": {
		{"GreenPly", "441239"},
		{"CenturyPly", "441239"},
		{"Marine Plywood (8x4)", "441231"},
		{"Commercial Plywood (8x4)", "441234"},
		{"Laminates (sheet)", "441299"},
	},
	"Electrical Items": {
		{"Switches", "853650"},
		{"Wires (per meter)", "854411"},
		{"LED Bulbs", "853950"},
		{"Ceiling Fans", "841451"},
		{"MCB", "853620"},
	},
	"Paint": {
		{"Asian Paints Royale (1L)", "320810"},
		{"Nerolac Impressions (1L)", "320810"},
		{"Primer (1L)", "320910"},
		{"Putty (1kg)", "321410"},
		{"Berger WeatherCoat (1L)", "320810"},
	},
	"Rice / Food grains": {
		{"Sona Masoori (25kg)", "100630"},
		{"Basmati Rice (1kg)", "100630"},
		{"Kolam Rice (10kg)", "100630"},
		{"Toor Dal (1kg)", "071360"},
	},
	gst.OthersCategory: {},
}

var defaultCatalog = mustBuild(Categories, products)

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultCatalog
}

func mustBuild(order []string, m map[string][]Product) Catalog {
	c, err := Build(order, m)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Build assembles a catalog from a category order and a product mapping and
// validates it.
func Build(order []string, m map[string][]Product) (Catalog, error) {
	c := make(Catalog, 0, len(order))
	for _, name := range order {
		ps, ok := m[name]
		if !ok {
			return nil, fmt.Errorf("category %q has no product mapping", name)
		}
		c = append(c, Category{Name: name, Products: ps})
	}
	if len(m) != len(order) {
		return nil, fmt.Errorf("product mapping has %d categories, %d declared", len(m), len(order))
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

var hsnPattern = regexp.MustCompile(`^[0-9]{4,8}$`)

// Validate checks that the catalog is complete: "Others" is present and
// empty, every other category has products with non-blank unique names and
// well-formed HSN codes.
func Validate(c Catalog) error {
	seenCat := map[string]bool{}
	hasOthers := false
	for _, cat := range c {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("blank category name")
		}
		if seenCat[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seenCat[cat.Name] = true

		if cat.Name == gst.OthersCategory {
			hasOthers = true
			if len(cat.Products) != 0 {
				return fmt.Errorf("category %q must not list products", cat.Name)
			}
			continue
		}
		if len(cat.Products) == 0 {
			return fmt.Errorf("category %q has no products", cat.Name)
		}
		seen := map[string]bool{}
		for _, p := range cat.Products {
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("category %q: blank product name", cat.Name)
			}
			if seen[p.Name] {
				return fmt.Errorf("category %q: duplicate product %q", cat.Name, p.Name)
			}
			seen[p.Name] = true
			if !hsnPattern.MatchString(p.HSNCode) {
				return fmt.Errorf("category %q: product %q has invalid HSN code %q", cat.Name, p.Name, p.HSNCode)
			}
		}
	}
	if !hasOthers {
		return fmt.Errorf("category %q is missing", gst.OthersCategory)
	}
	return nil
}

// Products returns the products of a category, or nil when the category is
// unknown or empty.
func (c Catalog) Products(category string) []Product {
	for _, cat := range c {
		if cat.Name == category {
			return cat.Products
		}
	}
	return nil
}

// Lookup finds a product by category and name.
func (c Catalog) Lookup(category, name string) (Product, bool) {
	for _, p := range c.Products(category) {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// HasCategory reports whether category is declared. The empty category is
// accepted for uncategorised items.
func (c Catalog) HasCategory(category string) bool {
	if category == "" {
		return true
	}
	for _, cat := range c {
		if cat.Name == category {
			return true
		}
	}
	return false
}
