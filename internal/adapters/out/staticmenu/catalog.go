// Package staticmenu provides an in-process MenuCatalog seeded with a fixed
// multi-vendor menu. The ordering engine treats the catalog as external
// read-only data; this adapter is the built-in source used when no external
// catalog service is configured.
package staticmenu

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
)

type catalogItem struct {
	name       string
	priceUnits int64
}

type catalogCategory struct {
	name  string
	items []catalogItem
}

type catalogVendor struct {
	name       string
	categories []catalogCategory
}

// Catalog is a read-only, in-memory menu. Slices rather than maps keep the
// display order deterministic.
type Catalog struct {
	vendors []catalogVendor
}

// NewCatalog creates the built-in three-vendor menu.
func NewCatalog() *Catalog {
	return &Catalog{
		vendors: []catalogVendor{
			{
				name: "Domino's",
				categories: []catalogCategory{
					{name: "Pizza", items: []catalogItem{
						{name: "Margherita", priceUnits: 250},
						{name: "Farmhouse", priceUnits: 350},
						{name: "Peppy Paneer", priceUnits: 300},
					}},
					{name: "Sides", items: []catalogItem{
						{name: "Garlic Bread", priceUnits: 120},
						{name: "Cheesy Dip", priceUnits: 60},
					}},
				},
			},
			{
				name: "Cafe Coffee Day",
				categories: []catalogCategory{
					{name: "Coffee", items: []catalogItem{
						{name: "Espresso", priceUnits: 80},
						{name: "Cappuccino", priceUnits: 120},
						{name: "Latte", priceUnits: 150},
					}},
					{name: "Snacks", items: []catalogItem{
						{name: "Sandwich", priceUnits: 100},
						{name: "Brownie", priceUnits: 90},
					}},
				},
			},
			{
				name: "Burger King",
				categories: []catalogCategory{
					{name: "Burgers", items: []catalogItem{
						{name: "Veg Whopper", priceUnits: 150},
						{name: "Paneer King", priceUnits: 180},
						{name: "Crispy Veg", priceUnits: 120},
					}},
					{name: "Fries", items: []catalogItem{
						{name: "Regular Fries", priceUnits: 70},
						{name: "Peri Peri Fries", priceUnits: 90},
					}},
				},
			},
		},
	}
}

// Vendors lists the known vendor names in display order.
func (c *Catalog) Vendors(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(c.vendors))
	for _, vendor := range c.vendors {
		names = append(names, vendor.name)
	}
	return names, nil
}

// Categories lists the category names of a vendor in display order.
func (c *Catalog) Categories(_ context.Context, vendor string) ([]string, error) {
	v, err := c.findVendor(vendor)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(v.categories))
	for _, category := range v.categories {
		names = append(names, category.name)
	}
	return names, nil
}

// Items returns the priced items of a vendor category in display order.
func (c *Catalog) Items(_ context.Context, vendor, category string) ([]menu.Item, error) {
	cat, err := c.findCategory(vendor, category)
	if err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(cat.items))
	for _, entry := range cat.items {
		item, itemErr := toMenuItem(entry)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}
	return items, nil
}

// Item resolves a single item by vendor, category, and name.
func (c *Catalog) Item(_ context.Context, vendor, category, name string) (menu.Item, error) {
	cat, err := c.findCategory(vendor, category)
	if err != nil {
		return menu.Item{}, err
	}

	for _, entry := range cat.items {
		if entry.name == name {
			return toMenuItem(entry)
		}
	}

	return menu.Item{}, errs.NewObjectNotFoundError("item", name)
}

func (c *Catalog) findVendor(vendor string) (catalogVendor, error) {
	for _, v := range c.vendors {
		if v.name == vendor {
			return v, nil
		}
	}
	return catalogVendor{}, errs.NewObjectNotFoundError("vendor", vendor)
}

func (c *Catalog) findCategory(vendor, category string) (catalogCategory, error) {
	v, err := c.findVendor(vendor)
	if err != nil {
		return catalogCategory{}, err
	}

	for _, cat := range v.categories {
		if cat.name == category {
			return cat, nil
		}
	}
	return catalogCategory{}, errs.NewObjectNotFoundError("category", category)
}

func toMenuItem(entry catalogItem) (menu.Item, error) {
	price, err := kernel.NewMoneyFromUnits(entry.priceUnits)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.NewItem(entry.name, price)
}
