package ports

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
)

// MenuCatalog is the read-only catalog consumed by the ordering engine:
// a two-level lookup of vendor -> category -> priced items. The engine never
// mutates the catalog and does not care how it is populated or displayed.
//
// Lookups for unknown vendors, categories, or items return an
// errs.ObjectNotFoundError rather than empty results, so callers can
// distinguish "not on the menu" from "empty category".
type MenuCatalog interface {
	// Vendors lists the known vendor names in display order.
	Vendors(ctx context.Context) ([]string, error)

	// Categories lists the category names of a vendor in display order.
	Categories(ctx context.Context, vendor string) ([]string, error)

	// Items returns the priced items of a vendor category in display order.
	Items(ctx context.Context, vendor, category string) ([]menu.Item, error)

	// Item resolves a single item by vendor, category, and name.
	// The returned item carries the current catalog price; cart lines capture
	// that price at add time.
	Item(ctx context.Context, vendor, category, name string) (menu.Item, error)
}
