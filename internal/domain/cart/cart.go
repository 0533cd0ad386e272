// Package cart implements the session-scoped shopping cart.
//
// A cart maps catalog package ids to a line holding the requested quantity and a
// snapshot of the package's name and price range taken the first time the package
// was added. Later catalog price changes never reach a line that already exists.
package cart

import (
	"context"
	"iter"
	"slices"
	"sort"
	"strconv"

	"builder_estimates/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Line is one package in the cart, as stored in the session.
type Line struct {
	Quantity  int             `json:"quantity"`
	PriceLow  decimal.Decimal `json:"price_low"`
	PriceHigh decimal.Decimal `json:"price_high"`
	Name      string          `json:"name"`
}

// Lines is keyed by the decimal string form of the package id.
type Lines map[string]Line

// Store is the part of a session the cart reads and writes.
type Store interface {
	CartLines() (Lines, bool)
	SetCartLines(Lines)
	DeleteCartLines()
	MarkModified()
}

// Catalog resolves the packages referenced by the cart in one bulk lookup.
type Catalog interface {
	GetPackagesByIDs(ctx context.Context, ids []int64) ([]entities.PackageTemplate, error)
}

// Item is an enriched view of a line. Package is nil when the package no longer
// exists in the catalog; such items are orphaned and cannot be displayed or checked
// out, but they are not an error.
type Item struct {
	PackageID string
	Package   *entities.PackageTemplate
	Name      string
	Quantity  int
	PriceLow  decimal.Decimal
	PriceHigh decimal.Decimal
	TotalLow  decimal.Decimal
	TotalHigh decimal.Decimal
}

func (i Item) Orphaned() bool {
	return i.Package == nil
}

type Cart struct {
	store    Store
	lines    Lines
	attached bool
}

// New returns the cart held by store, initialising an empty one when the session has none.
func New(store Store) *Cart {
	lines, ok := store.CartLines()
	if !ok || lines == nil {
		lines = Lines{}
		store.SetCartLines(lines)
	}
	return &Cart{store: store, lines: lines, attached: true}
}

// Key is the session key for a package id.
func Key(packageID int64) string {
	return strconv.FormatInt(packageID, 10)
}

// Add inserts pkg with a snapshot of its current name and prices when it is not in the
// cart yet, then either overwrites the quantity or adds to it.
//
// Quantities are not bounded here; a negative accumulate can drive a line below
// zero. Callers validate input.
func (c *Cart) Add(pkg entities.PackageTemplate, quantity int, override bool) {
	c.attach()
	key := Key(pkg.ID)
	line, ok := c.lines[key]
	if !ok {
		line = Line{
			Quantity:  0,
			PriceLow:  pkg.PriceLow,
			PriceHigh: pkg.PriceHigh,
			Name:      pkg.Name,
		}
	}
	if override {
		line.Quantity = quantity
	} else {
		line.Quantity += quantity
	}
	c.lines[key] = line
	c.store.MarkModified()
}

// Update sets the quantity of pkg, removing it when quantity is zero or negative.
// It reports whether the package is still in the cart.
func (c *Cart) Update(pkg entities.PackageTemplate, quantity int) bool {
	if quantity > 0 {
		c.Add(pkg, quantity, true)
		return true
	}
	c.Remove(pkg.ID)
	return false
}

// Remove deletes the line for packageID. Removing an absent package is a no-op.
func (c *Cart) Remove(packageID int64) {
	key := Key(packageID)
	if _, ok := c.lines[key]; !ok {
		return
	}
	delete(c.lines, key)
	c.store.MarkModified()
}

// Line returns the stored line for packageID.
func (c *Cart) Line(packageID int64) (Line, bool) {
	line, ok := c.lines[Key(packageID)]
	return line, ok
}

// Len is the sum of quantities across all lines, not the number of lines.
func (c *Cart) Len() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Distinct is the number of lines.
func (c *Cart) Distinct() int {
	return len(c.lines)
}

func (c *Cart) TotalLow() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.PriceLow.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (c *Cart) TotalHigh() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.PriceHigh.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Clear removes the cart from the session altogether.
func (c *Cart) Clear() {
	c.store.DeleteCartLines()
	c.lines = Lines{}
	c.attached = false
	c.store.MarkModified()
}

// Iter resolves every package in the cart with a single catalog lookup and returns
// the enriched lines ordered by package id. Each call re-reads the current lines, so
// a fresh call reflects later mutations.
func (c *Cart) Iter(ctx context.Context, catalog Catalog) (iter.Seq[Item], error) {
	keys := c.keys()

	ids := make([]int64, 0, len(keys))
	for _, k := range keys {
		if id, err := strconv.ParseInt(k, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	resolved := make(map[string]*entities.PackageTemplate, len(ids))
	if len(ids) > 0 {
		pkgs, err := catalog.GetPackagesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range pkgs {
			pkg := pkgs[i]
			resolved[Key(pkg.ID)] = &pkg
		}
	}

	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		line := c.lines[k]
		qty := decimal.NewFromInt(int64(line.Quantity))
		items = append(items, Item{
			PackageID: k,
			Package:   resolved[k],
			Name:      line.Name,
			Quantity:  line.Quantity,
			PriceLow:  line.PriceLow,
			PriceHigh: line.PriceHigh,
			TotalLow:  line.PriceLow.Mul(qty),
			TotalHigh: line.PriceHigh.Mul(qty),
		})
	}

	return func(yield func(Item) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}, nil
}

// Items is Iter collected into a slice.
func (c *Cart) Items(ctx context.Context, catalog Catalog) ([]Item, error) {
	seq, err := c.Iter(ctx, catalog)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func (c *Cart) attach() {
	if c.attached {
		return
	}
	c.store.SetCartLines(c.lines)
	c.attached = true
}

// keys sorts numerically, falling back to string order for keys that are not ids.
func (c *Cart) keys() []string {
	keys := make([]string, 0, len(c.lines))
	for k := range c.lines {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseInt(keys[i], 10, 64)
		b, errB := strconv.ParseInt(keys[j], 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		if errA == nil || errB == nil {
			return errA == nil
		}
		return keys[i] < keys[j]
	})
	return keys
}
