// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/basketry/models"
)

// Store is the part of the list store the Assembler depends on. The
// Ensure methods find an entity by name or create it.
type Store interface {
	GetList(ctx context.Context, id string) (*models.ShoppingList, error)
	GetItemsByList(ctx context.Context, listID string) ([]models.Item, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetUnits(ctx context.Context) ([]models.Unit, error)
	GetProducts(ctx context.Context) ([]models.Product, error)

	CreateList(ctx context.Context, name string) (*models.ShoppingList, error)
	EnsureCategory(ctx context.Context, name string) (*models.Category, error)
	EnsureUnit(ctx context.Context, name string) (*models.Unit, error)
	EnsureProduct(ctx context.Context, name, categoryID, unitID string) (*models.Product, error)
	CreateItem(ctx context.Context, listID string, fields models.ItemFields) (*models.Item, error)
}

// Mode selects where Apply puts imported items.
type Mode string

const (
	ModeNew   Mode = "new"
	ModeMerge Mode = "merge"
)

// ParseMode accepts "new", "merge", or "" (treated as new).
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeNew:
		return ModeNew, nil
	case ModeMerge:
		return ModeMerge, nil
	default:
		return "", fmt.Errorf("unknown import mode %q", s)
	}
}

// ImportResult describes a finished import.
type ImportResult struct {
	ListID   string
	Imported int
}

// Assembler moves lists between the store and SharePayload values.
type Assembler struct {
	store Store
}

func NewAssembler(store Store) *Assembler {
	return &Assembler{store: store}
}

// Build reads the current state of a list into a SharePayload. Item names
// fall back to the linked product's name, then DefaultItemName; units use
// the short name, then the full name, then DefaultUnit.
func (a *Assembler) Build(ctx context.Context, listID string) (*SharePayload, error) {
	list, err := a.store.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	items, err := a.store.GetItemsByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	categories, err := a.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	units, err := a.store.GetUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get units: %w", err)
	}
	products, err := a.store.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	unitNames := make(map[string]string, len(units))
	for _, u := range units {
		unitNames[u.ID] = firstNonEmpty(u.Short, u.Name)
	}
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	payload := &SharePayload{
		Version:  Version,
		ListName: list.Name,
		Items:    make([]ShareItem, 0, len(items)),
	}
	for _, item := range items {
		payload.Items = append(payload.Items, ShareItem{
			Name:      firstNonEmpty(item.Name, productNames[item.ProductID], DefaultItemName),
			Quantity:  item.Quantity,
			Unit:      firstNonEmpty(unitNames[item.UnitID], DefaultUnit),
			Category:  firstNonEmpty(categoryNames[item.CategoryID], DefaultCategory),
			Comment:   item.Comment,
			Scope:     item.Scope,
			Purchased: item.Purchased,
		})
	}
	return payload, nil
}

// Apply writes the items of p into the store. In ModeMerge with a
// non-empty targetListID the items are appended to that list; otherwise a
// new list named p.ListName is created.
//
// Apply is best-effort, not atomic. Items are created one at a time and a
// failure stops the import without removing what was already written; the
// returned *ImportError carries the list id and how many items landed.
func (a *Assembler) Apply(ctx context.Context, p SharePayload, mode Mode, targetListID string) (ImportResult, error) {
	var listID string
	if mode == ModeMerge && targetListID != "" {
		list, err := a.store.GetList(ctx, targetListID)
		if err != nil {
			return ImportResult{}, fmt.Errorf("failed to get target list: %w", err)
		}
		listID = list.ID
	} else {
		list, err := a.store.CreateList(ctx, p.ListName)
		if err != nil {
			return ImportResult{}, fmt.Errorf("failed to create list: %w", err)
		}
		listID = list.ID
	}

	for i, item := range p.Items {
		if err := a.importItem(ctx, listID, item); err != nil {
			slog.Error("share import stopped", "list_id", listID, "imported", i, "error", err)
			return ImportResult{ListID: listID, Imported: i}, &ImportError{ListID: listID, Imported: i, Err: err}
		}
	}

	return ImportResult{ListID: listID, Imported: len(p.Items)}, nil
}

func (a *Assembler) importItem(ctx context.Context, listID string, item ShareItem) error {
	name := firstNonEmpty(item.Name, DefaultItemName)

	category, err := a.store.EnsureCategory(ctx, firstNonEmpty(item.Category, DefaultCategory))
	if err != nil {
		return fmt.Errorf("failed to ensure category: %w", err)
	}
	unit, err := a.store.EnsureUnit(ctx, firstNonEmpty(item.Unit, DefaultUnit))
	if err != nil {
		return fmt.Errorf("failed to ensure unit: %w", err)
	}
	product, err := a.store.EnsureProduct(ctx, name, category.ID, unit.ID)
	if err != nil {
		return fmt.Errorf("failed to ensure product: %w", err)
	}

	_, err = a.store.CreateItem(ctx, listID, models.ItemFields{
		ProductID:  product.ID,
		Name:       name,
		Quantity:   item.Quantity,
		UnitID:     unit.ID,
		CategoryID: category.ID,
		Comment:    item.Comment,
		Scope:      item.Scope,
		Purchased:  item.Purchased,
	})
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
