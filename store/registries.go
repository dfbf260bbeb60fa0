// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/basketry/models"
)

func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM category ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) GetUnits(ctx context.Context) ([]models.Unit, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, short FROM unit ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	units := []models.Unit{}
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Short); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, category_id, unit_id FROM product ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.UnitID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// FindCategoryByName matches case-insensitively, ignoring surrounding
// space. It returns nil when nothing matches.
func (s *Store) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	target := normalize(name)
	for _, c := range categories {
		if normalize(c.Name) == target {
			return &c, nil
		}
	}
	return nil, nil
}

// FindUnitByName matches either the unit's name or its short name.
func (s *Store) FindUnitByName(ctx context.Context, name string) (*models.Unit, error) {
	units, err := s.GetUnits(ctx)
	if err != nil {
		return nil, err
	}
	target := normalize(name)
	for _, u := range units {
		if normalize(u.Name) == target || normalize(u.Short) == target {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) FindProductByName(ctx context.Context, name string) (*models.Product, error) {
	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	target := normalize(name)
	for _, p := range products {
		if normalize(p.Name) == target {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	c := models.Category{ID: newID(), Name: name}
	_, err := s.db.ExecContext(ctx, "INSERT INTO category (id, name) VALUES ($1, $2)", c.ID, c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	return &c, nil
}

func (s *Store) CreateUnit(ctx context.Context, name, short string) (*models.Unit, error) {
	u := models.Unit{ID: newID(), Name: name, Short: short}
	_, err := s.db.ExecContext(ctx, "INSERT INTO unit (id, name, short) VALUES ($1, $2, $3)", u.ID, u.Name, u.Short)
	if err != nil {
		return nil, fmt.Errorf("failed to insert unit: %w", err)
	}
	return &u, nil
}

func (s *Store) CreateProduct(ctx context.Context, name, categoryID, unitID string) (*models.Product, error) {
	p := models.Product{ID: newID(), Name: name, CategoryID: categoryID, UnitID: unitID}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO product (id, name, category_id, unit_id)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Name, p.CategoryID, p.UnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &p, nil
}

// EnsureCategory returns the category with the given name, creating it if
// needed.
func (s *Store) EnsureCategory(ctx context.Context, name string) (*models.Category, error) {
	existing, err := s.FindCategoryByName(ctx, name)
	if err != nil || existing != nil {
		return existing, err
	}
	return s.CreateCategory(ctx, name)
}

// EnsureUnit creates missing units with the name doubling as short name.
func (s *Store) EnsureUnit(ctx context.Context, name string) (*models.Unit, error) {
	existing, err := s.FindUnitByName(ctx, name)
	if err != nil || existing != nil {
		return existing, err
	}
	return s.CreateUnit(ctx, name, name)
}

// EnsureProduct matches by name only; an existing product keeps its own
// category and unit.
func (s *Store) EnsureProduct(ctx context.Context, name, categoryID, unitID string) (*models.Product, error) {
	existing, err := s.FindProductByName(ctx, name)
	if err != nil || existing != nil {
		return existing, err
	}
	return s.CreateProduct(ctx, name, categoryID, unitID)
}
