// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/store"
)

//go:embed catalog.yaml
var catalogYAML []byte

// MaxSuggestions bounds the result of Suggest.
const MaxSuggestions = 6

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// ParseLocale accepts "en" or "ru", ignoring case and region suffixes
// such as "ru-RU".
func ParseLocale(s string) (Locale, error) {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	switch Locale(lang) {
	case LocaleEN, LocaleRU:
		return Locale(lang), nil
	default:
		return "", fmt.Errorf("unsupported locale %q", s)
	}
}

type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type Unit struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Short string `yaml:"short"`
}

// Product is a catalog entry with per-locale names and aliases.
type Product struct {
	ID       string              `yaml:"id"`
	Names    map[Locale]string   `yaml:"names"`
	Category string              `yaml:"category"`
	Unit     string              `yaml:"unit"`
	Aliases  map[Locale][]string `yaml:"aliases"`
}

type keywordGroup struct {
	Category string   `yaml:"category"`
	Tokens   []string `yaml:"tokens"`
}

// Catalog is the built-in product catalog. It is read-only after Load.
type Catalog struct {
	Categories []Category                `yaml:"categories"`
	Units      []Unit                    `yaml:"units"`
	Products   []Product                 `yaml:"products"`
	Keywords   map[Locale][]keywordGroup `yaml:"keywords"`
}

// Load parses the embedded catalog and checks its references.
func Load() (*Catalog, error) {
	return parse(catalogYAML)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	categories := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat.ID] = true
	}
	units := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		units[u.ID] = true
	}
	for _, p := range c.Products {
		if p.Names[LocaleEN] == "" {
			return nil, fmt.Errorf("catalog product %s has no English name", p.ID)
		}
		if !categories[p.Category] {
			return nil, fmt.Errorf("catalog product %s: unknown category %s", p.ID, p.Category)
		}
		if !units[p.Unit] {
			return nil, fmt.Errorf("catalog product %s: unknown unit %s", p.ID, p.Unit)
		}
	}
	for locale, groups := range c.Keywords {
		for _, g := range groups {
			if !categories[g.Category] {
				return nil, fmt.Errorf("catalog keywords %s: unknown category %s", locale, g.Category)
			}
		}
	}

	return &c, nil
}

// Name returns the product's name in locale, falling back to English.
func (p Product) Name(locale Locale) string {
	if name, ok := p.Names[locale]; ok && name != "" {
		return name
	}
	return p.Names[LocaleEN]
}

// FindByName returns the product whose localized name or one of whose
// aliases equals name after trimming and case folding.
func (c *Catalog) FindByName(name string, locale Locale) *Product {
	target := normalize(name)
	if target == "" {
		return nil
	}
	for i := range c.Products {
		p := &c.Products[i]
		if normalize(p.Name(locale)) == target {
			return p
		}
		for _, alias := range p.Aliases[locale] {
			if normalize(alias) == target {
				return p
			}
		}
	}
	return nil
}

// Suggest returns up to MaxSuggestions products whose localized name
// contains name.
func (c *Catalog) Suggest(name string, locale Locale) []Product {
	target := normalize(name)
	if target == "" {
		return nil
	}
	var out []Product
	for _, p := range c.Products {
		if strings.Contains(normalize(p.Name(locale)), target) {
			out = append(out, p)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// ResolveCategory guesses a category id for a free-form item name: the
// category of a matching catalog product, else the first category with a
// keyword contained in the name. It returns "" when nothing matches.
func (c *Catalog) ResolveCategory(name string, locale Locale) string {
	if p := c.FindByName(name, locale); p != nil {
		return p.Category
	}
	target := normalize(name)
	if target == "" {
		return ""
	}
	for _, group := range c.Keywords[locale] {
		for _, token := range group.Tokens {
			if strings.Contains(target, token) {
				return group.Category
			}
		}
	}
	return ""
}

// Defaults returns the registry rows to seed a store with. Products are
// named in English.
func (c *Catalog) Defaults() store.Defaults {
	d := store.Defaults{
		Categories: make([]models.Category, 0, len(c.Categories)),
		Units:      make([]models.Unit, 0, len(c.Units)),
		Products:   make([]models.Product, 0, len(c.Products)),
	}
	for _, cat := range c.Categories {
		d.Categories = append(d.Categories, models.Category{ID: cat.ID, Name: cat.Name})
	}
	for _, u := range c.Units {
		d.Units = append(d.Units, models.Unit{ID: u.ID, Name: u.Name, Short: u.Short})
	}
	for _, p := range c.Products {
		d.Products = append(d.Products, models.Product{
			ID:         p.ID,
			Name:       p.Names[LocaleEN],
			CategoryID: p.Category,
			UnitID:     p.Unit,
		})
	}
	return d
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
