// Package model defines the catalog entities: products, categories and the
// counters shared by everything built from one catalog.
package model

import (
	"fmt"
	"strings"
)

// Category is a named group of products. It owns its product list.
type Category struct {
	counters    *Counters
	Name        string
	Description string
	products    []*Product
}

// NewCategory creates a category that takes ownership of products and
// records the construction in counters. counters may be nil.
func NewCategory(counters *Counters, name, description string, products []*Product) *Category {
	if products == nil {
		products = []*Product{}
	}

	c := &Category{
		counters:    counters,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		products:    products,
	}
	counters.categoryCreated(len(products))

	return c
}

// AddProduct appends p and counts it as an added product.
func (c *Category) AddProduct(p *Product) {
	c.products = append(c.products, p)
	c.counters.productAdded()
}

// Products returns the owned product list.
func (c *Category) Products() []*Product {
	return c.products
}

// DisplayProducts formats every product in insertion order.
func (c *Category) DisplayProducts() []string {
	out := make([]string, len(c.products))
	for i, p := range c.products {
		out[i] = p.String()
	}
	return out
}

// FindProduct returns the first product with the given name, ignoring case.
func (c *Category) FindProduct(name string) *Product {
	name = strings.TrimSpace(name)
	for _, p := range c.products {
		if SameName(p.Name, name) {
			return p
		}
	}
	return nil
}

// TotalQuantity sums the stock of all products.
func (c *Category) TotalQuantity() int {
	total := 0
	for _, p := range c.products {
		total += p.Quantity
	}
	return total
}

func (c *Category) String() string {
	return fmt.Sprintf("%s, количество продуктов: %d шт.", c.Name, c.TotalQuantity())
}

// FindCategory returns the first category with the given name, ignoring case.
func FindCategory(categories []*Category, name string) *Category {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
