package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// ProductSpec describes one product record in a catalog document.
type ProductSpec struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Product is shorthand for a ProductSpec literal.
func Product(name, description string, price float64, quantity int) ProductSpec {
	return ProductSpec{Name: name, Description: description, Price: price, Quantity: quantity}
}

// CategorySpec describes one category record.
type CategorySpec struct {
	Name        string
	Description string
	Products    []ProductSpec
	// OmitProducts leaves the products key out of the record.
	OmitProducts bool
}

func (c CategorySpec) record() map[string]any {
	rec := map[string]any{
		"name":        c.Name,
		"description": c.Description,
	}
	if !c.OmitProducts {
		products := c.Products
		if products == nil {
			products = []ProductSpec{}
		}
		rec["products"] = products
	}
	return rec
}

// Builder provides a fluent interface for constructing catalog documents.
type Builder interface {
	// WithCategory appends a category with the given products.
	WithCategory(name, description string, products ...ProductSpec) Builder

	// WithBareCategory appends a category without a products key.
	WithBareCategory(name, description string) Builder

	// WithRawCategory appends an arbitrary value as a category element.
	WithRawCategory(v any) Builder

	// WithFixture appends every category of a fixture.
	WithFixture(fixture Fixture) Builder

	// JSON encodes the document.
	JSON() []byte

	// WriteFile writes the document into the test's temp dir and returns its path.
	WriteFile() string
}

type catalogBuilder struct {
	t        *testing.T
	elements []any
}

// NewBuilder creates a new catalog builder for the given test.
func NewBuilder(t *testing.T) Builder {
	t.Helper()
	return &catalogBuilder{
		t:        t,
		elements: make([]any, 0),
	}
}

func (b *catalogBuilder) WithCategory(name, description string, products ...ProductSpec) Builder {
	spec := CategorySpec{Name: name, Description: description, Products: products}
	b.elements = append(b.elements, spec.record())
	return b
}

func (b *catalogBuilder) WithBareCategory(name, description string) Builder {
	spec := CategorySpec{Name: name, Description: description, OmitProducts: true}
	b.elements = append(b.elements, spec.record())
	return b
}

func (b *catalogBuilder) WithRawCategory(v any) Builder {
	b.elements = append(b.elements, v)
	return b
}

func (b *catalogBuilder) WithFixture(fixture Fixture) Builder {
	for _, c := range fixture.Categories() {
		b.elements = append(b.elements, c.record())
	}
	return b
}

func (b *catalogBuilder) JSON() []byte {
	b.t.Helper()

	data, err := json.MarshalIndent(b.elements, "", "  ")
	if err != nil {
		b.t.Fatalf("failed to encode catalog: %v", err)
	}
	return data
}

func (b *catalogBuilder) WriteFile() string {
	b.t.Helper()
	return WriteRaw(b.t, string(b.JSON()))
}

// WriteRaw writes content verbatim to a catalog file in the test's temp dir.
func WriteRaw(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}
