// Package catalog loads product categories from JSON documents.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/Veraticus/spice-catalog/internal/common"
	"github.com/Veraticus/spice-catalog/internal/model"
)

// ProgressFunc is called after each category is built.
type ProgressFunc func(done, total int)

// Loader turns catalog documents into categories.
type Loader struct {
	counters *model.Counters
	progress ProgressFunc
}

// Option configures a Loader.
type Option func(*Loader)

// WithCounters records every constructed category and product in counters.
func WithCounters(counters *model.Counters) Option {
	return func(l *Loader) {
		l.counters = counters
	}
}

// WithProgress reports build progress.
func WithProgress(fn ProgressFunc) Option {
	return func(l *Loader) {
		l.progress = fn
	}
}

// NewLoader creates a loader. Without WithCounters it uses its own counters.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.counters == nil {
		l.counters = model.NewCounters()
	}
	return l
}

// Counters returns the counters categories are registered against.
func (l *Loader) Counters() *model.Counters {
	return l.counters
}

// LoadCategories reads the catalog file at path.
func LoadCategories(ctx context.Context, path string, opts ...Option) ([]*model.Category, error) {
	return NewLoader(opts...).LoadCategories(ctx, path)
}

// LoadCategories reads the UTF-8 catalog file at path.
func (l *Loader) LoadCategories(ctx context.Context, path string) ([]*model.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("catalog %s: %w: %w", path, common.ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	categories, err := l.load(ctx, f, path)
	if err != nil {
		return nil, err
	}

	common.LogInfo("Loaded catalog", common.Fields{
		"path":             path,
		"categories":       len(categories),
		"total_categories": l.counters.Categories(),
		"total_products":   l.counters.Products(),
	})

	return categories, nil
}

// LoadFromReader reads a catalog document from r.
func (l *Loader) LoadFromReader(ctx context.Context, r io.Reader) ([]*model.Category, error) {
	return l.load(ctx, r, "")
}

func (l *Loader) load(ctx context.Context, r io.Reader, source string) ([]*model.Category, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	tree, err := parse(data, source)
	if err != nil {
		return nil, err
	}

	return l.build(ctx, tree)
}

// parse decodes the document into a generic tree of sequences and mappings.
// The document must be valid UTF-8.
func parse(data []byte, source string) ([]any, error) {
	if !utf8.Valid(data) {
		return nil, &common.ParseError{Source: source, Err: errors.New("catalog is not valid UTF-8")}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &common.ParseError{Source: source, Err: err}
	}
	if dec.More() {
		return nil, &common.ParseError{Source: source, Err: errors.New("unexpected data after top-level value")}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &common.ParseError{Source: source, Err: fmt.Errorf("top-level value must be an array, got %s", jsonKind(doc))}
	}
	return items, nil
}

func (l *Loader) build(ctx context.Context, items []any) ([]*model.Category, error) {
	categories := make([]*model.Category, 0, len(items))

	for i, item := range items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("category[%d]: %w", i, &common.ParseError{Err: fmt.Errorf("expected object, got %s", jsonKind(item))})
		}

		category, err := l.buildCategory(raw)
		if err != nil {
			return nil, fmt.Errorf("category[%d]: %w", i, err)
		}
		categories = append(categories, category)

		common.LogDebug("Built category", common.Fields{
			"index":    i,
			"name":     category.Name,
			"products": len(category.Products()),
		})

		if l.progress != nil {
			l.progress(i+1, len(items))
		}
	}

	return categories, nil
}

func (l *Loader) buildCategory(raw map[string]any) (*model.Category, error) {
	name, err := model.StringField(raw, model.FieldName)
	if err != nil {
		return nil, err
	}
	description, err := model.StringField(raw, model.FieldDescription)
	if err != nil {
		return nil, err
	}

	rawProducts, err := productRecords(raw)
	if err != nil {
		return nil, err
	}

	products, err := buildProducts(rawProducts)
	if err != nil {
		return nil, err
	}

	return model.NewCategory(l.counters, name, description, products), nil
}

func productRecords(raw map[string]any) ([]map[string]any, error) {
	value, ok := raw[model.FieldProducts]
	if !ok || value == nil {
		return nil, nil
	}

	list, ok := value.([]any)
	if !ok {
		return nil, common.NewInvalidFieldError(model.FieldProducts, "expected array, got "+jsonKind(value))
	}

	records := make([]map[string]any, len(list))
	for i, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("products[%d]: %w", i, &common.ParseError{Err: fmt.Errorf("expected object, got %s", jsonKind(item))})
		}
		records[i] = rec
	}
	return records, nil
}

// buildProducts validates every record first, then merges each product with
// the first same-named product among the other raw records. Merging reads
// the unconverted records, so earlier merges never feed into later ones.
func buildProducts(records []map[string]any) ([]*model.Product, error) {
	parsed := make([]model.ProductFields, len(records))
	for i, rec := range records {
		pf, err := model.ParseProductFields(rec)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		parsed[i] = pf
	}

	base := make([]*model.Product, len(parsed))
	for i, pf := range parsed {
		p, err := pf.Product()
		if err != nil {
			return nil, fmt.Errorf("products[%d] %q: %w", i, pf.Name, err)
		}
		base[i] = p
	}

	products := make([]*model.Product, len(records))
	others := make([]*model.Product, 0, len(base))
	for i, rec := range records {
		others = others[:0]
		others = append(others, base[:i]...)
		others = append(others, base[i+1:]...)

		p, err := model.NewProductFromMapping(rec, others)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		if p.Quantity != base[i].Quantity {
			common.LogDebug("Merged duplicate product", common.Fields{
				"name":     p.Name,
				"quantity": p.Quantity,
				"price":    p.Price(),
			})
		}
		products[i] = p
	}

	return products, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
