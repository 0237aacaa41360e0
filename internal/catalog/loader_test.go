package catalog

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/spice-catalog/internal/common"
	"github.com/Veraticus/spice-catalog/internal/model"
	"github.com/Veraticus/spice-catalog/internal/testutil/catalogs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCategories_Success(t *testing.T) {
	path := catalogs.NewBuilder(t).WithFixture(catalogs.FixtureElectronics).WriteFile()
	counters := model.NewCounters()

	categories, err := LoadCategories(context.Background(), path, WithCounters(counters))
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Len(t, categories[0].Products(), 3)
	assert.Len(t, categories[1].Products(), 1)

	assert.Equal(t, "Смартфоны", categories[0].Name)
	assert.Equal(t, "Смартфоны, как средство не только коммуникации", categories[0].Description)
	assert.Equal(t, "Телевизоры", categories[1].Name)

	assert.Equal(t, []string{
		"Samsung Galaxy C23 Ultra, 180000.0 руб. Остаток: 5 шт.",
		"Iphone 15, 210000.0 руб. Остаток: 8 шт.",
		"Xiaomi Redmi Note 11, 31000.0 руб. Остаток: 14 шт.",
	}, categories[0].DisplayProducts())
	assert.Equal(t, []string{`55" QLED 4K, 123000.0 руб. Остаток: 7 шт.`}, categories[1].DisplayProducts())

	assert.Equal(t, 2, counters.Categories())
	assert.Equal(t, 4, counters.Products())
}

func TestLoadCategories_EmptyArray(t *testing.T) {
	path := catalogs.WriteRaw(t, "[]")

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestLoadCategories_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.json")

	categories, err := LoadCategories(context.Background(), path)
	assert.Nil(t, categories)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadCategories_MissingProductsKey(t *testing.T) {
	path := catalogs.NewBuilder(t).WithBareCategory("Books", "All kinds of books").WriteFile()

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Equal(t, "Books", categories[0].Name)
	assert.Equal(t, "All kinds of books", categories[0].Description)
	assert.NotNil(t, categories[0].Products())
	assert.Empty(t, categories[0].Products())
}

func TestLoadCategories_NullProducts(t *testing.T) {
	path := catalogs.NewBuilder(t).
		WithRawCategory(map[string]any{"name": "Books", "description": "d", "products": nil}).
		WriteFile()

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Empty(t, categories[0].Products())
}

func TestLoadCategories_MissingFields(t *testing.T) {
	validProduct := map[string]any{"name": "Dune", "description": "Frank Herbert", "price": 990, "quantity": 3}

	without := func(m map[string]any, key string) map[string]any {
		out := make(map[string]any, len(m))
		for k, v := range m {
			if k != key {
				out[k] = v
			}
		}
		return out
	}

	tests := []struct {
		element   any
		name      string
		wantField string
		wantPath  string
	}{
		{
			name:      "unrelated keys",
			element:   map[string]any{"na": "Keyboard", "UwU": "123"},
			wantField: "name",
			wantPath:  "category[0]",
		},
		{
			name:      "category without description",
			element:   map[string]any{"name": "Books"},
			wantField: "description",
			wantPath:  "category[0]",
		},
		{
			name: "product without price",
			element: map[string]any{
				"name": "Books", "description": "d",
				"products": []any{validProduct, without(validProduct, "price")},
			},
			wantField: "price",
			wantPath:  "category[0]: products[1]",
		},
		{
			name: "product without quantity",
			element: map[string]any{
				"name": "Books", "description": "d",
				"products": []any{without(validProduct, "quantity")},
			},
			wantField: "quantity",
			wantPath:  "category[0]: products[0]",
		},
		{
			name: "product with string quantity",
			element: map[string]any{
				"name": "Books", "description": "d",
				"products": []any{map[string]any{"name": "Dune", "description": "x", "price": 1, "quantity": "3"}},
			},
			wantField: "quantity",
			wantPath:  "category[0]: products[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := catalogs.NewBuilder(t).WithRawCategory(tt.element).WriteFile()

			_, err := LoadCategories(context.Background(), path)
			require.ErrorIs(t, err, common.ErrMissingField)

			field, ok := common.FieldName(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, field)
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantPath), "error %q should start with %q", err, tt.wantPath)
		})
	}
}

func TestLoadCategories_FailedLoadKeepsEarlierCounts(t *testing.T) {
	path := catalogs.NewBuilder(t).
		WithFixture(catalogs.FixtureElectronics).
		WithRawCategory(map[string]any{"name": "Broken"}).
		WriteFile()
	counters := model.NewCounters()

	_, err := LoadCategories(context.Background(), path, WithCounters(counters))
	require.ErrorIs(t, err, common.ErrMissingField)

	// Categories before the broken element were already constructed.
	assert.Equal(t, 2, counters.Categories())
}

func TestLoadCategories_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated", content: `[{"name": "Books"`},
		{name: "not json", content: "name: Books"},
		{name: "object at top level", content: `{"name": "Books", "description": "d"}`},
		{name: "trailing data", content: `[] []`},
		{name: "category not an object", content: `["Books"]`},
		{name: "product not an object", content: `[{"name": "Books", "description": "d", "products": [1]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := catalogs.WriteRaw(t, tt.content)

			_, err := LoadCategories(context.Background(), path)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrParse)

			var pe *common.ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestLoadCategories_InvalidUTF8(t *testing.T) {
	path := catalogs.WriteRaw(t, "[{\"name\": \"Book\xffs\", \"description\": \"d\"}]")

	_, err := LoadCategories(context.Background(), path)
	require.ErrorIs(t, err, common.ErrParse)
	assert.ErrorContains(t, err, "UTF-8")
}

func TestLoadCategories_QuantityOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
	}{
		{name: "beyond int64", quantity: "9223372036854775808"},
		{name: "exponent", quantity: "1e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := catalogs.WriteRaw(t, `[{"name": "Cables", "description": "d", "products": [
				{"name": "a", "description": "x", "price": 1, "quantity": `+tt.quantity+`}]}]`)

			_, err := LoadCategories(context.Background(), path)
			require.ErrorIs(t, err, common.ErrMissingField)
			assert.NotErrorIs(t, err, common.ErrInvalidQuantity)
			assert.Equal(t, `category[0]: products[0]: missing required field "quantity": out of range`, err.Error())
		})
	}
}

func TestLoadCategories_MergedQuantityOverflow(t *testing.T) {
	path := catalogs.WriteRaw(t, `[{"name": "Cables", "description": "d", "products": [
		{"name": "a", "description": "x", "price": 1, "quantity": 4611686018427387904},
		{"name": "A", "description": "y", "price": 1, "quantity": 4611686018427387904}]}]`)

	categories, err := LoadCategories(context.Background(), path)
	require.ErrorIs(t, err, common.ErrQuantityOverflow)
	assert.Nil(t, categories)
	assert.Contains(t, err.Error(), "category[0]: products[0]")
}

func TestLoadCategories_InvalidPrice(t *testing.T) {
	path := catalogs.NewBuilder(t).
		WithCategory("Books", "d", catalogs.Product("Dune", "x", 0, 1)).
		WriteFile()

	_, err := LoadCategories(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrInvalidPrice)
}

func TestLoadCategories_MergesDuplicates(t *testing.T) {
	path := catalogs.NewBuilder(t).WithFixture(catalogs.FixtureDuplicates).WriteFile()

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	products := categories[0].Products()
	require.Len(t, products, 3)

	assert.Equal(t, "Keyboard", products[0].Name)
	assert.Equal(t, 60, products[0].Quantity)
	assert.InDelta(t, 2500, products[0].Price(), 0)

	assert.Equal(t, "Mouse", products[1].Name)
	assert.Equal(t, 45, products[1].Quantity)
	assert.InDelta(t, 1520.5, products[1].Price(), 0)

	assert.Equal(t, "KEYBOARD", products[2].Name)
	assert.Equal(t, 60, products[2].Quantity)
	assert.InDelta(t, 2500, products[2].Price(), 0)
}

func TestLoadCategories_MergeUsesRawRecords(t *testing.T) {
	path := catalogs.NewBuilder(t).
		WithCategory("Cables", "d",
			catalogs.Product("cable", "a", 10, 1),
			catalogs.Product("Cable", "b", 20, 2),
			catalogs.Product("CABLE", "c", 30, 4),
		).
		WriteFile()

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)

	products := categories[0].Products()
	require.Len(t, products, 3)

	// Each product folds in only the first other record with its name.
	assert.Equal(t, 3, products[0].Quantity)
	assert.InDelta(t, 20, products[0].Price(), 0)
	assert.Equal(t, 3, products[1].Quantity)
	assert.InDelta(t, 20, products[1].Price(), 0)
	assert.Equal(t, 5, products[2].Quantity)
	assert.InDelta(t, 30, products[2].Price(), 0)
}

func TestLoadCategories_MergeStaysInCategory(t *testing.T) {
	path := catalogs.NewBuilder(t).
		WithCategory("A", "d", catalogs.Product("Cable", "x", 10, 1)).
		WithCategory("B", "d", catalogs.Product("cable", "y", 20, 2)).
		WriteFile()

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, categories[0].Products()[0].Quantity)
	assert.Equal(t, 2, categories[1].Products()[0].Quantity)
}

func TestLoadCategories_TrimsText(t *testing.T) {
	path := catalogs.NewBuilder(t).
		WithCategory("  Books ", " All kinds\n", catalogs.Product(" Dune ", " Frank Herbert ", 990, 3)).
		WriteFile()

	categories, err := LoadCategories(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Books", categories[0].Name)
	assert.Equal(t, "All kinds", categories[0].Description)
	assert.Equal(t, "Dune", categories[0].Products()[0].Name)
	assert.Equal(t, "Frank Herbert", categories[0].Products()[0].Description)
}

func TestLoader_CountersAccumulateAcrossLoads(t *testing.T) {
	path := catalogs.NewBuilder(t).WithFixture(catalogs.FixtureElectronics).WriteFile()
	loader := NewLoader()

	_, err := loader.LoadCategories(context.Background(), path)
	require.NoError(t, err)
	_, err = loader.LoadCategories(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, model.CounterSnapshot{Categories: 4, Products: 8}, loader.Counters().Snapshot())

	loader.Counters().Reset()
	assert.Equal(t, model.CounterSnapshot{}, loader.Counters().Snapshot())
}

func TestLoader_AddProductAfterLoad(t *testing.T) {
	counters := model.NewCounters()
	loader := NewLoader(WithCounters(counters))

	categories, err := loader.LoadFromReader(context.Background(), strings.NewReader(`[{"name": "Books", "description": "d"}]`))
	require.NoError(t, err)

	p, err := model.NewProduct("Dune", "Frank Herbert", 990, 3)
	require.NoError(t, err)
	categories[0].AddProduct(p)

	assert.Equal(t, 1, counters.Categories())
	assert.Equal(t, 1, counters.Products())
}

func TestLoader_Progress(t *testing.T) {
	var calls [][2]int
	loader := NewLoader(WithProgress(func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}))

	path := catalogs.NewBuilder(t).WithFixture(catalogs.FixtureElectronics).WithBareCategory("Books", "d").WriteFile()
	_, err := loader.LoadCategories(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().LoadFromReader(ctx, strings.NewReader(`[{"name": "Books", "description": "d"}]`))
	assert.ErrorIs(t, err, context.Canceled)
}
