package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Veraticus/spice-catalog/internal/common"
)

// Required keys of a product record.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
	FieldProducts    = "products"
)

// ProductFields is a product record parsed out of a generic mapping.
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

// ParseProductFields validates presence and type of every product key.
// The first offending key is reported as a *common.MissingFieldError.
func ParseProductFields(fields map[string]any) (ProductFields, error) {
	var (
		pf  ProductFields
		err error
	)

	if pf.Name, err = StringField(fields, FieldName); err != nil {
		return ProductFields{}, err
	}
	if pf.Description, err = StringField(fields, FieldDescription); err != nil {
		return ProductFields{}, err
	}
	if pf.Price, err = numberField(fields, FieldPrice); err != nil {
		return ProductFields{}, err
	}
	if pf.Quantity, err = intField(fields, FieldQuantity); err != nil {
		return ProductFields{}, err
	}

	return pf, nil
}

// Product builds a product from the parsed record.
func (f ProductFields) Product() (*Product, error) {
	return NewProduct(f.Name, f.Description, f.Price, f.Quantity)
}

// NewProductFromMapping parses fields into a product, then merges it with
// the first product in existing that has the same name ignoring case.
func NewProductFromMapping(fields map[string]any, existing []*Product) (*Product, error) {
	pf, err := ParseProductFields(fields)
	if err != nil {
		return nil, err
	}

	p, err := pf.Product()
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", pf.Name, err)
	}

	if _, err := MergeProduct(p, existing); err != nil {
		return nil, fmt.Errorf("product %q: %w", pf.Name, err)
	}
	return p, nil
}

// StringField returns a required string value.
func StringField(fields map[string]any, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", common.NewMissingFieldError(key)
	}

	s, ok := raw.(string)
	if !ok {
		return "", common.NewInvalidFieldError(key, fmt.Sprintf("expected string, got %T", raw))
	}
	return s, nil
}

func numberField(fields map[string]any, key string) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, common.NewMissingFieldError(key)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, common.NewInvalidFieldError(key, err.Error())
		}
		return f, nil
	default:
		return 0, common.NewInvalidFieldError(key, fmt.Sprintf("expected number, got %T", raw))
	}
}

func intField(fields map[string]any, key string) (int, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, common.NewMissingFieldError(key)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, common.NewInvalidFieldError(key, "out of range")
		}
		return int(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			if n > math.MaxInt || n < math.MinInt {
				return 0, common.NewInvalidFieldError(key, "out of range")
			}
			return int(n), nil
		}
		f, err := v.Float64()
		if (err != nil && !errors.Is(err, strconv.ErrRange)) || f != math.Trunc(f) {
			return 0, common.NewInvalidFieldError(key, fmt.Sprintf("expected integer, got %s", v))
		}
		return floatToInt(key, f)
	case float64:
		if v != math.Trunc(v) {
			return 0, common.NewInvalidFieldError(key, fmt.Sprintf("expected integer, got %v", v))
		}
		return floatToInt(key, v)
	default:
		return 0, common.NewInvalidFieldError(key, fmt.Sprintf("expected integer, got %T", raw))
	}
}

// maxIntFloat is 2^63 on 64-bit platforms, the first float above math.MaxInt.
const maxIntFloat = float64(math.MaxInt)

func floatToInt(key string, f float64) (int, error) {
	if math.IsInf(f, 0) || f >= maxIntFloat || f < math.MinInt {
		return 0, common.NewInvalidFieldError(key, "out of range")
	}
	return int(f), nil
}
