package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/spice-catalog/internal/common"
)

// Product is a single catalog item. Price is only changed through SetPrice.
type Product struct {
	Name        string
	Description string
	Quantity    int
	price       float64
}

// NewProduct creates a product with trimmed text fields.
// A price that is not a finite positive number, or a negative quantity, is rejected.
func NewProduct(name, description string, price float64, quantity int) (*Product, error) {
	if !validPrice(price) {
		return nil, fmt.Errorf("%w: got %s", common.ErrInvalidPrice, FormatPrice(price))
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: got %d", common.ErrInvalidQuantity, quantity)
	}

	return &Product{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		price:       price,
	}, nil
}

// validPrice reports whether price is finite and positive. NaN fails.
func validPrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 1)
}

// Price returns the current price.
func (p *Product) Price() float64 {
	return p.price
}

// String formats the product the way catalog listings display it.
func (p *Product) String() string {
	return fmt.Sprintf("%s, %s руб. Остаток: %d шт.", p.Name, FormatPrice(p.price), p.Quantity)
}

// SameName reports whether two product names match ignoring case.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// MergeProduct folds the first product in existing whose name matches p
// into p: quantities add up and the higher price wins.
// It reports whether a match was found. If the summed quantity does not fit
// in an int, p is left untouched and ErrQuantityOverflow is returned.
func MergeProduct(p *Product, existing []*Product) (bool, error) {
	for _, other := range existing {
		if other == nil || !SameName(other.Name, p.Name) {
			continue
		}

		sum, ok := addQuantity(p.Quantity, other.Quantity)
		if !ok {
			return true, fmt.Errorf("%w: %d + %d", common.ErrQuantityOverflow, p.Quantity, other.Quantity)
		}

		p.Quantity = sum
		if other.price > p.price {
			p.price = other.price
		}
		return true, nil
	}
	return false, nil
}

func addQuantity(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// FormatPrice renders a price in its shortest form, keeping a trailing ".0"
// for whole values (123000 -> "123000.0"). Magnitudes of 1e16 and above or
// below 1e-4 use exponent notation ("1e+16", "5e-05").
func FormatPrice(price float64) string {
	if abs := math.Abs(price); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(price, 'e', -1, 64)
	}

	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.ContainsAny(s, ".nN") {
		s += ".0"
	}
	return s
}
