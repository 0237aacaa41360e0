package model

import (
	"context"
	"fmt"
)

// PriceChange describes what SetPrice did with a requested price.
type PriceChange int

const (
	// PriceUnchanged means the requested price equals the current one.
	PriceUnchanged PriceChange = iota
	// PriceUpdated means the price was raised.
	PriceUpdated
	// PriceDecreased means a lower price was confirmed and applied.
	PriceDecreased
	// PriceDecreaseDeclined means a lower price was not confirmed.
	PriceDecreaseDeclined
	// PriceRejected means the requested price was not a finite positive number.
	PriceRejected
)

func (c PriceChange) String() string {
	switch c {
	case PriceUnchanged:
		return "unchanged"
	case PriceUpdated:
		return "updated"
	case PriceDecreased:
		return "decreased"
	case PriceDecreaseDeclined:
		return "decrease declined"
	case PriceRejected:
		return "rejected"
	default:
		return fmt.Sprintf("PriceChange(%d)", int(c))
	}
}

// Applied reports whether the stored price now equals the requested one.
func (c PriceChange) Applied() bool {
	return c == PriceUpdated || c == PriceDecreased || c == PriceUnchanged
}

// Diagnostics shown to the operator.
const (
	MsgNonPositivePrice = "Цена не должна быть нулевая или отрицательная"
	MsgDecreasePrompt   = "Вы уверены что хотите снизить цену? (y/n): "
)

// PriceConfirmer decides whether a price decrease may go ahead.
type PriceConfirmer interface {
	ConfirmPriceDecrease(ctx context.Context, p *Product, newPrice float64) (bool, error)
}

// ConfirmFunc adapts a plain function to PriceConfirmer.
type ConfirmFunc func(ctx context.Context, p *Product, newPrice float64) (bool, error)

// ConfirmPriceDecrease calls f.
func (f ConfirmFunc) ConfirmPriceDecrease(ctx context.Context, p *Product, newPrice float64) (bool, error) {
	return f(ctx, p, newPrice)
}

// AlwaysConfirm approves every decrease.
var AlwaysConfirm = ConfirmFunc(func(context.Context, *Product, float64) (bool, error) {
	return true, nil
})

// NeverConfirm declines every decrease.
var NeverConfirm = ConfirmFunc(func(context.Context, *Product, float64) (bool, error) {
	return false, nil
})

// SetPrice applies the price policy. Zero, negative and non-finite prices are rejected,
// decreases need confirmation (a nil confirmer declines), anything else is
// applied. The stored price is untouched unless the outcome is Applied.
func (p *Product) SetPrice(ctx context.Context, newPrice float64, confirmer PriceConfirmer) (PriceChange, error) {
	if !validPrice(newPrice) {
		return PriceRejected, nil
	}

	if newPrice < p.price {
		if confirmer == nil {
			return PriceDecreaseDeclined, nil
		}

		ok, err := confirmer.ConfirmPriceDecrease(ctx, p, newPrice)
		if err != nil {
			return PriceDecreaseDeclined, fmt.Errorf("failed to confirm price decrease for %q: %w", p.Name, err)
		}
		if !ok {
			return PriceDecreaseDeclined, nil
		}

		p.price = newPrice
		return PriceDecreased, nil
	}

	if newPrice == p.price {
		return PriceUnchanged, nil
	}

	p.price = newPrice
	return PriceUpdated, nil
}
