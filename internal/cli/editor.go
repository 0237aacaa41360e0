package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/spice-catalog/internal/model"
)

// PriceEditor applies price changes and tells the operator what happened.
type PriceEditor struct {
	writer    io.Writer
	confirmer model.PriceConfirmer
}

// NewPriceEditor creates an editor. A nil writer falls back to stdout.
func NewPriceEditor(confirmer model.PriceConfirmer, writer io.Writer) *PriceEditor {
	if writer == nil {
		writer = os.Stdout
	}
	return &PriceEditor{writer: writer, confirmer: confirmer}
}

// SetPrice runs the price policy on p and prints a diagnostic when the
// price is rejected.
func (e *PriceEditor) SetPrice(ctx context.Context, p *model.Product, newPrice float64) (model.PriceChange, error) {
	change, err := p.SetPrice(ctx, newPrice, e.confirmer)
	if err != nil {
		return change, err
	}

	if change == model.PriceRejected {
		if _, err := fmt.Fprintln(e.writer, model.MsgNonPositivePrice); err != nil {
			return change, fmt.Errorf("failed to write diagnostic: %w", err)
		}
	}

	return change, nil
}
