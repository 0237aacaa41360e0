package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/spice-catalog/internal/model"
)

// Affirmative is the only answer that confirms a price decrease.
const Affirmative = "y"

// ErrInputTerminated is returned when input ends before an answer is read.
var ErrInputTerminated = errors.New("input terminated")

// Confirmer asks the operator to confirm price decreases on a terminal.
type Confirmer struct {
	writer io.Writer
	reader *NonBlockingReader
}

// NewConfirmer creates a confirmer reading answers from reader and writing
// prompts to writer. Nil arguments fall back to stdin and stdout.
func NewConfirmer(reader io.Reader, writer io.Writer) *Confirmer {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Confirmer{
		writer: writer,
		reader: NewNonBlockingReader(reader),
	}
}

// ConfirmPriceDecrease prints the prompt and reads one line.
// Only the exact answer "y" confirms.
func (c *Confirmer) ConfirmPriceDecrease(ctx context.Context, p *model.Product, newPrice float64) (bool, error) {
	if _, err := fmt.Fprint(c.writer, model.MsgDecreasePrompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := c.reader.ReadRawLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, ErrInputTerminated
		}
		return false, err
	}

	slog.Debug("Price decrease answer",
		"product", p.Name,
		"current_price", p.Price(),
		"new_price", newPrice,
		"confirmed", answer == Affirmative)

	return answer == Affirmative, nil
}
