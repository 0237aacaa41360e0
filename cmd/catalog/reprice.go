package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/spice-catalog/internal/cli"
	"github.com/Veraticus/spice-catalog/internal/model"
	"github.com/spf13/cobra"
)

func repriceCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reprice <category> <product> <price>",
		Short: "Change a product's price",
		Long: `Apply a new price to a product in the loaded catalog. Lowering a price asks
for confirmation; zero or negative prices are refused. Nothing is written back
to the catalog file.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			newPrice, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[2], err)
			}

			categories, _, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			category, err := findCategory(categories, args[0])
			if err != nil {
				return err
			}
			product := category.FindProduct(args[1])
			if product == nil {
				return fmt.Errorf("product %q not found in category %q", args[1], category.Name)
			}

			out := cmd.OutOrStdout()

			var confirmer model.PriceConfirmer = cli.NewConfirmer(cmd.InOrStdin(), out)
			if assumeYes {
				confirmer = model.AlwaysConfirm
			}

			interrupts := cli.NewInterruptHandler(out)
			ctx, stop := interrupts.HandleInterrupts(cmd.Context())
			defer stop()

			oldPrice := product.Price()
			change, err := cli.NewPriceEditor(confirmer, out).SetPrice(ctx, product, newPrice)
			if err != nil {
				return interrupts.Err(err)
			}

			switch change {
			case model.PriceUpdated, model.PriceDecreased:
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Price changed from %s to %s",
					model.FormatPrice(oldPrice), model.FormatPrice(product.Price()))))
			case model.PriceUnchanged:
				fmt.Fprintln(out, cli.FormatInfo("Price is already "+model.FormatPrice(oldPrice)))
			case model.PriceDecreaseDeclined:
				fmt.Fprintln(out, cli.FormatWarning("Price left at "+model.FormatPrice(oldPrice)))
			case model.PriceRejected:
				// The editor already printed the diagnostic.
			}
			fmt.Fprintln(out, product.String())

			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Confirm price decreases without asking")

	return cmd
}
