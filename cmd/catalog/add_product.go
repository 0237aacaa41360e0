package main

import (
	"fmt"

	"github.com/Veraticus/spice-catalog/internal/cli"
	"github.com/Veraticus/spice-catalog/internal/model"
	"github.com/spf13/cobra"
)

func addProductCmd() *cobra.Command {
	var (
		name        string
		description string
		price       float64
		quantity    int
	)

	cmd := &cobra.Command{
		Use:   "add-product <category>",
		Short: "Add a product to a category",
		Long: `Append a product to a category of the loaded catalog and show the result.
Nothing is written back to the catalog file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := model.NewProduct(name, description, price, quantity)
			if err != nil {
				return fmt.Errorf("invalid product: %w", err)
			}

			categories, counters, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			category, err := findCategory(categories, args[0])
			if err != nil {
				return err
			}
			category.AddProduct(product)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %q to %s", product.Name, category.Name)))
			fmt.Fprintln(out, cli.RenderCategory(category.Name, category.Description, category.DisplayProducts()))
			fmt.Fprintf(out, "Categories: %d, products: %d\n", counters.Categories(), counters.Products())

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&description, "description", "", "Product description")
	cmd.Flags().Float64Var(&price, "price", 0, "Product price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Quantity in stock")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
