package main

import (
	"fmt"

	"github.com/Veraticus/spice-catalog/internal/catalog"
	"github.com/Veraticus/spice-catalog/internal/cli"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List categories and their products",
		Long:  `Load the catalog and print every category with its products in document order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []catalog.Option
			if showProgress {
				progress := cli.NewLoadProgress(cmd.ErrOrStderr())
				defer progress.Finish()
				opts = append(opts, catalog.WithProgress(progress.Update))
			}

			categories, _, err := loadCatalog(cmd.Context(), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(categories) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("The catalog is empty."))
				return nil
			}

			for _, category := range categories {
				fmt.Fprintln(out, cli.RenderCategory(category.String(), category.Description, category.DisplayProducts()))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar while loading")

	return cmd
}
