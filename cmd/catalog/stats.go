package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog counters",
		Long:  `Load the catalog and report how many categories were constructed and how many products were added.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, counters, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer func() {
				if err := w.Flush(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}()

			fmt.Fprintf(w, "Categories\t%d\n", counters.Categories())
			fmt.Fprintf(w, "Products\t%d\n", counters.Products())
			for _, category := range categories {
				fmt.Fprintf(w, "  %s\t%d\n", category.Name, len(category.Products()))
			}

			return nil
		},
	}
}
