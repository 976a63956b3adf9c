package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogetwell/website/domain/faq"
	"github.com/gogetwell/website/domain/features"
)

// newContentCommand loads and validates the embedded copy. It exits non-zero
// when the catalog or the FAQ list is malformed, which makes it usable as a
// CI check.
func newContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Validate and summarise the embedded page content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := features.LoadCatalog()
			if err != nil {
				return fmt.Errorf("features: %w", err)
			}
			entries, err := faq.LoadEntries()
			if err != nil {
				return fmt.Errorf("faq: %w", err)
			}

			out := cmd.OutOrStdout()
			counts := catalog.Counts()
			fmt.Fprintln(out, "Features:")
			for _, cat := range features.Categories {
				fmt.Fprintf(out, "  %-12s %d\n", cat.Label(), counts[cat])
			}
			fmt.Fprintf(out, "FAQ entries: %d\n", len(entries))
			return nil
		},
	}
}
