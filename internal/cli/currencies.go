package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depgraph/pkg/currency"
)

// newCurrenciesCmd creates the currencies command for listing the supported
// denomination catalogs.
func newCurrenciesCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies and their denominations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrencies(code)
		},
	}

	cmd.Flags().StringVarP(&code, "currency", "c", "", "show a single currency")

	return cmd
}

// runCurrencies prints the denomination catalog for one or all currencies.
func runCurrencies(code string) error {
	kinds := currency.All
	if code != "" {
		kind, ok := currency.Find(code)
		if !ok {
			return fmt.Errorf("unknown currency: %s (available: %s)", code, kindList())
		}
		kinds = []currency.Kind{kind}
	}

	for i, kind := range kinds {
		if i > 0 {
			printNewline()
		}
		printInfo("%s (%s)", StyleHighlight.Render(kind.Name()), kind)
		for _, d := range kind.Denominations() {
			printDetail("%-24s %10.2f", d.Label, d.Value)
		}
	}
	return nil
}
