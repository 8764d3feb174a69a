package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depgraph/pkg/currency"
)

// decomposeOpts holds the command-line flags for the decompose command.
type decomposeOpts struct {
	code string // currency code (interactive selection if empty)
}

// newDecomposeCmd creates the decompose command for breaking amounts into
// bills and coins.
func newDecomposeCmd() *cobra.Command {
	opts := decomposeOpts{}

	cmd := &cobra.Command{
		Use:   "decompose <amount>",
		Short: "Break an amount into bills and coins",
		Long: `Break a monetary amount into the largest possible bills and coins.

The amount is decomposed greedily, largest denomination first. Any part of
the amount smaller than the smallest denomination is reported as remainder.

Examples:
  depgraph decompose 1886.85 -c MXN
  depgraph decompose 3776 --currency JPY
  depgraph decompose 188.88                # interactive currency selection`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %s", args[0])
			}
			return runDecompose(cmd.Context(), amount, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.code, "currency", "c", "", "currency code: MXN, JPY, CNY (interactive if omitted)")

	return cmd
}

// runDecompose resolves the currency, decomposes the amount, and prints the result.
func runDecompose(ctx context.Context, amount float64, opts *decomposeOpts) error {
	logger := loggerFromContext(ctx)

	kind, ok, err := pickCurrency(opts.code)
	if err != nil {
		return err
	}
	if !ok {
		printDetail("No selection made")
		return nil
	}
	logger.Debugf("Decomposing %.2f %s", amount, kind)

	parts, remainder, err := currency.Decompose(amount, kind)
	if err != nil {
		return err
	}

	printKeyValue("Amount", fmt.Sprintf("%.2f %s", amount, kind))
	fmt.Println(partsTable(parts))
	if remainder > 0 {
		printWarning("%.2f cannot be represented with the available denominations", remainder)
	}
	return nil
}

// pickCurrency resolves code to a currency kind. If code is empty, it shows
// an interactive picker. The second return value is false when the user quit
// the picker without selecting.
func pickCurrency(code string) (currency.Kind, bool, error) {
	if code != "" {
		kind, ok := currency.Find(code)
		if !ok {
			return "", false, fmt.Errorf("unknown currency: %s (available: %s)", code, kindList())
		}
		return kind, true, nil
	}

	p := tea.NewProgram(NewCurrencyListModel(currency.All))
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	fm, ok := finalModel.(CurrencyListModel)
	if !ok || fm.Selected == nil {
		return "", false, nil
	}
	return *fm.Selected, true, nil
}

// kindList formats the supported currency codes for error messages.
func kindList() string {
	codes := make([]string, len(currency.All))
	for i, k := range currency.All {
		codes[i] = string(k)
	}
	return strings.Join(codes, ", ")
}

// partsTable renders the decomposition as a bordered table with a totals row.
func partsTable(parts []currency.Part) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	var total float64
	var count int64
	for _, p := range parts {
		rows = append(rows, []string{
			p.Label,
			fmt.Sprintf("%.2f", p.Value),
			fmt.Sprintf("%d", p.Count),
			fmt.Sprintf("%.2f", p.Subtotal()),
		})
		total += p.Subtotal()
		count += p.Count
	}
	rows = append(rows, []string{"total", "", fmt.Sprintf("%d", count), fmt.Sprintf("%.2f", total)})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Denomination", "Unit", "Count", "Subtotal").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == len(rows)-1 {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	return t.Render()
}
