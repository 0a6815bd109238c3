package cmd

import (
	"fmt"

	"stock-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Download the supplier feed and print a summary",
	Long:  `Fetches and parses the supplier price list without contacting any marketplace.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, err := loadBootstrap()
		if err != nil {
			return err
		}
		defer b.logger.Sync()

		store, err := b.storageClient(ctx)
		if err != nil {
			return err
		}
		loader, err := b.feedLoader(store)
		if err != nil {
			return err
		}

		rows, err := loader.Load(ctx)
		if err != nil {
			return err
		}

		summary := summarizeFeed(rows)
		b.logger.Debug("Feed summarized", zap.Int("rows", summary.Rows))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n--- Supplier Feed ---")
		fmt.Fprintf(out, "Rows:            %d\n", summary.Rows)
		fmt.Fprintf(out, "Distinct codes:  %d\n", summary.Codes)
		fmt.Fprintf(out, "In stock:        %d\n", summary.InStock)
		fmt.Fprintf(out, "Bad quantities:  %d\n", summary.BadQuantities)
		fmt.Fprintf(out, "Without price:   %d\n", summary.WithoutPrice)
		fmt.Fprintln(out, "---------------------")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(feedCmd)
}

type feedSummary struct {
	Rows          int
	Codes         int
	InStock       int
	BadQuantities int
	WithoutPrice  int
}

func summarizeFeed(rows []reconcile.SupplierRow) feedSummary {
	s := feedSummary{Rows: len(rows)}
	codes := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		codes[row.Code] = struct{}{}

		qty, err := reconcile.ResolveQuantity(row.Quantity)
		switch {
		case err != nil:
			s.BadQuantities++
		case qty > 0:
			s.InStock++
		}

		if reconcile.NormalizePrice(row.Price) == "" {
			s.WithoutPrice++
		}
	}
	s.Codes = len(codes)
	return s
}
