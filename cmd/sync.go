package cmd

import (
	"fmt"
	"time"

	"stock-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunFlag bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [all|ozon|yandex]",
	Short: "Push supplier stocks and prices to the marketplaces",
	Long: `Downloads the supplier feed once and reconciles it against every selected marketplace.
Yandex Market runs the FBS scheme before DBS; a failing scheme ends that marketplace's pass
while the other marketplace still runs. The exit code reflects the first failure.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{inventory.TargetAll, inventory.TargetOzon, inventory.TargetYandex},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := inventory.TargetAll
		if len(args) == 1 {
			target = args[0]
		}
		return runSync(cmd, target)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Reconcile without submitting anything")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, target string) error {
	ctx := cmd.Context()

	b, err := loadBootstrap()
	if err != nil {
		return err
	}
	defer b.logger.Sync()

	svc, err := b.service(ctx, requiredFor(b.cfg, target))
	if err != nil {
		return err
	}

	b.logger.Info("Starting sync", zap.String("target", target), zap.Bool("dry_run", dryRunFlag))
	report, err := svc.Sync(ctx, target, inventory.Options{DryRun: dryRunFlag, TriggeredBy: inventory.TriggerCLI})
	if report != nil {
		printReport(cmd, report)
	}
	return err
}

func printReport(cmd *cobra.Command, r *inventory.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\n--- Sync Report ---")
	fmt.Fprintf(out, "ID:        %s\n", r.ID)
	fmt.Fprintf(out, "Target:    %s\n", r.Target)
	fmt.Fprintf(out, "Dry run:   %v\n", r.DryRun)
	fmt.Fprintf(out, "Feed rows: %d\n", r.FeedRows)
	fmt.Fprintf(out, "Duration:  %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))

	for _, p := range r.Passes {
		s := p.Summary
		fmt.Fprintln(out, "-------------------")
		fmt.Fprintf(out, "%-10s %s\n", p.Adapter, p.Status)
		fmt.Fprintf(out, "  identifiers: %d\n", s.Identifiers)
		fmt.Fprintf(out, "  stocks:      %d records (%d non-zero) in %d batches, %d accepted, %d rejected\n",
			s.StockRecords, s.NonZeroStocks, s.StockBatches, s.StockAck.Accepted, s.StockAck.Rejected)
		fmt.Fprintf(out, "  prices:      %d records in %d batches, %d accepted, %d rejected\n",
			s.PriceRecords, s.PriceBatches, s.PriceAck.Accepted, s.PriceAck.Rejected)
		if p.Error != "" {
			fmt.Fprintf(out, "  error:       [%s] %s\n", p.ErrorKind, p.Error)
		}
	}

	for _, name := range r.Skipped {
		fmt.Fprintf(out, "%-10s skipped\n", name)
	}
	if r.ReportKey != "" {
		fmt.Fprintf(out, "Archived:  %s\n", r.ReportKey)
	}
	fmt.Fprintln(out, "-------------------")
}
