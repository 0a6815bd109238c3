package cmd

import (
	"fmt"
	"text/tabwriter"

	"stock-sync/core/syncerr"

	"github.com/spf13/cobra"
)

var limitFlag int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journalled sync passes",
	Long:  `Prints the most recent sync passes recorded in the run journal, newest first. Requires DATABASE_ENABLED.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, err := loadBootstrap()
		if err != nil {
			return err
		}
		defer b.logger.Sync()

		journal, err := b.journal(ctx)
		if err != nil {
			return err
		}
		if journal == nil {
			return syncerr.InvalidArgument("history", "the run journal is disabled (set DATABASE_ENABLED=true)")
		}

		runs, err := journal.Recent(ctx, b.cfg.Server.ClampLimit(limitFlag))
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tTARGET\tTRIGGER\tDRY RUN\tSTATUS\tSTOCKS\tPRICES\tERROR")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\t%d/%d\t%d/%d\t%s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Target,
				r.TriggeredBy,
				r.DryRun,
				r.Status,
				r.StockAccepted, r.StockRecords,
				r.PriceAccepted, r.PriceRecords,
				r.ErrorKind,
			)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of runs to list")
	RootCmd.AddCommand(historyCmd)
}
