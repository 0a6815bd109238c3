package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stock-sync/core/logger"
	"stock-sync/core/syncerr"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "stock-sync",
	Short: "Supplier stock and price sync",
	Long: `Stock Sync downloads the supplier price list and pushes stock levels
and prices to the Ozon and Yandex Market seller APIs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with a code derived from the error kind.
// An interrupt cancels the command context so a running sync stops between requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console format with ISO8601 timestamps for operators reading a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed",
				zap.String("kind", syncerr.KindOf(err).String()),
				zap.Error(err),
			)
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(syncerr.ExitCode(err))
	}
}
