package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"country-currency/feature/summary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipSummary bool

// refreshCmd runs one reconciliation cycle without starting the server.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch countries and exchange rates and reconcile the store",
	Long: `Fetches RestCountries and the latest USD exchange rates, then inserts or
updates every country. Prints the refresh result as JSON.

Examples:
  # Refresh and regenerate the summary image
  refresh

  # Refresh only
  refresh --skip-summary`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().BoolVar(&skipSummary, "skip-summary", false, "Do not regenerate the summary image")
	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	// No worker runs in the CLI, so the summary is generated inline.
	publisher := summary.Discard
	if c.reporter != nil && !skipSummary {
		publisher = summary.PublisherFunc(func(e summary.Event) bool {
			if err := c.reporter.Generate(ctx, e); err != nil {
				c.logger.Warn("Summary generation failed", zap.Error(err))
				return false
			}
			return true
		})
	}

	res, err := c.engine(publisher).Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	out := json.NewEncoder(cmd.OutOrStdout())
	out.SetIndent("", "  ")
	return out.Encode(res)
}
