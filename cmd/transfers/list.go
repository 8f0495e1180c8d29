package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/transfers/internal/cli"
	"github.com/Veraticus/transfers/internal/common"
	"github.com/Veraticus/transfers/internal/engine"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/store"
	"github.com/Veraticus/transfers/internal/tui"
	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	var (
		query        string
		sort         string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the transfer list",
		Long: `Fetch the transfer list once and print it, filtered by --query and
ordered by --sort. The query matches beneficiary name, either bank, or the
amount.`,
		Example: `  transfers list --query bca --sort date-desc
  transfers list --format json | jq '.[0]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := a.settings.UI.SortMode
			if cmd.Flags().Changed("sort") {
				parsed, err := model.ParseSortMode(sort)
				if err != nil {
					return err
				}
				mode = parsed
			}

			icons, err := a.icons()
			if err != nil {
				return err
			}
			printer := cli.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), icons)

			state, err := a.fetchOnce(cmd.Context(), printer)
			if err != nil {
				return err
			}

			items := engine.Apply(state.Items, query, mode)
			return printer.Print(items, len(state.Items), outputFormat)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search query")
	cmd.Flags().StringVar(&sort, "sort", "", "sort (none, name-asc, name-desc, date-desc, date-asc)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", cli.FormatTable, "output format (table, json)")

	return cmd
}

// fetchOnce runs a single fetch through the store with a spinner on stderr.
// Ctrl-C cancels the request.
func (a *app) fetchOnce(ctx context.Context, printer *cli.Printer) (store.FetchState, error) {
	ctx, stop := cli.NewInterruptHandler(nil).HandleInterrupts(ctx)
	defer stop()

	s := store.New(a.newFetcher())
	spinner := printer.StartSpinner("Memuat transaksi...")
	state := s.Fetch(ctx)
	spinner.Stop()

	if state.Status == store.StatusFailed {
		common.LogError(state.Err, "Fetch failed", common.Fields{"endpoint": a.settings.API.Endpoint})
		return state, common.NewUserError(tui.ErrorMessage, state.Err)
	}
	return state, nil
}

// findTransaction returns the transfer with id.
func findTransaction(items []model.Transaction, id string) (model.Transaction, error) {
	for _, tx := range items {
		if tx.ID == id {
			return tx, nil
		}
	}
	return model.Transaction{}, common.NewUserError(
		fmt.Sprintf("Transaksi #%s tidak ditemukan", id),
		fmt.Errorf("transaction %s: %w", id, common.ErrNotFound),
	)
}
