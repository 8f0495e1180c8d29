package main

import (
	"fmt"

	"github.com/Veraticus/transfers/internal/cli"
	"github.com/Veraticus/transfers/internal/common"
	"github.com/spf13/cobra"
)

func showCmd(a *app) *cobra.Command {
	var copyID bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the details of one transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			icons, err := a.icons()
			if err != nil {
				return err
			}
			printer := cli.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), icons)

			state, err := a.fetchOnce(cmd.Context(), printer)
			if err != nil {
				return err
			}

			tx, err := findTransaction(state.Items, args[0])
			if err != nil {
				return err
			}
			if err := printer.PrintDetail(tx); err != nil {
				return err
			}

			if copyID {
				if err := a.clipboard.WriteAll(tx.ID); err != nil {
					return common.NewUserError("Gagal menyalin", fmt.Errorf("copy %s: %w", tx.ID, err))
				}
				printer.Success("Copied to Clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyID, "copy", "c", false, "copy the transfer id to the clipboard")

	return cmd
}
