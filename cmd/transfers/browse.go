package main

import (
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/store"
	"github.com/Veraticus/transfers/internal/tui"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/spf13/cobra"
)

func browseCmd(a *app) *cobra.Command {
	var (
		query     string
		sort      string
		record    bool
		recordDir string
		noAlt     bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse transfers interactively",
		Long: `Open the full-screen transfer browser.

Keys: / search, s sort, enter detail, c copy id, r refresh, ? help, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := a.settings.UI.SortMode
			if sort != "" {
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

			opts := []tui.Option{
				tui.WithSource(store.New(a.newFetcher())),
				tui.WithClipboard(a.clipboard),
				tui.WithTheme(themes.GetTheme(a.settings.UI.Theme)),
				tui.WithIcons(icons),
				tui.WithSortMode(mode),
				tui.WithQuery(query),
				tui.WithAltScreen(!noAlt),
			}

			if record {
				recorder, err := tui.NewRecorder(recordDir)
				if err != nil {
					return err
				}
				cmd.PrintErrf("Recording TUI frames to %s\n", recorder.Dir())
				opts = append(opts, tui.WithRecorder(recorder))
			}

			return tui.Run(cmd.Context(), opts...)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "initial search query")
	cmd.Flags().StringVar(&sort, "sort", "", "initial sort (none, name-asc, name-desc, date-desc, date-asc)")
	cmd.Flags().BoolVar(&record, "record", false, "record every frame for debugging")
	cmd.Flags().StringVar(&recordDir, "record-dir", "", "directory for recorded frames (default: a temp dir)")
	cmd.Flags().BoolVar(&noAlt, "no-alt-screen", false, "render inline instead of taking over the terminal")

	return cmd
}
