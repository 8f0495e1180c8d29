// Package main runs the transfer browser against generated data, without
// network access.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/Veraticus/transfers/internal/clipboard"
	"github.com/Veraticus/transfers/internal/fetch"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/store"
	"github.com/Veraticus/transfers/internal/testutil"
	"github.com/Veraticus/transfers/internal/tui"
	"github.com/Veraticus/transfers/internal/tui/themes"
	flag "github.com/spf13/pflag"
)

var errDemoFailure = errors.New("simulated network failure")

func main() {
	count := flag.Int("count", 100, "number of generated transfers")
	delay := flag.Duration("delay", time.Second, "simulated fetch latency")
	failFirst := flag.Bool("fail-first", false, "fail the first fetch to show the error screen")
	ascii := flag.Bool("ascii", false, "use ASCII icons")
	flag.Parse()

	transfers := testutil.NewTransferBuilder().
		WithTransfer(testutil.Transfer("FT-UNDATED", "Tanpa Tanggal").RawCreatedAt("unknown")).
		WithGenerated(*count).
		Build()

	mock := fetch.NewMockClient(transfers)
	var attempts atomic.Int32
	mock.FetchFn = func(ctx context.Context) ([]model.Transaction, error) {
		attempt := attempts.Add(1)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(*delay):
		}
		if *failFirst && attempt == 1 {
			return nil, errDemoFailure
		}
		return transfers, nil
	}

	icons := themes.UnicodeIcons
	if *ascii {
		icons = themes.ASCIIIcons
	}

	err := tui.Run(context.Background(),
		tui.WithSource(store.New(mock)),
		tui.WithClipboard(clipboard.NewSystem()),
		tui.WithIcons(icons),
		tui.WithAltScreen(true),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
