package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/renl/dirinfo/internal/dirinfo"
)

func run(ctx context.Context, opts *flags) error {
	width, err := parseBucket(opts.bucket)
	if err != nil {
		return err
	}

	enableProgress := strings.ToLower(opts.output) != "json" &&
		!opts.debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	var (
		bar          *progressbar.ProgressBar
		progressHook func(entries, bytes int64)
	)

	if enableProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)

		progressHook = func(entries, bytes int64) {
			bar.Describe(fmt.Sprintf("Scanning: %d entries, %s",
				entries, humanize.IBytes(uint64(bytes)))) //nolint:gosec // Bytes is always positive
			_ = bar.Add(0)
		}
	}

	start := time.Now()

	snapshot, err := dirinfo.Walk(ctx, dirinfo.Options{
		Path:        opts.path,
		Concurrency: opts.concurrency,
		Debug:       opts.debug,
	}, progressHook)

	if bar != nil {
		_ = bar.Finish()
	}

	if err != nil {
		return err
	}

	report := buildReport(ctx, snapshot, opts.extensions, width)
	report.Elapsed = time.Since(start)

	switch strings.ToLower(opts.output) {
	case "json":
		return PrintJSON(report, os.Stdout)
	case "table":
		return PrintTable(report, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", opts.output)
	}
}
