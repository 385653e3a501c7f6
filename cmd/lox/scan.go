package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lox/internal/diag"
	"lox/internal/diagfmt"
	"lox/internal/driver"
	"lox/internal/observ"
	"lox/internal/source"
	"lox/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] dir",
	Short: "Tokenize every *.lox file under a directory",
	Long:  `Scan walks a directory tree, tokenizes all *.lox files in parallel and reports diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "diagnostics output format (pretty|json)")
	scanCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	scanCmd.Flags().Bool("no-ui", false, "disable the interactive progress view")
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := args[0]

	settings, err := resolveSettings(cmd, dir)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noUI, _ := cmd.Flags().GetBool("no-ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	timer := observ.NewTimer()
	phase := timer.Begin("scan")

	req := driver.DirRequest{
		Dir:            dir,
		MaxDiagnostics: settings.MaxDiagnostics,
		Jobs:           jobs,
	}

	var fileSet *source.FileSet
	var results []driver.TokenizeDirResult
	if !noUI && !quiet && isTerminal(os.Stdout) {
		fileSet, results, err = runScanWithUI(cmd.Context(), req)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), req)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))

	phase = timer.Begin("report")
	totalTokens := 0
	filesWithErrors := 0
	merged := diag.NewBag(0) // Merge подгоняет лимит под содержимое
	for _, r := range results {
		totalTokens += len(r.Tokens)
		if r.Bag.HasErrors() {
			filesWithErrors++
		}
		merged.Merge(r.Bag)
	}
	merged.Sort()

	if merged.Len() > 0 {
		switch settings.Format {
		case "json":
			if err := diagfmt.DiagnosticsJSON(os.Stdout, merged, fileSet); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(os.Stderr, merged, fileSet, diagfmt.PrettyOpts{
				Color:     useColor(settings.Color, os.Stderr),
				Context:   2,
				ShowNotes: true,
			})
		}
	}
	timer.End(phase, "")

	if !quiet {
		fmt.Fprintf(os.Stdout, "scanned %d files, %d tokens\n", len(results), totalTokens)
	}
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if filesWithErrors > 0 {
		return fmt.Errorf("%d of %d files had errors", filesWithErrors, len(results))
	}
	return nil
}

type scanOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runScanWithUI запускает TokenizeDir в фоне и рисует прогресс через Bubble Tea.
func runScanWithUI(ctx context.Context, req driver.DirRequest) (*source.FileSet, []driver.TokenizeDirResult, error) {
	files, err := driver.ListSourceFiles(req.Dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return driver.TokenizeDir(ctx, req)
	}

	events := make(chan driver.ScanEvent, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeDir(ctx, reqCopy)
		outcomeCh <- scanOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("scanning "+req.Dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
