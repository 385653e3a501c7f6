package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lox/internal/diagfmt"
	"lox/internal/driver"
	"lox/internal/observ"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lox",
	Short: "Tokenize a lox source file",
	Long:  `Tokenize breaks down a lox source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams keyed by file content")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	settings, err := resolveSettings(cmd, filepath.Dir(filePath))
	if err != nil {
		return err
	}

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	timer := observ.NewTimer()

	// Выполняем токенизацию
	phase := timer.Begin("tokenize")
	var result *driver.TokenizeResult
	var cached bool
	if useCache {
		cache, cacheErr := driver.OpenTokenCache("lox")
		if cacheErr != nil {
			return fmt.Errorf("failed to open token cache: %w", cacheErr)
		}
		result, cached, err = driver.TokenizeWithCache(cache, filePath, settings.MaxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, settings.MaxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	note := ""
	if cached {
		note = "cache hit"
	}
	timer.End(phase, note)

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:     useColor(settings.Color, os.Stderr),
			Context:   2,
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	phase = timer.Begin("report")
	switch settings.Format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", settings.Format)
	}
	timer.End(phase, "")
	if err != nil {
		return err
	}

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}
