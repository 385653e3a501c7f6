package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lox/internal/diagfmt"
	"lox/internal/driver"
	"lox/internal/token"
	"lox/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive token prompt",
	Long:  `Repl reads lines from the terminal and prints their tokens and diagnostics`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, ".")
	if err != nil {
		return err
	}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		model := ui.NewReplModel(settings.MaxDiagnostics)
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
		_, err := program.Run()
		return err
	}

	// stdin не терминал (pipe, тест) — построчный режим без TUI
	return runPlainRepl(os.Stdin, settings)
}

func runPlainRepl(in *os.File, settings effectiveSettings) error {
	scanner := bufio.NewScanner(in)
	opts := diagfmt.PrettyOpts{
		Color:     useColor(settings.Color, os.Stderr),
		Context:   1,
		ShowNotes: true,
	}

	lineNo := 1
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name := fmt.Sprintf("repl:%d", lineNo)
		res := driver.TokenizeSource(name, []byte(line), settings.MaxDiagnostics)

		for _, tok := range res.Tokens {
			if tok.Kind == token.EOF {
				break
			}
			if tok.Lexeme != "" {
				fmt.Fprintf(os.Stdout, "%s %q\n", tok.Kind, tok.Lexeme)
			} else {
				fmt.Fprintf(os.Stdout, "%s\n", tok.Kind)
			}
		}
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
		}
		lineNo++
	}
	return scanner.Err()
}
