package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Scanner scannerConfig `toml:"scanner"`
	Output  outputConfig  `toml:"output"`
}

type scannerConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// findLoxToml ищет lox.toml вверх по дереву директорий от startDir.
func findLoxToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lox.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest загружает lox.toml, если он есть. Все секции опциональны.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLoxToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if meta.IsDefined("output", "format") {
		switch cfg.Output.Format {
		case "pretty", "json":
		default:
			return nil, true, fmt.Errorf("%s: [output].format must be pretty or json", manifestPath)
		}
	}
	if meta.IsDefined("output", "color") {
		switch cfg.Output.Color {
		case "auto", "on", "off":
		default:
			return nil, true, fmt.Errorf("%s: [output].color must be auto, on or off", manifestPath)
		}
	}
	if meta.IsDefined("scanner", "max_diagnostics") && cfg.Scanner.MaxDiagnostics < 0 {
		return nil, true, fmt.Errorf("%s: [scanner].max_diagnostics must be non-negative", manifestPath)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// effectiveSettings — слияние: явный флаг > lox.toml > значение по умолчанию.
type effectiveSettings struct {
	Format         string
	Color          string
	MaxDiagnostics int
}

func resolveSettings(cmd *cobra.Command, startDir string) (effectiveSettings, error) {
	s := effectiveSettings{Format: "pretty"}

	s.Color, _ = cmd.Root().PersistentFlags().GetString("color")
	s.MaxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if f := cmd.Flags().Lookup("format"); f != nil {
		s.Format = f.Value.String()
	}

	manifest, ok, err := loadProjectManifest(startDir)
	if err != nil {
		return s, err
	}
	if !ok {
		return s, nil
	}

	if manifest.Config.Output.Format != "" && !cmd.Flags().Changed("format") {
		s.Format = manifest.Config.Output.Format
	}
	if manifest.Config.Output.Color != "" && !cmd.Root().PersistentFlags().Changed("color") {
		s.Color = manifest.Config.Output.Color
	}
	if manifest.Config.Scanner.MaxDiagnostics > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		s.MaxDiagnostics = manifest.Config.Scanner.MaxDiagnostics
	}
	return s, nil
}

// useColor применяет политику --color к конкретному потоку вывода.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
