package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crimson206/func-analyzer/internal/analyzer"
	"github.com/crimson206/func-analyzer/pkg/docstring"
)

func newAnalyzeCommand() *cobra.Command {
	var config AnalyzeConfig

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate parameter schemas from Go source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunAnalyze(&config, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config.SourcePath, "source", ".", "Directory containing Go source code")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.Style, "style", "auto", "Docstring style: google, numpy, sphinx or auto")
	cmd.Flags().StringVar(&config.Format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .funcanalyzer.yml config file")

	return cmd
}

// AnalyzeConfig holds configuration for source analysis.
type AnalyzeConfig struct {
	SourcePath string `validate:"required"`
	OutputPath string `validate:"required"`
	Style      string `validate:"oneof=google numpy sphinx auto"`
	Format     string `validate:"oneof=json yaml yml"`
	ConfigPath string
}

var validate = validator.New()

// RunAnalyze generates a schema report based on the provided configuration.
func RunAnalyze(config *AnalyzeConfig, stdout io.Writer) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	style, err := docstring.ParseStyle(config.Style)
	if err != nil {
		return err
	}

	report, err := analyzer.New(style).AnalyzeDirectory(config.SourcePath)
	if err != nil {
		return err
	}

	return writeReport(report, config, stdout)
}

func loadConfigFile(config *AnalyzeConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Analyze struct {
			Source string `yaml:"source"`
			Output string `yaml:"output"`
			Style  string `yaml:"style"`
			Format string `yaml:"format"`
		} `yaml:"analyze"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values where flags kept their defaults
	if config.SourcePath == "." && cfg.Analyze.Source != "" {
		config.SourcePath = cfg.Analyze.Source
	}
	if config.OutputPath == "-" && cfg.Analyze.Output != "" {
		config.OutputPath = cfg.Analyze.Output
	}
	if config.Style == "auto" && cfg.Analyze.Style != "" {
		config.Style = cfg.Analyze.Style
	}
	if config.Format == "json" && cfg.Analyze.Format != "" {
		config.Format = cfg.Analyze.Format
	}

	return nil
}

func writeReport(report *analyzer.Report, config *AnalyzeConfig, stdout io.Writer) error {
	if config.OutputPath == "-" {
		return writeFormatted(stdout, config.Format, report)
	}

	f, err := os.Create(config.OutputPath) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return writeFormatted(f, config.Format, report)
}
