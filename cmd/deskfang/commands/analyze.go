// Package commands implements CLI command handlers for deskfang.
package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/deskfang/pkg/analysis"
	"github.com/Sumatoshi-tech/deskfang/pkg/config"
	"github.com/Sumatoshi-tech/deskfang/pkg/export"
	"github.com/Sumatoshi-tech/deskfang/pkg/observability"
	"github.com/Sumatoshi-tech/deskfang/pkg/persist"
	"github.com/Sumatoshi-tech/deskfang/pkg/report"
)

// resultBasename is the analysis result file name without extension.
const resultBasename = "analysis_results"

// Flag names for the analyze command.
const (
	flagConfig  = "config"
	flagSamples = "samples"
	flagSource  = "source"
	flagOutput  = "output"
	flagLogDir  = "log-dir"
	flagFormat  = "format"
	flagRate    = "rate"
	flagPlot    = "plot"
	flagNoColor = "no-color"
)

// AnalyzeCommand holds the flags for the analyze command.
type AnalyzeCommand struct {
	configPath string
	sourceDir  string
	outputDir  string
	logDir     string
	format     string
	rate       int
	samples    bool
	plot       bool
	noColor    bool
}

// NewAnalyzeCommand creates and configures the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	ac := &AnalyzeCommand{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a support dump and write the migration summary",
		Long: `Analyze reads tickets.xml, users.xml and organizations.xml from the dump
directory, aggregates their statistics in one pass and writes the result as
analysis_results.json into a mapping directory sibling to the source.`,
		RunE: ac.Run,
	}

	cmd.Flags().StringVar(&ac.configPath, flagConfig, "", "path to config file")
	cmd.Flags().BoolVar(&ac.samples, flagSamples, false, "analyze the bundled sample data")
	cmd.Flags().StringVarP(&ac.sourceDir, flagSource, "s", "", "dump directory (overrides DESKFANG_SOURCE_DIR)")
	cmd.Flags().StringVarP(&ac.outputDir, flagOutput, "o", "", "output directory (default: mapping sibling of source)")
	cmd.Flags().StringVar(&ac.logDir, flagLogDir, "", "log directory")
	cmd.Flags().StringVarP(&ac.format, flagFormat, "f", "", "output format: json or yaml")
	cmd.Flags().IntVar(&ac.rate, flagRate, 0, "migration API requests per minute")
	cmd.Flags().BoolVar(&ac.plot, flagPlot, false, "also write HTML distribution charts")
	cmd.Flags().BoolVar(&ac.noColor, flagNoColor, false, "disable colored output")

	return cmd
}

// Run executes the analyze command.
func (ac *AnalyzeCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := ac.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := observability.New(observability.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Dir:    cfg.Logging.Dir,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	sourceDir := cfg.SourceDir()
	logger.Info("reading export", "dir", sourceDir)

	dump, readErr := export.ReadDump(sourceDir)
	if readErr != nil {
		logger.Error("reading export failed", "err", readErr)

		return readErr
	}

	result, runErr := analysis.Run(dump, cfg.Migration.RequestsPerMinute)
	if runErr != nil {
		logger.Error("analysis failed", "err", runErr)

		return runErr
	}

	mappingDir := cfg.MappingDir()

	writeErr := writeResult(mappingDir, cfg.Output.Format, result)
	if writeErr != nil {
		logger.Error("writing result failed", "err", writeErr)

		return writeErr
	}

	report.WriteSummary(cmd.OutOrStdout(), result, ac.noColor)

	if ac.plot {
		path, plotErr := report.WriteCharts(mappingDir, result)
		if plotErr != nil {
			logger.Error("writing charts failed", "err", plotErr)

			return plotErr
		}

		logger.Info("charts written", "path", path)
	}

	logger.Info("analysis written",
		"dir", mappingDir,
		"tickets", result.Tickets.Total,
		"users", result.Users.Total,
		"organizations", result.Organizations.Total,
		"estimated_minutes", result.EstimatedTimeMinutes,
	)

	return nil
}

// loadConfig loads the configuration and applies explicit flag overrides.
func (ac *AnalyzeCommand) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(ac.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed(flagSamples) {
		cfg.Source.Samples = ac.samples
	}

	if flags.Changed(flagSource) {
		cfg.Source.Dir = ac.sourceDir
	}

	if flags.Changed(flagOutput) {
		cfg.Output.Dir = ac.outputDir
	}

	if flags.Changed(flagLogDir) {
		cfg.Logging.Dir = ac.logDir
	}

	if flags.Changed(flagFormat) {
		cfg.Output.Format = ac.format
	}

	if flags.Changed(flagRate) {
		cfg.Migration.RequestsPerMinute = ac.rate
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// writeResult persists the analysis result, checking JSON output against the
// report schema before anything touches disk.
func writeResult(dir, format string, result *analysis.Analysis) error {
	if format == "yaml" {
		return persist.SaveResult(dir, resultBasename, persist.NewYAMLCodec(), result)
	}

	codec := persist.NewJSONCodec()

	var buf bytes.Buffer

	encodeErr := codec.Encode(&buf, result)
	if encodeErr != nil {
		return encodeErr
	}

	validateErr := analysis.ValidateReport(buf.Bytes())
	if validateErr != nil {
		return validateErr
	}

	return persist.SaveResult(dir, resultBasename, codec, result)
}
