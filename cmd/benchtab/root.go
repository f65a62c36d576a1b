package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"benchtab/internal/config"
	"benchtab/internal/dataset"
	"benchtab/internal/export"
	"benchtab/internal/formatter"
	"benchtab/internal/logger"
	"benchtab/internal/report"
)

const defaultConfigPath = "configs/benchtab.yaml"

var (
	flagDemo      string
	flagLoad      string
	flagNew       string
	flagOutput    string
	flagConfig    string
	flagPrecision int
	flagCompact   bool
	flagLogLevel  string

	log = logger.NewLogger("info")

	rootCmd = &cobra.Command{
		Use:   "benchtab",
		Short: "Benchmark table generator",
		Long: `benchtab takes a set of benchmark results, normalizes them relative to
each computer in the data set and produces a markdown report with the
normalized tables and a ranking by geometric mean. The report can be
printed, saved to a file or converted to PDF.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(flagLogLevel)
		},
		RunE:          runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Flags().StringVar(&flagDemo, "demo", "", `use a bundled demo data set ("p" or "t")`)
	rootCmd.Flags().StringVar(&flagLoad, "load", "", "load a data set from a JSON or YAML file")
	rootCmd.Flags().StringVar(&flagNew, "new", "", "build a new data set interactively, using the given title")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the report to this file (a .pdf extension converts the report)")
	rootCmd.Flags().IntVar(&flagPrecision, "precision", 0, "decimal places for report values (overrides the configuration)")
	rootCmd.Flags().BoolVar(&flagCompact, "compact", false, "skip table column alignment in the report")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "logging level (debug, info, warn, error)")

	rootCmd.AddCommand(demosCmd, checkCmd, fmtCmd)
}

// loadConfig resolves the active configuration. An explicitly requested
// file must load, the implicit default path falls back to defaults with a
// warning.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if flagConfig != "" {
			return nil, err
		}

		log.Warn("failed to load configuration, proceeding with defaults", "path", path, "error", err)

		return config.Default(), nil
	}

	log.Debug("configuration loaded", "path", path, "config", cfg)

	return cfg, nil
}

// resolveSource turns the source flags into exactly one data set source.
func resolveSource(cmd *cobra.Command) (dataset.Source, error) {
	var sources []dataset.Source

	if flagDemo != "" {
		sources = append(sources, dataset.DemoSource{Key: flagDemo, Registry: dataset.BuiltinDemos()})
	}

	if flagLoad != "" {
		sources = append(sources, dataset.FileSource{Path: flagLoad})
	}

	if cmd.Flags().Changed("new") {
		sources = append(sources, dataset.InteractiveSource{Title: flagNew, In: os.Stdin, Out: os.Stdout})
	}

	if len(sources) == 0 {
		return nil, errors.New("no data set selected: run with --help for more information")
	}

	if len(sources) > 1 {
		return nil, errors.New("choose only one of --demo, --load or --new")
	}

	return sources[0], nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("precision") {
		cfg.Report.Precision = flagPrecision
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if flagCompact {
		cfg.Report.AlignTables = false
	}

	source, err := resolveSource(cmd)
	if err != nil {
		return err
	}

	ds, err := source.Load()
	if err != nil {
		return err
	}

	log.Info("data set loaded", "title", ds.Title, "machines", len(ds.Machines()), "tests", len(ds.Tests()))

	var buf bytes.Buffer
	if err := report.NewRenderer(cfg.Report.Precision).Render(&buf, ds); err != nil {
		return err
	}

	markdown := buf.String()
	if cfg.Report.AlignTables {
		markdown = formatter.FormatMarkdown(markdown)
	}

	output := flagOutput
	if output == "" {
		output = cfg.Output.Path
	}

	return writeReport(cfg, markdown, output)
}

// writeReport delivers the finished markdown: stdout when no output path is
// set, a PDF conversion for .pdf paths, a plain file otherwise.
func writeReport(cfg *config.Config, markdown, output string) error {
	if output == "" {
		if _, err := os.Stdout.WriteString(markdown); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		return nil
	}

	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		mdPath := export.MarkdownPath(output)

		if err := os.WriteFile(mdPath, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		log.Info("markdown report written", "path", mdPath)

		if err := export.NewConverter(cfg.PDF.Converter, log).ToPDF(mdPath, output); err != nil {
			return err
		}

		fmt.Printf("✅ Report saved to: %s\n", output)

		return nil
	}

	if err := os.WriteFile(output, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("✅ Report saved to: %s\n", output)

	return nil
}
