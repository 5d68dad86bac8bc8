// Package main provides the CLI entry point for azmar.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/azmar-go/internal/config"
	"github.com/ukaji3/azmar-go/pkg/azmar"
	"github.com/ukaji3/azmar-go/pkg/azmar/models"
	"github.com/ukaji3/azmar-go/pkg/azmar/output"
)

// app carries the loaded config and logger for a single command run.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "azmar",
		Short: "Load expedition artifacts, location notes, and journals",
		Long: `azmar reads the artifact inventory workbook, the tab-separated location
notes, and the expedition journal, and prints them as tables, JSON, or YAML.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ./azmar.yaml if present)")
	pf.String("format", config.FormatTable, "Output format: table, json, yaml")
	pf.Bool("pretty", false, "Pretty-print JSON output")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")

	setup := func(cmd *cobra.Command) (*app, error) {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return nil, err
		}
		level, _ := cfg.Level()
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		if cfg.File != "" {
			logger.Debug("using config file", "path", cfg.File)
		}
		return &app{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}, nil
	}

	artifactsCmd := &cobra.Command{
		Use:   "artifacts [artifacts.xlsx]",
		Short: "Load the artifact inventory sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			return a.runArtifacts(args[0])
		},
	}
	artifactsCmd.Flags().String("sheet", azmar.DefaultSheetName, "Sheet to read")
	artifactsCmd.Flags().Int("skip-rows", azmar.DefaultSkipRows, "Rows to skip before the header row")

	locationsCmd := &cobra.Command{
		Use:   "locations [locations.tsv]",
		Short: "Load tab-separated location notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			return a.runLocations(args[0])
		},
	}

	journalCmd := &cobra.Command{
		Use:   "journal [journal.txt]",
		Short: "Extract dates and secret codes from a journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			return a.runJournal(args[0])
		},
	}
	journalCmd.Flags().Bool("tokens", false, "List every token with its offset")

	reportCmd := &cobra.Command{
		Use:   "report [artifacts.xlsx] [locations.tsv] [journal.txt]",
		Short: "Load all three sources",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			return a.runReport(args[0], args[1], args[2])
		},
	}
	reportCmd.Flags().String("sheet", azmar.DefaultSheetName, "Sheet to read")
	reportCmd.Flags().Int("skip-rows", azmar.DefaultSkipRows, "Rows to skip before the header row")

	rootCmd.AddCommand(artifactsCmd, locationsCmd, journalCmd, reportCmd)
	return rootCmd
}

func (a *app) runArtifacts(path string) error {
	t, err := azmar.LoadSheet(path, a.cfg.Options(a.logger))
	if err != nil {
		return describe(err, path)
	}
	return a.writeTable(t)
}

func (a *app) runLocations(path string) error {
	t, err := azmar.LoadDelimited(path, a.cfg.Options(a.logger))
	if err != nil {
		return describe(err, path)
	}
	return a.writeTable(t)
}

func (a *app) runJournal(path string) error {
	text, err := azmar.LoadJournal(path, a.cfg.Options(a.logger))
	if err != nil {
		return describe(err, path)
	}

	if a.cfg.Tokens {
		tokens := azmar.ScanJournal(text)
		if a.cfg.Format == config.FormatTable {
			output.RenderTokens(a.out, tokens)
			return nil
		}
		return a.writeDoc(tokens)
	}

	j := azmar.ExtractJournal(text)
	if a.cfg.Format == config.FormatTable {
		output.RenderJournal(a.out, j)
		return nil
	}
	return a.writeDoc(j)
}

// reportDoc is the JSON/YAML form of a full report.
type reportDoc struct {
	Artifacts *models.Table       `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
	Locations *models.Table       `json:"locations,omitempty" yaml:"locations,omitempty"`
	Journal   *models.JournalData `json:"journal,omitempty" yaml:"journal,omitempty"`
	Errors    []string            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// runReport loads every source. A failed source is logged and recorded, and
// the remaining sources still load.
func (a *app) runReport(xlsxPath, tsvPath, journalPath string) error {
	opts := a.cfg.Options(a.logger)
	var doc reportDoc
	var errs []error

	fail := func(section, path string, err error) {
		err = fmt.Errorf("%s: %w", section, describe(err, path))
		a.logger.Error("section failed", "section", section, "error", err)
		errs = append(errs, err)
		doc.Errors = append(doc.Errors, err.Error())
	}

	if t, err := azmar.LoadSheet(xlsxPath, opts); err != nil {
		fail("artifacts", xlsxPath, err)
	} else {
		doc.Artifacts = t
	}

	if t, err := azmar.LoadDelimited(tsvPath, opts); err != nil {
		fail("locations", tsvPath, err)
	} else {
		doc.Locations = t
	}

	if text, err := azmar.LoadJournal(journalPath, opts); err != nil {
		fail("journal", journalPath, err)
	} else {
		j := azmar.ExtractJournal(text)
		doc.Journal = &j
	}

	if a.cfg.Format == config.FormatTable {
		if doc.Artifacts != nil {
			fmt.Fprintf(a.out, "--- Artifacts from %s ---\n", xlsxPath)
			output.RenderTable(a.out, doc.Artifacts)
		}
		if doc.Locations != nil {
			fmt.Fprintf(a.out, "--- Locations from %s ---\n", tsvPath)
			output.RenderTable(a.out, doc.Locations)
		}
		if doc.Journal != nil {
			fmt.Fprintf(a.out, "--- Journal %s ---\n", journalPath)
			output.RenderJournal(a.out, *doc.Journal)
		}
	} else if err := a.writeDoc(doc); err != nil {
		return err
	}

	return errors.Join(errs...)
}

func (a *app) writeTable(t *models.Table) error {
	if a.cfg.Format == config.FormatTable {
		output.RenderTable(a.out, t)
		return nil
	}
	return a.writeDoc(t)
}

func (a *app) writeDoc(v interface{}) error {
	var data []byte
	var err error
	switch a.cfg.Format {
	case config.FormatYAML:
		data, err = output.ToYAML(v)
	default:
		data, err = output.ToJSON(v, a.cfg.Pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// describe turns load errors into user-facing messages.
func describe(err error, path string) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("file not found: %s", path)
	case errors.Is(err, azmar.ErrNotFound):
		return fmt.Errorf("sheet not found: %w", err)
	default:
		return err
	}
}
