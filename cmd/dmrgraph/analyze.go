package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dmrgraph/analysis"
	"github.com/katalvlaran/dmrgraph/biclique"
	"github.com/katalvlaran/dmrgraph/builder"
	"github.com/katalvlaran/dmrgraph/config"
	"github.com/katalvlaran/dmrgraph/domset"
	"github.com/katalvlaran/dmrgraph/export"
	"github.com/katalvlaran/dmrgraph/ingest"
	"github.com/katalvlaran/dmrgraph/registry"
	"github.com/katalvlaran/dmrgraph/store"
)

type analyzeFlags struct {
	configPath string
	timepoints []string
	workers    int
	jsonDir    string
	database   string
	logLevel   string
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one or more timepoint tables",
		Example: `  dmrgraph analyze -c run.yaml
  dmrgraph analyze -t P21=data/p21.tsv -t P28=data/p28.tsv --json-dir out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runAnalyze(cmd.Context(), cfg, cmd.OutOrStdout(), log)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringArrayVarP(&f.timepoints, "timepoint", "t", nil, "timepoint as NAME=PATH (repeatable, appended to the config)")
	fl.IntVar(&f.workers, "workers", 0, "timepoints analyzed concurrently")
	fl.StringVar(&f.jsonDir, "json-dir", "", "directory for per-timepoint graph JSON")
	fl.StringVar(&f.database, "db", "", "SQLite database for result rows")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// resolve loads the configuration and applies flag overrides.
func (f *analyzeFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	for _, arg := range f.timepoints {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("--timepoint %q: want NAME=PATH", arg)
		}
		cfg.Timepoints = append(cfg.Timepoints, config.TimepointConfig{Name: name, Input: path})
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Analysis.Workers = f.workers
	}
	if flags.Changed("json-dir") {
		cfg.Output.JSONDir = f.jsonDir
	}
	if flags.Changed("db") {
		cfg.Output.Database = f.database
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if len(cfg.Timepoints) == 0 {
		return nil, fmt.Errorf("%w: no timepoints configured", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// analysisOptions maps the analysis section onto pipeline options.
func analysisOptions(cfg *config.Config, log *zap.Logger) ([]analysis.Option, error) {
	sel, err := biclique.ParseSelection(cfg.Analysis.Biclique.Selection)
	if err != nil {
		return nil, err
	}
	bc := cfg.Analysis.Biclique
	opts := []analysis.Option{
		analysis.WithLogger(log),
		analysis.WithWorkers(cfg.Analysis.Workers),
		analysis.WithHubSigma(cfg.Analysis.HubSigma),
		analysis.WithBicliqueOptions(
			biclique.WithMaxIterations(bc.MaxIterations),
			biclique.WithTimeLimit(bc.TimeLimit),
			biclique.WithSelection(sel),
			biclique.WithMinSize(bc.MinDMRs, bc.MinGenes),
		),
		analysis.WithDominationOptions(domset.WithAreaWeighting(cfg.Analysis.Domination.AreaWeighted)),
	}
	if cfg.Analysis.StrictRows {
		opts = append(opts, analysis.WithBuilderOptions(builder.WithStrict()))
	}

	return opts, nil
}

// readInputs parses every configured table. Unparsable rows are logged and
// counted; they never reach the builder.
func readInputs(cfg *config.Config, log *zap.Logger) ([]analysis.Input, map[string]int, error) {
	inputs := make([]analysis.Input, 0, len(cfg.Timepoints))
	rejected := make(map[string]int, len(cfg.Timepoints))
	for i, tp := range cfg.Timepoints {
		opts := []ingest.Option{ingest.WithIDBase(tp.IDBase)}
		if tp.Delimiter != "" {
			r, _ := utf8.DecodeRuneInString(tp.Delimiter)
			opts = append(opts, ingest.WithComma(r))
		}

		fh, err := os.Open(tp.Input)
		if err != nil {
			return nil, nil, fmt.Errorf("timepoint %q: %w", tp.Name, err)
		}
		recs, rowErrs, err := ingest.ReadRecords(fh, opts...)
		_ = fh.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("timepoint %q: %s: %w", tp.Name, tp.Input, err)
		}
		for _, rerr := range rowErrs {
			log.Warn("row unparsable", zap.String("timepoint", tp.Name), zap.String("file", tp.Input), zap.Error(rerr))
		}
		rejected[tp.Name] = len(rowErrs)

		inputs = append(inputs, analysis.Input{
			Timepoint: analysis.Timepoint{Name: tp.Name, Offset: cfg.Offset(i)},
			Records:   recs,
		})
	}

	return inputs, rejected, nil
}

func runAnalyze(ctx context.Context, cfg *config.Config, out io.Writer, log *zap.Logger) error {
	opts, err := analysisOptions(cfg, log)
	if err != nil {
		return err
	}
	inputs, unparsable, err := readInputs(cfg, log)
	if err != nil {
		return err
	}

	results, err := analysis.RunAll(ctx, registry.New(), inputs, opts...)
	if err != nil {
		return err
	}

	if dir := cfg.Output.JSONDir; dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("json dir: %w", err)
		}
		for _, res := range results {
			if err = writeGraphJSON(filepath.Join(dir, res.Timepoint.Name+".json"), export.BuildGraphData(res)); err != nil {
				return err
			}
		}
	}

	rows := make([]*export.Rows, 0, len(results))
	for _, res := range results {
		r, err := export.BuildRows(res)
		if err != nil {
			return err
		}
		rows = append(rows, r)
	}
	if cfg.Output.Database != "" {
		st, err := store.Open(ctx, cfg.Output.Database, store.WithLogger(log))
		if err != nil {
			return err
		}
		runID, err := st.SaveRun(ctx, rows...)
		if cerr := st.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run %s saved to %s\n", runID, cfg.Output.Database)
	}

	printSummary(out, results, unparsable)

	return nil
}

func writeGraphJSON(path string, data *export.GraphData) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graph json: %w", err)
	}
	if err = export.WriteJSON(fh, data); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}

func printSummary(out io.Writer, results []*analysis.Result, unparsable map[string]int) {
	fmt.Fprintf(out, "%-10s %-12s %6s %6s %6s %6s %6s %8s %9s %8s\n",
		"timepoint", "status", "dmrs", "genes", "edges", "rows!", "bicl", "domset", "coverage", "accuracy")
	for _, res := range results {
		rejected := unparsable[res.Timepoint.Name]
		if res.Report != nil {
			rejected += len(res.Report.Malformed)
		}
		var bicl, dom int
		var coverage, accuracy float64
		if res.Analyzed() {
			bicl = len(res.Bicliques.Bicliques)
			dom = res.Domination.Summary.Size
			coverage = res.Domination.Summary.CoverageFraction
			accuracy = res.Edges.Rates.Accuracy
		}
		fmt.Fprintf(out, "%-10s %-12s %6d %6d %6d %6d %6d %8d %8.1f%% %8.3f\n",
			res.Timepoint.Name, res.Status, res.Stats.DMRCount, res.Stats.GeneCount, res.Stats.EdgeCount,
			rejected, bicl, dom, 100*coverage, accuracy)
	}
}
