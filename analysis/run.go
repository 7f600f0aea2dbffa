// SPDX-License-Identifier: MIT
// Package: dmrgraph/analysis
//
// run.go: Run, Analyze and RunAll.

package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dmrgraph/biclique"
	"github.com/katalvlaran/dmrgraph/builder"
	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/decompose"
	"github.com/katalvlaran/dmrgraph/domset"
	"github.com/katalvlaran/dmrgraph/edgeclass"
	"github.com/katalvlaran/dmrgraph/registry"
)

// Run analyzes g, setting hub, split and edge-class flags on it.
//
// The context is checked between stages; the algorithms themselves are not
// interruptible beyond the biclique budget.
//
// Errors: ErrGraphNil, ctx.Err(), or a wrapped stage error. An edgeless
// graph and an exhausted enumeration budget are reported through
// Result.Status and Result.Err instead.
func Run(ctx context.Context, g *core.Graph, tp Timepoint, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)

	return run(ctx, g, tp, cfg)
}

func run(ctx context.Context, g *core.Graph, tp Timepoint, cfg config) (*Result, error) {
	if tp.Name == "" {
		tp.Name = g.Timepoint()
	}
	log := cfg.logger.With(zap.String("timepoint", tp.Name))
	start := time.Now()

	res := &Result{Timepoint: tp, Graph: g, Stats: g.Stats()}
	log.Debug("analysis started",
		zap.Int("dmrs", res.Stats.DMRCount),
		zap.Int("genes", res.Stats.GeneCount),
		zap.Int("edges", res.Stats.EdgeCount))

	if res.Stats.EdgeCount == 0 {
		res.Status = StatusNoAnalysis
		res.Err = fmt.Errorf("timepoint %q: %w", tp.Name, ErrNoAnalysis)
		res.Elapsed = time.Since(start)
		log.Warn("graph has no edges, skipping analysis")

		return res, nil
	}

	stage := func(name string) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Run %q: before %s: %w", tp.Name, name, err)
		}
		return nil
	}

	// 1. Decomposition and hubs.
	if err := stage("decompose"); err != nil {
		return nil, err
	}
	dec, err := decompose.Decompose(g)
	if err != nil {
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}
	res.Decomposition = dec
	if res.Hubs, err = decompose.HubFlags(g, dec.Connected, cfg.hubSigma); err != nil {
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}

	// 2. Bicliques; a budget overflow keeps the partial result.
	if err = stage("bicliques"); err != nil {
		return nil, err
	}
	bics, err := biclique.Enumerate(g, cfg.bicliques...)
	switch {
	case errors.Is(err, biclique.ErrEnumerationBudgetExceeded):
		res.Status = StatusPartial
		res.Err = err
		log.Warn("biclique enumeration incomplete",
			zap.Int("iterations", bics.Iterations),
			zap.Int("maximal", bics.Maximal),
			zap.Error(err))
	case err != nil:
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}
	res.Bicliques = bics
	if err = biclique.ApplySplitFlags(g, bics.Bicliques); err != nil {
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}
	decompose.Classify(dec.Connected, bics.Bicliques)
	decompose.Classify(dec.Biconnected, bics.Bicliques)
	decompose.Classify(dec.Triconnected, bics.Bicliques)

	// 3. Edge classification.
	if err = stage("edge classification"); err != nil {
		return nil, err
	}
	edges, err := edgeclass.Classify(g, bics.Bicliques)
	if err != nil {
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}
	if err = edges.Apply(g); err != nil {
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}
	res.Edges = edges
	res.ComponentEdges = edges.ByComponent(dec.Connected)

	// 4. Dominating set.
	if err = stage("domination"); err != nil {
		return nil, err
	}
	if res.Domination, err = domset.Solve(g, cfg.domsets...); err != nil {
		return nil, fmt.Errorf("Run %q: %w", tp.Name, err)
	}

	res.Elapsed = time.Since(start)
	log.Info("analysis finished",
		zap.Stringer("status", res.Status),
		zap.Int("components", len(dec.Connected)),
		zap.Int("bicliques", len(bics.Bicliques)),
		zap.Int("split_genes", len(bics.SplitGenes)),
		zap.Int("hubs", len(res.Hubs)),
		zap.Int("dominating_set", res.Domination.Summary.Size),
		zap.Float64("coverage", res.Domination.Summary.CoverageFraction),
		zap.Float64("accuracy", edges.Rates.Accuracy),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// Analyze builds the graph of tp from records and runs the pipeline on it.
// Every rejected row is logged once at Warn level and kept in Result.Report.
//
// Errors: builder errors (ErrNilRegistry, strict-mode row errors) and the
// errors of Run.
func Analyze(ctx context.Context, reg *registry.Registry, tp Timepoint, records []builder.Record, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	return analyze(ctx, reg, tp, records, cfg)
}

func analyze(ctx context.Context, reg *registry.Registry, tp Timepoint, records []builder.Record, cfg config) (*Result, error) {
	bopts := append(append([]builder.Option{}, cfg.builders...), builder.WithTimepoint(tp.Name))
	g, rep, err := builder.BuildGraph(records, reg, bopts...)
	if rep != nil {
		logMalformed(cfg.logger, tp.Name, rep)
	}
	if err != nil {
		return nil, fmt.Errorf("Analyze %q: %w", tp.Name, err)
	}

	res, err := run(ctx, g, tp, cfg)
	if err != nil {
		return nil, err
	}
	res.Report = rep

	return res, nil
}

func logMalformed(log *zap.Logger, timepoint string, rep *builder.Report) {
	for _, m := range rep.Malformed {
		log.Warn("row rejected",
			zap.String("timepoint", timepoint),
			zap.Int("row", m.Row),
			zap.Int("dmr", m.DMR),
			zap.String("reason", m.Reason),
			zap.Error(m.Err))
	}
	if len(rep.UnresolvedSymbols) > 0 {
		log.Warn("unresolved gene symbols",
			zap.String("timepoint", timepoint),
			zap.Strings("symbols", rep.UnresolvedSymbols))
	}
}

// RunAll analyzes every input against reg with at most WithWorkers timepoints
// in flight. Gene symbols of all inputs are preregistered sequentially in
// input order first, so gene IDs do not depend on scheduling.
//
// Results are returned in input order. The first failing timepoint cancels
// the others; its error is returned.
//
// Errors: ErrDuplicateTimepoint, builder.ErrNilRegistry, registry errors from
// preregistration, and the errors of Analyze.
func RunAll(ctx context.Context, reg *registry.Registry, inputs []Input, opts ...Option) ([]*Result, error) {
	if reg == nil {
		return nil, builder.ErrNilRegistry
	}
	cfg := newConfig(opts...)

	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.Timepoint.Name]; dup {
			return nil, fmt.Errorf("RunAll: %q: %w", in.Timepoint.Name, ErrDuplicateTimepoint)
		}
		seen[in.Timepoint.Name] = struct{}{}
	}

	for _, in := range inputs {
		created, err := builder.PreregisterWith(reg, cfg.builders, in.Records...)
		if err != nil {
			return nil, fmt.Errorf("RunAll: preregister %q: %w", in.Timepoint.Name, err)
		}
		cfg.logger.Debug("genes preregistered",
			zap.String("timepoint", in.Timepoint.Name),
			zap.Int("created", created))
	}

	results := make([]*Result, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			res, err := analyze(egCtx, reg, in.Timepoint, in.Records, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		cfg.logger.Error("run failed", zap.Error(err))
		return nil, fmt.Errorf("RunAll: %w", err)
	}
	cfg.logger.Info("run finished", zap.Int("timepoints", len(inputs)), zap.Int("genes", reg.Len()))

	return results, nil
}
