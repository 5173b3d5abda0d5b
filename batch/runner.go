package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/docroute/catalog"
	"github.com/hazyhaar/docroute/docpipe"
	"github.com/hazyhaar/docroute/emit"
	"github.com/hazyhaar/docroute/pipeline"
)

// Failure records one document that could not be processed. Failures never
// abort the batch; they are reported at the end.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a batch run.
type Report struct {
	Found     int
	Processed int
	Failures  []Failure
	Elapsed   time.Duration
}

// Runner wires the extraction pipeline, the processor, the output writer,
// and (optionally) the catalog into one batch executor.
type Runner struct {
	cfg    *Config
	pipe   *docpipe.Pipeline
	proc   *pipeline.Processor
	writer *emit.Writer
	store  *catalog.Store
	logger *slog.Logger
}

// NewRunner builds a Runner from config. When cfg.CatalogDB is set the
// catalog is opened (and created) too; Close releases everything.
func NewRunner(cfg *Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	pipe := docpipe.New(docpipe.Config{Logger: logger})
	proc := pipeline.NewProcessor(pipe, pipeline.Config{
		MaxSentences:   cfg.MaxSentences,
		MaxActionItems: cfg.MaxActionItems,
		Logger:         logger,
	})

	writer, err := emit.NewWriter(emit.Config{Dir: cfg.OutputDir, PerFileJSON: cfg.PerFileJSON})
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	r := &Runner{
		cfg:    cfg,
		pipe:   pipe,
		proc:   proc,
		writer: writer,
		logger: logger,
	}

	if cfg.CatalogDB != "" {
		store, err := catalog.Open(cfg.CatalogDB)
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("batch: %w", err)
		}
		r.store = store
	}
	return r, nil
}

// Close flushes outputs and closes the catalog.
func (r *Runner) Close() error {
	err := r.writer.Close()
	if r.store != nil {
		if cerr := r.store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Run processes every supported file under cfg.InputDir with cfg.Workers
// concurrent workers. Per-document failures are isolated: a corrupt file
// lands in Report.Failures while the rest of the batch completes. Only
// infrastructure errors (output writes, catalog writes, cancellation) abort
// the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	files, err := FindFiles(r.cfg.InputDir)
	if err != nil {
		return nil, err
	}
	report := &Report{Found: len(files)}
	if len(files) == 0 {
		report.Elapsed = time.Since(start)
		return report, nil
	}

	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for _, path := range files {
		g.Go(func() error {
			rec, err := r.processOne(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				r.logger.Warn("document failed", "path", path, "error", err)
				mu.Lock()
				report.Failures = append(report.Failures, Failure{Path: path, Err: err})
				mu.Unlock()
				return nil
			}

			// Output and catalog writes are infrastructure: failing them
			// aborts the whole batch.
			if err := r.writer.Append(rec); err != nil {
				return err
			}
			if r.store != nil {
				if _, err := r.store.Put(ctx, rec); err != nil {
					return err
				}
			}

			mu.Lock()
			report.Processed++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	r.logger.Info("batch complete",
		"found", report.Found,
		"processed", report.Processed,
		"failed", len(report.Failures),
		"elapsed", report.Elapsed)
	return report, nil
}

func (r *Runner) processOne(ctx context.Context, path string) (*pipeline.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := r.pipe.Read(path)
	if err != nil {
		return nil, err
	}
	return r.proc.Process(ctx, raw)
}
