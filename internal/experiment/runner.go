// Package experiment wires configuration, layout and output into one run.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kpauljoseph/wrapbench/internal/config"
	"github.com/kpauljoseph/wrapbench/internal/layout"
	"github.com/kpauljoseph/wrapbench/internal/output"
	"github.com/kpauljoseph/wrapbench/internal/pdf"
	"github.com/kpauljoseph/wrapbench/pkg/logger"
	"github.com/kpauljoseph/wrapbench/pkg/models"
)

const DocumentTitle = "fpdf text wrapping experiment"

type Runner struct {
	cfg       *config.Config
	logger    *logger.Logger
	copier    *output.Copier
	previewer pdf.PagePreviewer
	now       func() time.Time
}

type Option func(*Runner)

func WithCopier(c *output.Copier) Option {
	return func(r *Runner) {
		r.copier = c
	}
}

func WithPreviewer(p pdf.PagePreviewer) Option {
	return func(r *Runner) {
		r.previewer = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

func NewRunner(cfg *config.Config, log *logger.Logger, options ...Option) *Runner {
	if log == nil {
		log = logger.Discard()
	}
	r := &Runner{
		cfg:    cfg,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.copier == nil {
		r.copier = output.NewCopier(cfg.CopyDestination, output.WithAssumeYes(cfg.AssumeYes), output.WithLogger(log))
	}
	return r
}

// Render lays the paragraphs out in a fresh document without writing it.
func (r *Runner) Render(paragraphs []string) (*pdf.Document, []models.Mode) {
	doc := pdf.NewDocument(DocumentTitle)
	dispatcher := layout.NewDispatcher(doc, layout.Options{
		Font:         r.cfg.Font,
		Palette:      r.cfg.Palette,
		NeutralColor: *r.cfg.NeutralColor,
	}, r.logger)

	r.logger.Debug("Measured-width modes use %.2f mm (%.4f mm per character)",
		dispatcher.MeasuredWidth(), dispatcher.AvgCharWidth())

	doc.AddPage()
	executed := dispatcher.Run(r.cfg.ModeSet(), paragraphs)
	return doc, executed
}

func (r *Runner) Run(ctx context.Context, paragraphs []string) (*models.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &models.RunResult{StartTime: r.now()}

	doc, executed := r.Render(paragraphs)
	if err := doc.Err(); err != nil {
		return nil, fmt.Errorf("rendering failed: %w", err)
	}
	r.logger.Debug("Executed %d modes over %d paragraphs into %d pages", len(executed), len(paragraphs), doc.PageCount())

	if r.cfg.OutputDir != "" {
		if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	result.OutputPath = output.PathIn(r.cfg.OutputDir, result.StartTime)
	if err := doc.WriteFile(result.OutputPath); err != nil {
		return nil, err
	}

	report, err := pdf.Inspect(result.OutputPath)
	if err != nil {
		return nil, err
	}
	result.PageCount = report.PageCount
	r.logger.Debug("Wrote %d pages to %s", result.PageCount, result.OutputPath)

	return result, nil
}

// Deliver runs the optional copy and preview steps for a finished run.
func (r *Runner) Deliver(ctx context.Context, result *models.RunResult) error {
	copied, err := r.copier.MaybeCopy(result.OutputPath)
	switch {
	case errors.Is(err, output.ErrCopyDeclined):
		r.logger.Info("Copy to %s skipped", r.copier.Destination())
	case err != nil:
		return fmt.Errorf("failed to copy output: %w", err)
	default:
		result.CopiedTo = copied
	}

	if r.previewer != nil {
		pages, err := r.previewer.RenderPages(ctx, result.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to render previews: %w", err)
		}
		result.PreviewPages = pages
	}

	result.EndTime = r.now()
	return nil
}
