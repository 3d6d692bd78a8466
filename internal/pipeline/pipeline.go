// Package pipeline runs one full indexing pass:
// scan the content root, extract front matter, validate, write the artifact.
// Every run regenerates the artifact from scratch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/f4ah6o/postindex-go/internal/config"
	"github.com/f4ah6o/postindex-go/internal/content"
	"github.com/f4ah6o/postindex-go/internal/extractor"
	"github.com/f4ah6o/postindex-go/internal/scanner"
	"github.com/f4ah6o/postindex-go/internal/validator"
	"github.com/f4ah6o/postindex-go/internal/writer"
)

// ErrSkippedUnits is returned in strict mode when at least one post was
// skipped. The artifact has already been written when it is returned.
var ErrSkippedUnits = errors.New("posts were skipped")

// Report summarizes a completed run.
type Report struct {
	// Output is the artifact path.
	Output string
	// Records are the entries written, in scan order.
	Records []content.IndexRecord
	// Skipped lists every excluded subdirectory with its reason.
	Skipped []content.Skip
}

// Pipeline wires the stages together for one configuration.
type Pipeline struct {
	cfg       config.Config
	scanner   *scanner.Scanner
	extractor *extractor.Extractor
	validator *validator.Validator
	writer    *writer.Writer
	logger    *log.Logger
}

// New builds a Pipeline for cfg. Per-skip warnings go to logger; pass nil to
// use the standard logger.
func New(cfg config.Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		scanner:   scanner.New(cfg.Document),
		extractor: extractor.New(),
		validator: validator.New(
			validator.WithURLPrefix(cfg.URLPrefix),
			validator.WithDrafts(cfg.IncludeDrafts),
		),
		writer: writer.New(),
		logger: logger,
	}
}

// Quiet returns a logger that discards per-skip warnings.
func Quiet() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// Run performs one pass. A missing content root or an unwritable output path
// is returned as an error and leaves any previous artifact untouched.
// Cancelling ctx before the write step has the same effect.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	scan, err := p.scanner.Scan(p.cfg.Source)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Output:  p.cfg.Output,
		Records: []content.IndexRecord{},
	}
	// Units and no-document skips are both in directory order; interleave
	// them so warnings follow the listing.
	pending := scan.Skipped
	for _, unit := range scan.Units {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("indexing interrupted: %w", err)
		}
		for len(pending) > 0 && pending[0].Slug < unit.Slug {
			p.skip(report, pending[0])
			pending = pending[1:]
		}

		outcome := p.validator.Validate(p.extractor.Extract(unit))
		if outcome.Included() {
			report.Records = append(report.Records, *outcome.Record)
			continue
		}
		p.skip(report, *outcome.Skipped)
	}
	for _, skip := range pending {
		p.skip(report, skip)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("indexing interrupted: %w", err)
	}
	if err := p.writer.Write(p.cfg.Output, report.Records); err != nil {
		return nil, err
	}

	if p.cfg.Strict && len(report.Skipped) > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrSkippedUnits, len(report.Skipped), len(report.Skipped)+len(report.Records))
	}
	return report, nil
}

func (p *Pipeline) skip(report *Report, skip content.Skip) {
	report.Skipped = append(report.Skipped, skip)
	p.logger.Printf("Warning: skipped %s: %s", skip.Slug, skip.Reason)
}
