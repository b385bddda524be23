// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sassoftware/pdf-structure/assemble"
	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
	"github.com/sassoftware/pdf-structure/semantic/modules"
	"github.com/sassoftware/pdf-structure/serialize"
	"github.com/sassoftware/pdf-structure/statistics"
	"github.com/sassoftware/pdf-structure/tokenize/blocks"
	"github.com/sassoftware/pdf-structure/tokenize/lines"
)

// Pipeline drives the full layout/semantic pipeline of spec §2 on top of
// the Character Producer: Produce, Line Tokenizer (fan out per page),
// Statistician (document-level join), Block Tokenizer (fan out per
// page), Paragraph Assembler, Semanticizer, Serializer. It mirrors
// processor's role as the thing a caller constructs once per Config
// and reuses across files.
type Pipeline struct {
	cfg         *Config
	lineTok     lines.Tokenizer
	blockTok    blocks.Tokenizer
	stats       statistics.Statistician
	assembler   assemble.Assembler
	semanticize semantic.Semanticizer
}

// NewPipeline validates cfg and builds a Pipeline ready to run. Like
// NewProcessor, it panics on an invalid Config: this is a programmer
// error caught at construction, not a runtime condition callers need to
// recover from.
func NewPipeline(cfg *Config) *Pipeline {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}
	return &Pipeline{
		cfg:         cfg,
		lineTok:     lines.New(cfg.LineTokenizer),
		blockTok:    blocks.New(cfg.BlockTokenizer),
		stats:       statistics.NewStatistician(),
		assembler:   assemble.New(cfg.Dictionary),
		semanticize: semantic.New(modules.Default(cfg.Semanticizer)),
	}
}

// Run extracts and serializes a single PDF file, end to end (spec §2).
// It checks ctx at every page-fan-out boundary and, through the
// Semanticizer, between semantic modules, matching processor.go's
// cancellation granularity.
func (pl *Pipeline) Run(ctx context.Context, path string) ([]byte, error) {
	_, r, err := Open(path)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	doc, err := Produce(ctx, r, pl.cfg)
	if err != nil {
		return nil, err
	}

	if err := pl.tokenizeLines(ctx, doc); err != nil {
		return nil, err
	}

	pl.stats.ComputeDocument(doc)

	if err := pl.tokenizeBlocks(ctx, doc); err != nil {
		return nil, err
	}

	doc.Paragraphs = pl.assembler.Assemble(doc)

	if err := pl.semanticize.Run(ctx, doc); err != nil {
		if _, ok := err.(*semantic.ModuleFailure); ok {
			pl.observe(Diagnostic{Kind: "ModuleFailure", Message: err.Error()})
		} else {
			return nil, &Cancelled{Err: err}
		}
	}

	// Paragraphs were assembled before the Semanticizer assigned final
	// roles; refresh each Paragraph's role from its first member block
	// now that role assignment is settled (spec §4.3: a Paragraph's role
	// is its blocks' role, which is only final after the Semanticizer
	// runs).
	pl.refreshParagraphRoles(doc)

	serializer, err := serialize.New(pl.cfg.Format, serialize.Config{
		Units: pl.cfg.Units,
		Roles: pl.cfg.Roles,
	})
	if err != nil {
		return nil, errors.Wrap(err, "constructing serializer")
	}

	out, err := serializer.Serialize(doc)
	if err != nil {
		return nil, errors.Wrap(err, "serializing document")
	}
	return out, nil
}

// tokenizeLines fans the Line Tokenizer out across pages behind an
// errgroup, one goroutine per page (spec §5's per-page concurrency
// model), and assigns each page's result back in place.
func (pl *Pipeline) tokenizeLines(ctx context.Context, doc *model.Document) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range doc.Pages {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc.Pages[i].TextLines = pl.lineTok.Tokenize(doc.Pages[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return &Cancelled{Err: err}
	}
	return nil
}

// tokenizeBlocks fans the Block Tokenizer out across pages the same way,
// after doc.TextLineStatistic is final (spec §5 ordering requirement).
func (pl *Pipeline) tokenizeBlocks(ctx context.Context, doc *model.Document) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range doc.Pages {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc.Pages[i].TextBlocks = pl.blockTok.Tokenize(doc.Pages[i], doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return &Cancelled{Err: err}
	}
	return nil
}

// refreshParagraphRoles re-reads each Paragraph's SemanticRole from its
// first covered block, now that the Semanticizer has run.
func (pl *Pipeline) refreshParagraphRoles(doc *model.Document) {
	for i := range doc.Paragraphs {
		positions := doc.Paragraphs[i].Positions
		if len(positions) == 0 {
			continue
		}
		for _, page := range doc.Pages {
			if page.Number != positions[0].PageNumber {
				continue
			}
			for _, block := range page.TextBlocks {
				if block.Rectangle == positions[0].Rectangle {
					doc.Paragraphs[i].SemanticRole = block.SemanticRole
					break
				}
			}
		}
	}
}

func (pl *Pipeline) observe(d Diagnostic) {
	observer := pl.cfg.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	logger.Debug(fmt.Sprintf("pipeline diagnostic: kind=%s page=%d message=%s", d.Kind, d.Page, d.Message), true)
	observer.OnDiagnostic(d)
}
