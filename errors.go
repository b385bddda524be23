// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"github.com/pkg/errors"

	"github.com/sassoftware/pdf-structure/model"
)

// Observer receives structured diagnostics for recoverable failures
// (spec §7, §9 DESIGN NOTES: "the global logger in the source should
// become an injected observer; do not rely on process-wide state").
// Implementations should not block; the pipeline calls OnDiagnostic
// synchronously from whichever stage detected the condition.
type Observer interface {
	OnDiagnostic(diagnostic Diagnostic)
}

// Diagnostic is one recoverable condition surfaced during extraction:
// a dropped line/block (InconsistentGeometry) or a rolled-back semantic
// module (ModuleFailure). Fatal errors (ParseError, IOError, Cancelled)
// are returned directly instead of observed.
type Diagnostic struct {
	Kind    string
	Page    int
	Message string
}

// noopObserver discards every diagnostic; it is the default when a
// Config carries no Observer.
type noopObserver struct{}

func (noopObserver) OnDiagnostic(Diagnostic) {}

// ParseError reports that the Character Producer could not decode the
// PDF bytes at all (spec §6, §7). No Document is produced.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "parse error: " + e.Reason }

// UnsupportedFeature reports a PDF feature the producer cannot handle,
// chiefly encryption (spec §6).
type UnsupportedFeature struct {
	What string
}

func (e *UnsupportedFeature) Error() string { return "unsupported feature: " + e.What }

// IOError wraps a failure reading the input or writing the output
// (spec §7). It is always fatal.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "I/O error: " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// EmptyInput is not itself an error value returned to callers; producer
// success with zero characters yields an empty Document per spec §7.
// It is kept here as a sentinel for code that wants to distinguish the
// condition after the fact.
var EmptyInput = errors.New("producer yielded zero characters")

// InconsistentGeometry reports that a line or block had to be dropped
// because its baseline was missing or its rectangle was degenerate
// (spec §7). It is recoverable: the pipeline reports it via Observer
// and continues.
type InconsistentGeometry struct {
	Page   int
	Reason string
}

func (e *InconsistentGeometry) Error() string { return "inconsistent geometry: " + e.Reason }

// Cancelled reports that the caller's cancellation signal fired; it is
// always fatal and surfaces immediately (spec §7).
type Cancelled struct {
	Err error
}

func (e *Cancelled) Error() string { return "cancelled: " + e.Err.Error() }

func (e *Cancelled) Unwrap() error { return e.Err }

// Visualizer is the interface spec §2 step 7 and §6 name as a sibling
// of Serializer, producing a rendered debug view of a Document. No
// implementation is provided: the spec treats visualization as out of
// scope beyond this interface.
type Visualizer interface {
	Visualize(doc *model.Document) ([]byte, error)
}
