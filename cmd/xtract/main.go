// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Command xtract runs the layout/semantic pipeline against a single PDF
// file and writes the serialized result to a file or stdout (spec §6's
// CLI surface).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	xtract "github.com/sassoftware/pdf-structure"
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/serialize"
)

// Exit codes per spec §6.
const (
	exitSuccess    = 0
	exitUsageError = 1
	exitParseError = 2
	exitIOError    = 3
	exitCancelled  = 4
)

func main() {
	cmd := &cli.Command{
		Name:  "xtract",
		Usage: "Extract layout and semantic structure from a PDF file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Aliases:  []string{"i"},
				Usage:    "input PDF file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "serialization format: xml, json, or txt",
				Value: "xml",
			},
			&cli.StringSliceFlag{
				Name:  "units",
				Usage: "extraction units to emit (repeatable): character, word, paragraph, figure, shape, page",
				Value: []string{"paragraph"},
			},
			&cli.StringSliceFlag{
				Name:  "roles",
				Usage: "semantic roles to include (repeatable); omit for all roles",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "xtract:", err)
		os.Exit(exitCodeFor(err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	units, err := parseUnits(cmd.StringSlice("units"))
	if err != nil {
		return usageError{err}
	}
	roles, err := parseRoles(cmd.StringSlice("roles"))
	if err != nil {
		return usageError{err}
	}
	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return usageError{err}
	}

	cfg := xtract.NewDefaultConfig()
	cfg.Units = units
	cfg.Roles = roles
	cfg.Format = format

	pl := xtract.NewPipeline(cfg)

	out, err := pl.Run(ctx, cmd.String("in"))
	if err != nil {
		return err
	}

	outPath := cmd.String("out")
	if outPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return xtractIOError{err}
	}
	return nil
}

// usageError marks a flag-parsing failure distinct from a pipeline
// error, so exitCodeFor can tell a bad --units value (exit 1) apart
// from a pipeline-reported ParseError (exit 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// xtractIOError marks a failure writing the output file, which is an
// I/O error (exit 3) even though it happens outside the pipeline.
type xtractIOError struct{ err error }

func (e xtractIOError) Error() string { return e.err.Error() }
func (e xtractIOError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	switch {
	case asUsageError(err):
		return exitUsageError
	case asParseError(err):
		return exitParseError
	case asIOError(err):
		return exitIOError
	case asCancelled(err):
		return exitCancelled
	default:
		return exitUsageError
	}
}

func asUsageError(err error) bool {
	_, ok := err.(usageError)
	return ok
}

func asParseError(err error) bool {
	_, ok := err.(*xtract.ParseError)
	return ok
}

func asIOError(err error) bool {
	if _, ok := err.(*xtract.IOError); ok {
		return true
	}
	_, ok := err.(xtractIOError)
	return ok
}

func asCancelled(err error) bool {
	_, ok := err.(*xtract.Cancelled)
	return ok
}

func parseUnits(values []string) (model.UnitSet, error) {
	if len(values) == 0 {
		return model.NewUnitSet(model.UnitParagraph), nil
	}
	units := make([]model.ExtractionUnit, 0, len(values))
	for _, v := range values {
		unit, ok := unitByName[strings.ToLower(v)]
		if !ok {
			return nil, fmt.Errorf("unknown extraction unit %q", v)
		}
		units = append(units, unit)
	}
	return model.NewUnitSet(units...), nil
}

var unitByName = map[string]model.ExtractionUnit{
	"character": model.UnitCharacter,
	"word":      model.UnitWord,
	"paragraph": model.UnitParagraph,
	"figure":    model.UnitFigure,
	"shape":     model.UnitShape,
	"page":      model.UnitPage,
}

func parseRoles(values []string) (model.RoleSet, error) {
	if len(values) == 0 {
		return model.NewRoleSet(model.AllSemanticRoles...), nil
	}
	roles := make([]model.SemanticRole, 0, len(values))
	for _, v := range values {
		role := model.SemanticRole(strings.ToUpper(v))
		if !validRole(role) {
			return nil, fmt.Errorf("unknown semantic role %q", v)
		}
		roles = append(roles, role)
	}
	return model.NewRoleSet(roles...), nil
}

func validRole(role model.SemanticRole) bool {
	for _, r := range model.AllSemanticRoles {
		if r == role {
			return true
		}
	}
	return false
}

func parseFormat(value string) (serialize.Format, error) {
	switch serialize.Format(strings.ToLower(value)) {
	case serialize.FormatXML:
		return serialize.FormatXML, nil
	case serialize.FormatJSON:
		return serialize.FormatJSON, nil
	case serialize.FormatTXT:
		return serialize.FormatTXT, nil
	default:
		return "", fmt.Errorf("unknown format %q, want xml, json, or txt", value)
	}
}
