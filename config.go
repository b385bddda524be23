// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sassoftware/pdf-structure/assemble"
	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
	"github.com/sassoftware/pdf-structure/serialize"
	"github.com/sassoftware/pdf-structure/tokenize/blocks"
	"github.com/sassoftware/pdf-structure/tokenize/lines"
)

type ParsingMode string

const (
	Strict     ParsingMode = "strict"
	BestEffort ParsingMode = "best-effort"
)

// Config is the root configuration for both the Character Producer (the
// fields this type already carried) and the layout/semantic pipeline
// built on top of it. Nested configs keep each stage's tunables next to
// the stage that owns them while still validating as one struct.
type Config struct {
	MaxConcurrentPDFs int           `validate:"min=1,max=10"`
	MaxWorkersPerPDF  int           `validate:"min=1,max=10"`
	WorkerTimeout     time.Duration `validate:"required"`
	ParsingMode       ParsingMode   `validate:"oneof=strict best-effort"`
	MaxRetries        int           `validate:"min=0,max=3"`
	MaxTotalChars     int           `validate:"min=0"`
	DebugOn           bool
	Logger            logger.LogFunc

	LineTokenizer  lines.Config
	BlockTokenizer blocks.Config
	Semanticizer   semantic.Config

	// Dictionary supplies the Paragraph Assembler's dehyphenation word
	// list (spec §4.3). A nil Dictionary falls back to the
	// hyphen-not-preceded-by-a-digit rule alone.
	Dictionary assemble.Dictionary

	// Units and Roles select what the Serializer emits (spec §4.6). The
	// zero value of each is the empty set, which the CLI surface
	// defaults away from; library callers must set these explicitly.
	Units  model.UnitSet
	Roles  model.RoleSet
	Format serialize.Format `validate:"omitempty,oneof=xml json txt"`

	// Observer receives structured diagnostics for recoverable failures
	// (InconsistentGeometry, ModuleFailure) rather than a process-wide
	// logger call, per spec §9 DESIGN NOTES ("do not rely on
	// process-wide state").
	Observer Observer
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentPDFs: 5,
		MaxWorkersPerPDF:  1,
		WorkerTimeout:     5 * time.Second,
		ParsingMode:       BestEffort,
		MaxRetries:        3,
		MaxTotalChars:     0,
		DebugOn:           false,

		LineTokenizer:  lines.DefaultConfig(),
		BlockTokenizer: blocks.DefaultConfig(),
		Semanticizer:   semantic.DefaultConfig(),

		Units:  model.NewUnitSet(model.UnitParagraph),
		Roles:  model.NewRoleSet(model.AllSemanticRoles...),
		Format: serialize.FormatXML,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
