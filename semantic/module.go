// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package semantic implements the Semanticizer of spec §4.5: a fixed,
// ordered sequence of rule-based Modules that each set a TextBlock's
// SemanticRole (and, for section-range modules, consume a previously
// assigned SecondarySemanticRole hint).
package semantic

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
)

// Module is one step of the Semanticizer pipeline. Modules communicate
// only through the Document and the RoleAssignment facade, never
// directly with each other (spec §4.5).
type Module interface {
	Name() string
	Semanticize(doc *model.Document, ra *RoleAssignment) error
}

// ModuleFailure reports that a Module panicked or returned an error
// while running, after its effects were rolled back (spec §7).
type ModuleFailure struct {
	Module string
	Err    error
}

func (e *ModuleFailure) Error() string {
	return fmt.Sprintf("semantic module %q failed: %v", e.Module, e.Err)
}

func (e *ModuleFailure) Unwrap() error { return e.Err }

// roleChange is one recorded mutation of a TextBlock's role fields.
type roleChange struct {
	blockID      string
	oldRole      model.SemanticRole
	oldSecondary model.SemanticRole
	newRole      model.SemanticRole
	secondary    bool // true if this change targeted SecondarySemanticRole
	module       string
}

// RoleAssignment is the rollback facade of spec §9 DESIGN NOTES: every
// mutation a Module makes to a TextBlock's role fields is logged here so
// a failing module's effects can be undone without touching the rest of
// the Document.
type RoleAssignment struct {
	doc *model.Document
	log []roleChange
}

// NewRoleAssignment returns an empty RoleAssignment over doc. Exported
// chiefly so individual Modules can be exercised directly in tests,
// without running the full Semanticizer.
func NewRoleAssignment(doc *model.Document) *RoleAssignment {
	return &RoleAssignment{doc: doc}
}

// SetRole sets block's primary SemanticRole, recording the prior value
// under moduleName for possible rollback.
func (ra *RoleAssignment) SetRole(block *model.TextBlock, role model.SemanticRole, moduleName string) {
	ra.log = append(ra.log, roleChange{
		blockID: block.ID,
		oldRole: block.SemanticRole,
		newRole: role,
		module:  moduleName,
	})
	block.SemanticRole = role
}

// SetSecondaryRole sets block's SecondarySemanticRole hint, recording
// the prior value under moduleName for possible rollback.
func (ra *RoleAssignment) SetSecondaryRole(block *model.TextBlock, role model.SemanticRole, moduleName string) {
	ra.log = append(ra.log, roleChange{
		blockID:      block.ID,
		oldSecondary: block.SecondarySemanticRole,
		newRole:      role,
		secondary:    true,
		module:       moduleName,
	})
	block.SecondarySemanticRole = role
}

// RollbackModule undoes, in reverse order, every change moduleName made,
// restoring each affected block's role fields to their pre-module value.
func (ra *RoleAssignment) RollbackModule(moduleName string) {
	for i := len(ra.log) - 1; i >= 0; i-- {
		change := ra.log[i]
		if change.module != moduleName {
			continue
		}
		block := ra.doc.BlockByID(change.blockID)
		if block == nil {
			continue
		}
		if change.secondary {
			block.SecondarySemanticRole = change.oldSecondary
		} else {
			block.SemanticRole = change.oldRole
		}
	}
	ra.log = dropModule(ra.log, moduleName)
}

func dropModule(log []roleChange, moduleName string) []roleChange {
	out := log[:0]
	for _, c := range log {
		if c.module != moduleName {
			out = append(out, c)
		}
	}
	return out
}

// Semanticizer runs a fixed, ordered list of Modules over a Document.
type Semanticizer struct {
	modules []Module
}

// New returns a Semanticizer that runs modules in the given order.
func New(modules []Module) Semanticizer {
	return Semanticizer{modules: modules}
}

// Run executes every module in order. If a module panics or returns an
// error, its effects are rolled back and the remaining modules still
// run; earlier modules' effects stand (spec §7). Run then returns the
// first *ModuleFailure. Run checks ctx between modules so a cancelled
// extraction stops promptly at a module boundary.
func (s Semanticizer) Run(ctx context.Context, doc *model.Document) error {
	ra := NewRoleAssignment(doc)
	var firstFailure *ModuleFailure
	for _, m := range s.modules {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := runModule(m, doc, ra); err != nil {
			ra.RollbackModule(m.Name())
			logger.Error("semantic module failed, rolled back", "module", m.Name(), "error", err)
			var failure *ModuleFailure
			if !errors.As(err, &failure) {
				failure = &ModuleFailure{Module: m.Name(), Err: err}
			}
			if firstFailure == nil {
				firstFailure = failure
			}
		}
	}
	if firstFailure != nil {
		return firstFailure
	}
	return nil
}

// runModule invokes m.Semanticize, converting a panic into an error so
// Run can roll back the module's effects uniformly.
func runModule(m Module, doc *model.Document, ra *RoleAssignment) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ModuleFailure{Module: m.Name(), Err: errors.Errorf("panic: %v", r)}
		}
	}()
	return m.Semanticize(doc, ra)
}
