// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package validate decides whether a type declaration is eligible for
// change-notification generation.
package validate

import (
	"github.com/petar-djukic/notifygen/internal/syntax"
	"github.com/petar-djukic/notifygen/pkg/types"
)

// Check runs the eligibility rules against a type declaration. Exactly
// one of the two results is populated: on success the resolved namespace
// path and a nil diagnostic, on failure an empty namespace and the
// diagnostic for the first violated rule. Rules are checked in a fixed
// order and short-circuit; a type violating several rules reports only
// the first.
func Check(t *syntax.TypeDecl) (string, *types.Diagnostic) {
	if !t.HasModifier("partial") {
		return "", reject(t, types.MustBePartial)
	}
	if t.HasModifier("file") {
		return "", reject(t, types.CannotBeFileLocal)
	}
	if syntax.IsNested(t) {
		return "", reject(t, types.MustBeNonNested)
	}
	ns := syntax.EnclosingNamespace(t)
	if ns == "" {
		return "", reject(t, types.MustHaveNamespace)
	}
	return ns, nil
}

// reject builds a diagnostic pinned to the type's name token.
func reject(t *syntax.TypeDecl, kind types.DiagnosticKind) *types.Diagnostic {
	return &types.Diagnostic{
		Kind:     kind,
		Span:     t.NameSpan(),
		TypeName: t.Name,
	}
}
