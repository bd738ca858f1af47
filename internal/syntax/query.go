// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	"strings"

	"github.com/petar-djukic/notifygen/pkg/types"
)

// EnclosingNamespace resolves the fully qualified namespace of a type by
// walking ancestor scopes up to the compilation unit. Nested namespaces
// are joined outermost-first with dots. Returns "" when the type is not
// declared inside any namespace.
func EnclosingNamespace(t *TypeDecl) string {
	var parts []string
	for n := t.Parent(); n != nil; n = n.Parent() {
		if ns, ok := n.(*NamespaceDecl); ok {
			parts = append(parts, ns.Name)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	// parts were collected innermost-first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// EnclosingUnit returns the compilation unit a node belongs to.
func EnclosingUnit(n Node) *CompilationUnit {
	for ; n != nil; n = n.Parent() {
		if u, ok := n.(*CompilationUnit); ok {
			return u
		}
	}
	return nil
}

// Usings returns the names of the using directives applicable to a type,
// in source order. Directives live at the unit level; namespace-scoped
// directives are folded in by the front end when it builds the unit.
func Usings(t *TypeDecl) []string {
	u := EnclosingUnit(t)
	if u == nil {
		return nil
	}
	names := make([]string, 0, len(u.Usings))
	for _, d := range u.Usings {
		names = append(names, d.Name)
	}
	return names
}

// IsNested reports whether the type is declared inside another type.
func IsNested(t *TypeDecl) bool {
	for n := t.Parent(); n != nil; n = n.Parent() {
		if _, ok := n.(*TypeDecl); ok {
			return true
		}
	}
	return false
}

// AccessibilityOf computes the visibility the generated declaration must
// carry: Public for an explicit public modifier, Internal otherwise.
func AccessibilityOf(t *TypeDecl) types.Accessibility {
	if t.HasModifier("public") {
		return types.Public
	}
	return types.Internal
}
