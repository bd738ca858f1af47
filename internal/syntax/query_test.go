// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/notifygen/pkg/types"
)

func span(line int) types.Span {
	return types.Span{File: "fixture.cs", Line: line, Column: 1}
}

func TestEnclosingNamespace_Flat(t *testing.T) {
	unit := NewUnit("fixture.cs")
	ns := unit.AddNamespace("App.Models", false, span(1))
	decl := ns.AddType(TypeDecl{Kind: types.Class, Name: "Person", Modifiers: []string{"public", "partial"}})

	assert.Equal(t, "App.Models", EnclosingNamespace(decl))
}

func TestEnclosingNamespace_NestedNamespaces(t *testing.T) {
	unit := NewUnit("fixture.cs")
	outer := unit.AddNamespace("App", false, span(1))
	inner := outer.AddNamespace("Models", span(2))
	decl := inner.AddType(TypeDecl{Kind: types.Class, Name: "Person"})

	assert.Equal(t, "App.Models", EnclosingNamespace(decl))
}

func TestEnclosingNamespace_None(t *testing.T) {
	unit := NewUnit("fixture.cs")
	decl := unit.AddType(TypeDecl{Kind: types.Class, Name: "Orphan"})

	assert.Equal(t, "", EnclosingNamespace(decl))
}

func TestEnclosingUnit_FromNestedType(t *testing.T) {
	unit := NewUnit("fixture.cs")
	ns := unit.AddNamespace("App", false, span(1))
	outer := ns.AddType(TypeDecl{Kind: types.Class, Name: "Outer"})
	inner := outer.AddNested(TypeDecl{Kind: types.Class, Name: "Inner"})

	require.Same(t, unit, EnclosingUnit(inner))
}

func TestUsings_SourceOrder(t *testing.T) {
	unit := NewUnit("fixture.cs")
	unit.AddUsing("System", span(1))
	unit.AddUsing("System.Collections.Generic", span(2))
	ns := unit.AddNamespace("App", false, span(3))
	decl := ns.AddType(TypeDecl{Kind: types.Class, Name: "Person"})

	assert.Equal(t, []string{"System", "System.Collections.Generic"}, Usings(decl))
}

func TestIsNested(t *testing.T) {
	unit := NewUnit("fixture.cs")
	ns := unit.AddNamespace("App", false, span(1))
	outer := ns.AddType(TypeDecl{Kind: types.Class, Name: "Outer"})
	inner := outer.AddNested(TypeDecl{Kind: types.Class, Name: "Inner"})

	assert.False(t, IsNested(outer))
	assert.True(t, IsNested(inner))
}

func TestAccessibilityOf(t *testing.T) {
	tests := []struct {
		name      string
		modifiers []string
		want      types.Accessibility
	}{
		{"explicit public", []string{"public", "partial"}, types.Public},
		{"explicit internal", []string{"internal", "partial"}, types.Internal},
		{"no accessibility modifier", []string{"partial"}, types.Internal},
		{"private", []string{"private", "partial"}, types.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := NewUnit("fixture.cs")
			ns := unit.AddNamespace("App", false, span(1))
			decl := ns.AddType(TypeDecl{Kind: types.Class, Name: "T", Modifiers: tt.modifiers})
			assert.Equal(t, tt.want, AccessibilityOf(decl))
		})
	}
}

func TestHasAttribute_AcceptsSuffix(t *testing.T) {
	unit := NewUnit("fixture.cs")
	ns := unit.AddNamespace("App", false, span(1))
	decl := ns.AddType(TypeDecl{Kind: types.Class, Name: "Person", Attributes: []string{"NotifyPropertyChangedAttribute"}})

	assert.True(t, decl.HasAttribute("NotifyPropertyChanged"))
	assert.False(t, decl.HasAttribute("Notify"))
}
