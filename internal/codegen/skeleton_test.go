// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/notifygen/internal/syntax"
	"github.com/petar-djukic/notifygen/pkg/types"
)

func declInNamespace(modifiers []string, kind types.DeclKind, typeParams []string) *syntax.TypeDecl {
	unit := syntax.NewUnit("fixture.cs")
	ns := unit.AddNamespace("App.Models", false, types.Span{File: "fixture.cs", Line: 1, Column: 1})
	return ns.AddType(syntax.TypeDecl{
		Kind:       kind,
		Name:       "Person",
		Modifiers:  modifiers,
		TypeParams: typeParams,
	})
}

func TestNewSkeleton_CopiesIdentityOnly(t *testing.T) {
	decl := declInNamespace([]string{"public", "partial"}, types.Class, []string{"T", "U"})
	decl.AddField("_name", "string", []string{"private"}, types.Span{})

	s := NewSkeleton(decl, true)

	assert.Equal(t, "Person", s.Name)
	assert.Equal(t, types.Public, s.Accessibility)
	assert.Equal(t, []string{"T", "U"}, s.TypeParams)
	assert.Equal(t, types.Class, s.Kind)
	assert.True(t, s.NullableEnabled)
	assert.Empty(t, s.Members, "skeleton must not carry original members")
}

func TestNewSkeleton_KindDispatch(t *testing.T) {
	for _, kind := range []types.DeclKind{types.Class, types.Struct, types.Interface} {
		decl := declInNamespace([]string{"partial"}, kind, nil)
		s := NewSkeleton(decl, false)
		assert.Equal(t, kind, s.Kind)
	}
}

func TestNewSkeleton_DefaultAccessibilityIsInternal(t *testing.T) {
	decl := declInNamespace([]string{"partial"}, types.Class, nil)
	s := NewSkeleton(decl, false)
	assert.Equal(t, types.Internal, s.Accessibility)
}

// Two skeletons built from structurally identical inputs are identical.
func TestNewSkeleton_Idempotent(t *testing.T) {
	a := NewSkeleton(declInNamespace([]string{"public", "partial"}, types.Struct, []string{"T"}), true)
	b := NewSkeleton(declInNamespace([]string{"public", "partial"}, types.Struct, []string{"T"}), true)
	assert.Equal(t, a, b)
}

func TestNullableContext(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"8.0", true},
		{"9.0", true},
		{"12.0", true},
		{"7.3", false},
		{"7.0", false},
		{"latest", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NullableContext(tt.version), "version %q", tt.version)
	}
}

func TestWithMembers_DoesNotMutateReceiver(t *testing.T) {
	base := NewSkeleton(declInNamespace([]string{"partial"}, types.Class, nil), false)
	populated := base.WithMembers(NewSignal(false))

	assert.Empty(t, base.Members)
	assert.Len(t, populated.Members, 1)
}
