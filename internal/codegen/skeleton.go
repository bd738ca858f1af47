// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import (
	"github.com/Masterminds/semver/v3"

	"github.com/petar-djukic/notifygen/internal/syntax"
	"github.com/petar-djukic/notifygen/pkg/types"
)

// nullableThreshold is the first C# language version with nullable
// reference annotations.
var nullableThreshold = semver.MustParse("8.0.0")

// NullableContext reports whether output generated for the given language
// version should carry the nullable-enable marker. Unparseable versions
// disable the marker. This is a per-file bit, not per-member.
func NullableContext(langVersion string) bool {
	v, err := semver.NewVersion(langVersion)
	if err != nil {
		return false
	}
	return !v.LessThan(nullableThreshold)
}

// NewSkeleton builds the empty partial-type shell for an already
// validated declaration, dispatching on the declared kind. The skeleton
// copies the simple name and type parameter list verbatim, computes
// accessibility from the original's modifiers, and never carries any of
// the original's member bodies.
func NewSkeleton(t *syntax.TypeDecl, nullable bool) Skeleton {
	switch t.Kind {
	case types.Struct:
		return newStructSkeleton(t, nullable)
	case types.Interface:
		return newInterfaceSkeleton(t, nullable)
	default:
		return newClassSkeleton(t, nullable)
	}
}

func newClassSkeleton(t *syntax.TypeDecl, nullable bool) Skeleton {
	return identitySkeleton(t, types.Class, nullable)
}

func newStructSkeleton(t *syntax.TypeDecl, nullable bool) Skeleton {
	return identitySkeleton(t, types.Struct, nullable)
}

func newInterfaceSkeleton(t *syntax.TypeDecl, nullable bool) Skeleton {
	return identitySkeleton(t, types.Interface, nullable)
}

// identitySkeleton copies the identity traits shared by all three kinds.
// The partial modifier is implied: every skeleton renders as partial so
// the compiler merges it with the original declaration.
func identitySkeleton(t *syntax.TypeDecl, kind types.DeclKind, nullable bool) Skeleton {
	var params []string
	if len(t.TypeParams) > 0 {
		params = append(params, t.TypeParams...)
	}
	return Skeleton{
		Kind:            kind,
		Name:            t.Name,
		Accessibility:   syntax.AccessibilityOf(t),
		TypeParams:      params,
		NullableEnabled: nullable,
	}
}
