// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across notifygen packages.
package types

// DeclKind identifies the category of a type declaration.
type DeclKind int

const (
	Class     DeclKind = iota // class declaration
	Struct                    // struct declaration
	Interface                 // interface declaration
)

// String returns the C# keyword for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case Class:
		return "class"
	case Struct:
		return "struct"
	case Interface:
		return "interface"
	default:
		return "unknown"
	}
}

// Accessibility is the visibility computed for a generated declaration.
// Only the two levels the generator can emit are modeled: an explicit
// public modifier maps to Public, everything else to Internal.
type Accessibility int

const (
	Internal Accessibility = iota // default visibility
	Public                        // explicit public modifier
)

// Keyword returns the C# accessibility keyword.
func (a Accessibility) Keyword() string {
	if a == Public {
		return "public"
	}
	return "internal"
}

// Span locates a syntax element in its source file. Line and Column are
// 1-based.
type Span struct {
	File   string
	Line   int
	Column int
}

// GeneratedUnit is one finished output artifact: a globally unique hint
// name and the rendered source fragment. Units are constructed once per
// eligible input type and handed to the output sink.
type GeneratedUnit struct {
	HintName string
	Source   string
}
