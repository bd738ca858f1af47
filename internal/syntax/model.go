// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syntax models the declaration side of parsed C# source: the
// compilation unit, using directives, namespaces, and type declarations
// the generator inspects. Nodes carry parent pointers so queries can walk
// strictly upward; the model is read-only after the front end builds it.
package syntax

import "github.com/petar-djukic/notifygen/pkg/types"

// Node is implemented by every element that participates in ancestor
// traversal.
type Node interface {
	Parent() Node
	Span() types.Span
}

// CompilationUnit is the root of one parsed source file.
type CompilationUnit struct {
	File   string
	Usings []*UsingDirective
	// Top-level members in declaration order. Namespaces and types may
	// be interleaved at the top level.
	Namespaces []*NamespaceDecl
	Types      []*TypeDecl
}

func (u *CompilationUnit) Parent() Node { return nil }

func (u *CompilationUnit) Span() types.Span {
	return types.Span{File: u.File, Line: 1, Column: 1}
}

// UsingDirective is one import statement of the source file.
type UsingDirective struct {
	unit *CompilationUnit
	Name string // imported namespace, e.g. "System.ComponentModel"
	span types.Span
}

func (u *UsingDirective) Parent() Node     { return u.unit }
func (u *UsingDirective) Span() types.Span { return u.span }

// NamespaceDecl is a block-scoped or file-scoped namespace declaration.
type NamespaceDecl struct {
	parent     Node
	Name       string // dotted path segment, e.g. "App.Models"
	FileScoped bool
	Types      []*TypeDecl
	Nested     []*NamespaceDecl
	span       types.Span
}

func (n *NamespaceDecl) Parent() Node     { return n.parent }
func (n *NamespaceDecl) Span() types.Span { return n.span }

// TypeDecl is a class, struct, or interface declaration. Members other
// than fields and nested types are not modeled; the generator never reads
// them.
type TypeDecl struct {
	parent     Node
	Kind       types.DeclKind
	Name       string
	Modifiers  []string // source order, e.g. ["public", "partial"]
	TypeParams []string // type parameter names, nil when non-generic
	Attributes []string // attribute names, brackets stripped
	Fields     []*FieldDecl
	Nested     []*TypeDecl
	span       types.Span
	nameSpan   types.Span
}

func (t *TypeDecl) Parent() Node     { return t.parent }
func (t *TypeDecl) Span() types.Span { return t.span }

// NameSpan locates the type's name token, used to pin diagnostics.
func (t *TypeDecl) NameSpan() types.Span { return t.nameSpan }

// HasModifier reports whether the declaration carries the given modifier.
func (t *TypeDecl) HasModifier(mod string) bool {
	for _, m := range t.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// HasAttribute reports whether the declaration carries the named
// attribute, accepting both the short form and the "Attribute" suffix.
func (t *TypeDecl) HasAttribute(name string) bool {
	for _, a := range t.Attributes {
		if a == name || a == name+"Attribute" {
			return true
		}
	}
	return false
}

// FieldDecl is one declared field of a type.
type FieldDecl struct {
	parent    *TypeDecl
	Name      string
	Type      string // source text of the field type
	Modifiers []string
	span      types.Span
}

func (f *FieldDecl) Parent() Node     { return f.parent }
func (f *FieldDecl) Span() types.Span { return f.span }

// HasModifier reports whether the field carries the given modifier.
func (f *FieldDecl) HasModifier(mod string) bool {
	for _, m := range f.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}
