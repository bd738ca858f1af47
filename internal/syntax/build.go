// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import "github.com/petar-djukic/notifygen/pkg/types"

// NewUnit creates an empty compilation unit for the given source file.
func NewUnit(file string) *CompilationUnit {
	return &CompilationUnit{File: file}
}

// AddUsing appends a using directive to the unit and returns it.
func (u *CompilationUnit) AddUsing(name string, span types.Span) *UsingDirective {
	d := &UsingDirective{unit: u, Name: name, span: span}
	u.Usings = append(u.Usings, d)
	return d
}

// AddNamespace appends a top-level namespace declaration to the unit.
func (u *CompilationUnit) AddNamespace(name string, fileScoped bool, span types.Span) *NamespaceDecl {
	n := &NamespaceDecl{parent: u, Name: name, FileScoped: fileScoped, span: span}
	u.Namespaces = append(u.Namespaces, n)
	return n
}

// AddType appends a top-level type declaration outside any namespace.
func (u *CompilationUnit) AddType(t TypeDecl) *TypeDecl {
	t.parent = u
	decl := &t
	u.Types = append(u.Types, decl)
	return decl
}

// AddNamespace appends a nested namespace declaration.
func (n *NamespaceDecl) AddNamespace(name string, span types.Span) *NamespaceDecl {
	child := &NamespaceDecl{parent: n, Name: name, span: span}
	n.Nested = append(n.Nested, child)
	return child
}

// AddType appends a type declaration to the namespace.
func (n *NamespaceDecl) AddType(t TypeDecl) *TypeDecl {
	t.parent = n
	decl := &t
	n.Types = append(n.Types, decl)
	return decl
}

// AddNested appends a type declaration nested inside this type.
func (t *TypeDecl) AddNested(child TypeDecl) *TypeDecl {
	child.parent = t
	decl := &child
	t.Nested = append(t.Nested, decl)
	return decl
}

// AddField appends a field declaration to the type.
func (t *TypeDecl) AddField(name, typeText string, modifiers []string, span types.Span) *FieldDecl {
	f := &FieldDecl{parent: t, Name: name, Type: typeText, Modifiers: modifiers, span: span}
	t.Fields = append(t.Fields, f)
	return f
}

// SetSpans records the declaration span and the name-token span.
func (t *TypeDecl) SetSpans(decl, name types.Span) {
	t.span = decl
	t.nameSpan = name
}
