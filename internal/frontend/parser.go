// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package frontend parses C# source files with tree-sitter and lowers the
// declarations the generator cares about into the syntax model: using
// directives, namespaces, type declarations with their modifiers,
// attributes, type parameters, and fields. Everything else in the file is
// ignored.
package frontend

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/petar-djukic/notifygen/internal/syntax"
	"github.com/petar-djukic/notifygen/pkg/types"
)

var lang = csharp.GetLanguage()

// typeDeclKinds maps tree-sitter node types to declaration kinds. Record
// declarations lower to classes; the generator treats them identically.
var typeDeclKinds = map[string]types.DeclKind{
	"class_declaration":     types.Class,
	"record_declaration":    types.Class,
	"struct_declaration":    types.Struct,
	"interface_declaration": types.Interface,
}

// ParseFile reads and parses one C# source file.
func ParseFile(ctx context.Context, path string) (*syntax.CompilationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(ctx, path, src)
}

// Parse lowers C# source text into a compilation unit. Constructs the
// parser does not model are skipped, not rejected; a file with no
// recognizable type declarations yields an empty unit.
func Parse(ctx context.Context, path string, src []byte) (*syntax.CompilationUnit, error) {
	root, err := sitter.ParseCtx(ctx, src, lang)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	unit := syntax.NewUnit(path)
	p := &lowering{src: src, unit: unit}
	p.lowerMembers(root, unitScope{unit})
	return unit, nil
}

// lowering carries the source text through the node walk.
type lowering struct {
	src  []byte
	unit *syntax.CompilationUnit
}

// scope abstracts where lowered declarations attach: the unit itself, a
// namespace, or an enclosing type.
type scope interface {
	addNamespace(name string, fileScoped bool, span types.Span) scope
	addType(decl syntax.TypeDecl) *syntax.TypeDecl
}

type unitScope struct{ unit *syntax.CompilationUnit }

func (s unitScope) addNamespace(name string, fileScoped bool, span types.Span) scope {
	return nsScope{s.unit.AddNamespace(name, fileScoped, span)}
}

func (s unitScope) addType(decl syntax.TypeDecl) *syntax.TypeDecl { return s.unit.AddType(decl) }

type nsScope struct{ ns *syntax.NamespaceDecl }

func (s nsScope) addNamespace(name string, _ bool, span types.Span) scope {
	return nsScope{s.ns.AddNamespace(name, span)}
}

func (s nsScope) addType(decl syntax.TypeDecl) *syntax.TypeDecl { return s.ns.AddType(decl) }

type typeScope struct{ t *syntax.TypeDecl }

func (s typeScope) addNamespace(string, bool, types.Span) scope {
	// Namespaces cannot nest inside types; tolerate by attaching nothing.
	return s
}

func (s typeScope) addType(decl syntax.TypeDecl) *syntax.TypeDecl { return s.t.AddNested(decl) }

// lowerMembers walks the named children of a container node and lowers
// each recognized declaration into the given scope.
func (p *lowering) lowerMembers(node *sitter.Node, sc scope) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "using_directive":
			p.lowerUsing(child)
		case "namespace_declaration":
			p.lowerNamespace(child, sc, false)
		case "file_scoped_namespace_declaration":
			p.lowerNamespace(child, sc, true)
		case "declaration_list":
			p.lowerMembers(child, sc)
		default:
			if kind, ok := typeDeclKinds[child.Type()]; ok {
				p.lowerType(child, sc, kind)
			}
		}
	}
}

// lowerUsing folds a using directive into the unit-level list. Alias and
// static usings keep their full source form minus keywords.
func (p *lowering) lowerUsing(node *sitter.Node) {
	name := ""
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "identifier", "qualified_name":
			name = child.Content(p.src)
		}
	}
	if name == "" {
		return
	}
	p.unit.AddUsing(name, p.span(node))
}

func (p *lowering) lowerNamespace(node *sitter.Node, sc scope, fileScoped bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	inner := sc.addNamespace(nameNode.Content(p.src), fileScoped, p.span(node))

	if body := node.ChildByFieldName("body"); body != nil {
		p.lowerMembers(body, inner)
		return
	}
	// File-scoped namespaces hold their members as direct children.
	p.lowerMembers(node, inner)
}

func (p *lowering) lowerType(node *sitter.Node, sc scope, kind types.DeclKind) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	decl := syntax.TypeDecl{
		Kind:       kind,
		Name:       nameNode.Content(p.src),
		Modifiers:  p.modifiers(node),
		Attributes: p.attributes(node),
		TypeParams: p.typeParams(node),
	}
	placed := sc.addType(decl)
	placed.SetSpans(p.span(node), p.span(nameNode))

	if body := node.ChildByFieldName("body"); body != nil {
		p.lowerTypeBody(body, placed)
	}
}

// lowerTypeBody collects fields and nested type declarations.
func (p *lowering) lowerTypeBody(body *sitter.Node, t *syntax.TypeDecl) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if kind, ok := typeDeclKinds[child.Type()]; ok {
			p.lowerType(child, typeScope{t}, kind)
			continue
		}
		if child.Type() == "field_declaration" {
			p.lowerField(child, t)
		}
	}
}

func (p *lowering) lowerField(node *sitter.Node, t *syntax.TypeDecl) {
	mods := p.modifiers(node)

	var decl *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if node.NamedChild(i).Type() == "variable_declaration" {
			decl = node.NamedChild(i)
			break
		}
	}
	if decl == nil {
		return
	}

	typeNode := decl.ChildByFieldName("type")
	if typeNode == nil && decl.NamedChildCount() > 0 {
		typeNode = decl.NamedChild(0)
	}
	if typeNode == nil {
		return
	}
	typeText := typeNode.Content(p.src)

	for i := 0; i < int(decl.NamedChildCount()); i++ {
		child := decl.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil && child.NamedChildCount() > 0 {
			nameNode = child.NamedChild(0)
		}
		if nameNode == nil {
			continue
		}
		t.AddField(nameNode.Content(p.src), typeText, mods, p.span(child))
	}
}

// modifiers collects the modifier keywords of a declaration in source
// order.
func (p *lowering) modifiers(node *sitter.Node) []string {
	var mods []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "modifier" {
			mods = append(mods, child.Content(p.src))
		}
	}
	return mods
}

// attributes collects attribute names, flattening attribute lists and
// stripping any argument lists and qualifying prefixes.
func (p *lowering) attributes(node *sitter.Node) []string {
	var attrs []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		list := node.NamedChild(i)
		if list.Type() != "attribute_list" {
			continue
		}
		for j := 0; j < int(list.NamedChildCount()); j++ {
			attr := list.NamedChild(j)
			if attr.Type() != "attribute" {
				continue
			}
			nameNode := attr.ChildByFieldName("name")
			if nameNode == nil && attr.NamedChildCount() > 0 {
				nameNode = attr.NamedChild(0)
			}
			if nameNode == nil {
				continue
			}
			name := nameNode.Content(p.src)
			if idx := strings.LastIndex(name, "."); idx >= 0 {
				name = name[idx+1:]
			}
			attrs = append(attrs, name)
		}
	}
	return attrs
}

// typeParams collects type parameter names from the declaration's type
// parameter list, if any.
func (p *lowering) typeParams(node *sitter.Node) []string {
	var list *sitter.Node
	if tp := node.ChildByFieldName("type_parameters"); tp != nil {
		list = tp
	} else {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if node.NamedChild(i).Type() == "type_parameter_list" {
				list = node.NamedChild(i)
				break
			}
		}
	}
	if list == nil {
		return nil
	}

	var params []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		param := list.NamedChild(i)
		if param.Type() != "type_parameter" {
			continue
		}
		text := param.Content(p.src)
		// Drop variance keywords and attribute lists, keep the name.
		fields := strings.Fields(text)
		if len(fields) > 0 {
			text = fields[len(fields)-1]
		}
		params = append(params, text)
	}
	return params
}

// span converts a tree-sitter start point to a 1-based source span.
func (p *lowering) span(node *sitter.Node) types.Span {
	pt := node.StartPoint()
	return types.Span{
		File:   p.unit.File,
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
	}
}
