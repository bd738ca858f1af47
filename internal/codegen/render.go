// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"strings"
)

// Marker is the auto-generated-file comment. Exactly one marker is
// emitted per unit: leading the first using directive, or leading the
// namespace keyword when the using list is empty.
const Marker = "// <auto-generated/>"

const indentUnit = "    "

// Render produces the deterministic textual form of an emission unit: a
// self-contained, independently compilable source fragment.
func Render(u Unit) string {
	var r renderer

	r.line(Marker)
	if len(u.Usings) > 0 {
		for _, name := range u.Usings {
			r.line("using " + name + ";")
		}
		r.blank()
	}
	if u.Type.NullableEnabled {
		r.line("#nullable enable")
		r.blank()
	}

	r.line("namespace " + u.Namespace)
	r.line("{")
	r.push()
	renderType(&r, u.Type)
	r.pop()
	r.line("}")

	return r.String()
}

func renderType(r *renderer, t Skeleton) {
	decl := t.Accessibility.Keyword() + " partial " + t.Kind.String() + " " + t.Name
	if len(t.TypeParams) > 0 {
		decl += "<" + strings.Join(t.TypeParams, ", ") + ">"
	}
	r.line(decl)
	r.line("{")
	r.push()
	for i, m := range t.Members {
		if i > 0 {
			r.blank()
		}
		renderMember(r, m)
	}
	r.pop()
	r.line("}")
}

func renderMember(r *renderer, m Member) {
	switch mem := m.(type) {
	case EventMember:
		handler := mem.HandlerType
		if mem.Nullable {
			handler += "?"
		}
		r.line("public event " + handler + " " + mem.Name + ";")
	case PropertyMember:
		r.line(mem.Accessibility + " " + mem.Type + " " + mem.Name)
		r.line("{")
		r.push()
		r.line("get => " + mem.Field + ";")
		r.line(fmt.Sprintf("set => %s(ref %s, value, \"%s\");", SetMethodName, mem.Field, mem.Name))
		r.pop()
		r.line("}")
	case MethodMember:
		renderMethod(r, mem)
	}
}

func renderMethod(r *renderer, m MethodMember) {
	sig := m.Accessibility + " " + m.ReturnType + " " + m.Name
	if len(m.TypeParams) > 0 {
		sig += "<" + strings.Join(m.TypeParams, ", ") + ">"
	}
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		text := p.Type + " " + p.Name
		if p.Ref {
			text = "ref " + text
		}
		params = append(params, text)
	}
	r.line(sig + "(" + strings.Join(params, ", ") + ")")
	r.line("{")
	r.push()
	for _, stmt := range m.Body {
		renderStmt(r, stmt)
	}
	r.pop()
	r.line("}")
}

func renderStmt(r *renderer, s Stmt) {
	switch stmt := s.(type) {
	case AssignStmt:
		r.line(stmt.Target + " = " + stmt.Value + ";")
	case RaiseStmt:
		r.line(fmt.Sprintf("%s?.Invoke(this, new %s(%s));", stmt.Signal, stmt.ArgsType, stmt.NameExpr))
	}
}

// renderer accumulates indented lines.
type renderer struct {
	b      strings.Builder
	indent int
}

func (r *renderer) push() { r.indent++ }
func (r *renderer) pop()  { r.indent-- }

func (r *renderer) line(text string) {
	for i := 0; i < r.indent; i++ {
		r.b.WriteString(indentUnit)
	}
	r.b.WriteString(text)
	r.b.WriteByte('\n')
}

func (r *renderer) blank() {
	r.b.WriteByte('\n')
}

func (r *renderer) String() string {
	return r.b.String()
}
