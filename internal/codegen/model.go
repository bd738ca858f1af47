// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package codegen synthesizes the change-notification companion fragment
// for an eligible type declaration: a fresh partial-type skeleton, the
// PropertyChanged signal, the assign-then-raise helper method, and the
// emission unit wrapping them. Everything here is constructed once and
// never mutated after rendering.
package codegen

import "github.com/petar-djukic/notifygen/pkg/types"

// Skeleton is a freshly constructed partial declaration that shares only
// identity traits with the original type: name, accessibility, and type
// parameters. It starts with no members; the synthesizer populates it.
type Skeleton struct {
	Kind            types.DeclKind
	Name            string
	Accessibility   types.Accessibility
	TypeParams      []string
	NullableEnabled bool
	Members         []Member
}

// WithMembers returns a copy of the skeleton populated with members.
// The receiver is left untouched.
func (s Skeleton) WithMembers(members ...Member) Skeleton {
	s.Members = append(s.Members[:len(s.Members):len(s.Members)], members...)
	return s
}

// Member is one synthesized type member. The set is closed: events,
// property wrappers, and methods are the only shapes the generator emits.
type Member interface {
	isMember()
}

// EventMember is an event field declaration.
type EventMember struct {
	HandlerType string
	Name        string
	Nullable    bool
}

func (EventMember) isMember() {}

// PropertyMember is a property wrapping a backing field, whose setter
// routes through the generic assign-then-raise helper.
type PropertyMember struct {
	Accessibility string
	Type          string
	Name          string
	Field         string
}

func (PropertyMember) isMember() {}

// MethodMember is a method declaration with an ordered statement body.
type MethodMember struct {
	Accessibility string
	ReturnType    string
	Name          string
	TypeParams    []string
	Params        []Param
	Body          []Stmt
}

func (MethodMember) isMember() {}

// Param is one method parameter.
type Param struct {
	Ref  bool
	Type string
	Name string
}

// Stmt is one statement of a synthesized method body.
type Stmt interface {
	isStmt()
}

// AssignStmt assigns Value to Target verbatim.
type AssignStmt struct {
	Target string
	Value  string
}

func (AssignStmt) isStmt() {}

// RaiseStmt is the null-conditional notification: when the signal has no
// subscribers the invocation is skipped entirely, otherwise it is invoked
// with the enclosing instance and a change descriptor built from NameExpr.
type RaiseStmt struct {
	Signal   string
	ArgsType string
	NameExpr string
}

func (RaiseStmt) isStmt() {}
