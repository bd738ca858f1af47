// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import (
	"strings"
	"unicode"
)

// Names of the synthesized members and the handler shapes they bind to.
// These are part of the generated API contract and never vary.
const (
	SignalName    = "PropertyChanged"
	SetMethodName = "SetFieldAndRaisePropertyChanged"

	handlerType = "PropertyChangedEventHandler"
	argsType    = "PropertyChangedEventArgs"

	// HandlerNamespace must be importable wherever the signal is emitted.
	HandlerNamespace = "System.ComponentModel"
)

// NewSignal builds the public notification-signal declaration. The
// nullable annotation follows the unit's nullable context so the output
// compiles under either setting.
func NewSignal(nullable bool) EventMember {
	return EventMember{
		HandlerType: handlerType,
		Name:        SignalName,
		Nullable:    nullable,
	}
}

// NewRaiseStmt builds the conditional-invocation statement raising the
// signal with a change descriptor carrying nameExpr. The invocation is
// null-conditional: zero subscribers means no call at all.
func NewRaiseStmt(nameExpr string) RaiseStmt {
	return RaiseStmt{
		Signal:   SignalName,
		ArgsType: argsType,
		NameExpr: nameExpr,
	}
}

// NewAssignNotifyBody builds the two-statement assign-then-raise body.
// The order is fixed: the caller-supplied assignment runs first, so
// subscribers always observe the post-assignment state.
func NewAssignNotifyBody(assign AssignStmt, nameExpr string) []Stmt {
	return []Stmt{assign, NewRaiseStmt(nameExpr)}
}

// NewSetFieldMethod builds the generic set-field-and-notify helper. Each
// generated property setter instantiates it with the property name bound
// at the call site.
func NewSetFieldMethod() MethodMember {
	return MethodMember{
		Accessibility: "public",
		ReturnType:    "void",
		Name:          SetMethodName,
		TypeParams:    []string{"T"},
		Params: []Param{
			{Ref: true, Type: "T", Name: "field"},
			{Type: "T", Name: "value"},
			{Type: "string", Name: "propertyName"},
		},
		Body: NewAssignNotifyBody(AssignStmt{Target: "field", Value: "value"}, "propertyName"),
	}
}

// NewPropertyWrapper builds the property member for one backing field:
// the getter reads the field, the setter routes through the generic
// helper with the property name literal.
func NewPropertyWrapper(typeText, fieldName string) PropertyMember {
	return PropertyMember{
		Accessibility: "public",
		Type:          typeText,
		Name:          PropertyName(fieldName),
		Field:         fieldName,
	}
}

// PropertyName derives the property name from a backing-field name:
// leading underscores are stripped and the first rune is upper-cased, so
// both "_name" and "name" map to "Name".
func PropertyName(fieldName string) string {
	trimmed := strings.TrimLeft(fieldName, "_")
	if trimmed == "" {
		return fieldName
	}
	runes := []rune(trimmed)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
