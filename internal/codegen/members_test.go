// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignal(t *testing.T) {
	sig := NewSignal(true)
	assert.Equal(t, "PropertyChanged", sig.Name)
	assert.Equal(t, "PropertyChangedEventHandler", sig.HandlerType)
	assert.True(t, sig.Nullable)
}

// The assignment statement always precedes the raise statement.
func TestNewAssignNotifyBody_Order(t *testing.T) {
	body := NewAssignNotifyBody(AssignStmt{Target: "field", Value: "value"}, "propertyName")

	require.Len(t, body, 2)
	assign, ok := body[0].(AssignStmt)
	require.True(t, ok, "first statement must be the assignment")
	assert.Equal(t, "field", assign.Target)

	raise, ok := body[1].(RaiseStmt)
	require.True(t, ok, "second statement must be the raise")
	assert.Equal(t, SignalName, raise.Signal)
	assert.Equal(t, "propertyName", raise.NameExpr)
}

func TestNewSetFieldMethod_Shape(t *testing.T) {
	m := NewSetFieldMethod()

	assert.Equal(t, "SetFieldAndRaisePropertyChanged", m.Name)
	assert.Equal(t, "void", m.ReturnType)
	assert.Equal(t, []string{"T"}, m.TypeParams)
	require.Len(t, m.Params, 3)
	assert.True(t, m.Params[0].Ref)
	require.Len(t, m.Body, 2)
	_, isAssign := m.Body[0].(AssignStmt)
	assert.True(t, isAssign)
}

// The rendered raise statement is null-conditional: with zero subscribers
// the invocation never happens, rather than being redundantly guarded.
func TestRaiseStmt_NullConditional(t *testing.T) {
	var r renderer
	renderStmt(&r, NewRaiseStmt("propertyName"))

	assert.Equal(t, "PropertyChanged?.Invoke(this, new PropertyChangedEventArgs(propertyName));\n", r.String())
	assert.NotContains(t, r.String(), "if (")
}

func TestPropertyName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"_name", "Name"},
		{"name", "Name"},
		{"__backing", "Backing"},
		{"_firstName", "FirstName"},
		{"x", "X"},
		{"___", "___"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PropertyName(tt.field), "field %q", tt.field)
	}
}

func TestNewPropertyWrapper(t *testing.T) {
	p := NewPropertyWrapper("string", "_name")

	assert.Equal(t, "Name", p.Name)
	assert.Equal(t, "_name", p.Field)
	assert.Equal(t, "string", p.Type)
	assert.Equal(t, "public", p.Accessibility)
}
