// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/petar-djukic/notifygen/pkg/types"
)

func personUnit() Unit {
	skel := Skeleton{
		Kind:            types.Class,
		Name:            "Person",
		Accessibility:   types.Public,
		NullableEnabled: true,
	}.WithMembers(
		NewSignal(true),
		NewPropertyWrapper("string", "_name"),
		NewSetFieldMethod(),
	)
	return NewUnit("App.Models", []string{"System", "System.ComponentModel"}, skel)
}

func TestRender_Golden(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/golden.txt")
	require.NoError(t, err)

	units := map[string]Unit{
		"person": personUnit(),
		"point": NewUnit("Geometry", nil, Skeleton{
			Kind:          types.Struct,
			Name:          "Point",
			Accessibility: types.Internal,
		}.WithMembers(NewSignal(false), NewSetFieldMethod())),
		"generic": NewUnit("App.Collections", []string{"System.ComponentModel"}, Skeleton{
			Kind:            types.Class,
			Name:            "ObservableCell",
			Accessibility:   types.Public,
			TypeParams:      []string{"T"},
			NullableEnabled: true,
		}.WithMembers(NewSignal(true), NewSetFieldMethod())),
	}

	require.Len(t, archive.Files, len(units))
	for _, f := range archive.Files {
		t.Run(f.Name, func(t *testing.T) {
			unit, ok := units[f.Name]
			require.True(t, ok, "no unit for golden case %s", f.Name)

			got := strings.TrimRight(Render(unit), "\n")
			want := strings.TrimRight(string(f.Data), "\n")
			assert.Equal(t, want, got)
		})
	}
}

func TestHintName(t *testing.T) {
	assert.Equal(t, "App_Models_Person", HintName("App.Models", "Person"))
	assert.Equal(t, "Geometry_Point", HintName("Geometry", "Point"))
}

// Hint names for distinct (namespace, name) pairs are pairwise distinct.
func TestHintName_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			h := HintName(fmt.Sprintf("Ns%d.Sub%d", i, j), fmt.Sprintf("Type%d", j))
			assert.False(t, seen[h], "duplicate hint name %s", h)
			seen[h] = true
		}
	}
}

// Hint names ignore generic arity: same namespace and simple name always
// collide regardless of type parameters.
func TestHintName_IgnoresArity(t *testing.T) {
	plain := NewUnit("App", nil, Skeleton{Kind: types.Class, Name: "Cell"})
	generic := NewUnit("App", nil, Skeleton{Kind: types.Class, Name: "Cell", TypeParams: []string{"T"}})
	assert.Equal(t, plain.HintName, generic.HintName)
}

// Exactly one marker per unit, leading the first using directive when
// usings exist, leading the namespace otherwise.
func TestRender_MarkerPlacement(t *testing.T) {
	withUsings := Render(personUnit())
	assert.Equal(t, 1, strings.Count(withUsings, Marker))
	lines := strings.Split(withUsings, "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, Marker, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "using "), "marker must lead the first using directive")

	noUsings := Render(NewUnit("Geometry", nil, Skeleton{Kind: types.Struct, Name: "Point"}))
	assert.Equal(t, 1, strings.Count(noUsings, Marker))
	lines = strings.Split(noUsings, "\n")
	assert.Equal(t, Marker, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "namespace "), "marker must lead the namespace keyword")
}

func TestRender_AssignPrecedesRaise(t *testing.T) {
	out := Render(personUnit())
	assign := strings.Index(out, "field = value;")
	raise := strings.Index(out, "PropertyChanged?.Invoke")
	require.GreaterOrEqual(t, assign, 0)
	require.GreaterOrEqual(t, raise, 0)
	assert.Less(t, assign, raise)
}

func TestRender_Deterministic(t *testing.T) {
	assert.Equal(t, Render(personUnit()), Render(personUnit()))
}
