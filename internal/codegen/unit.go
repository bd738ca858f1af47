// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codegen

import "strings"

// Unit is one finished emission unit: the populated partial type wrapped
// in its namespace, the using directives it needs, and the hint name
// identifying the output artifact within a generation pass.
type Unit struct {
	HintName  string
	Namespace string
	Usings    []string
	Type      Skeleton
}

// NewUnit wraps a populated skeleton in its namespace and using list and
// computes the hint name.
func NewUnit(namespace string, usings []string, t Skeleton) Unit {
	return Unit{
		HintName:  HintName(namespace, t.Name),
		Namespace: namespace,
		Usings:    usings,
		Type:      t,
	}
}

// HintName derives the output identifier from the fully qualified
// namespace and the simple type name, with namespace separators
// normalized to underscores. Generic arity does not participate; two
// same-named types in one namespace differing only by arity collide
// (detected downstream by the driver).
func HintName(namespace, typeName string) string {
	return strings.ReplaceAll(namespace, ".", "_") + "_" + typeName
}
