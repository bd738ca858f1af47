// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// DiagnosticKind identifies which eligibility rule a type declaration
// violated. The set is closed: every rejection maps to exactly one kind.
type DiagnosticKind int

const (
	MustBePartial     DiagnosticKind = iota // missing partial modifier
	CannotBeFileLocal                       // carries the file modifier
	MustBeNonNested                         // declared inside another type
	MustHaveNamespace                       // no enclosing namespace
)

// String returns a stable identifier for the diagnostic kind.
func (k DiagnosticKind) String() string {
	switch k {
	case MustBePartial:
		return "MustBePartial"
	case CannotBeFileLocal:
		return "CannotBeFileLocal"
	case MustBeNonNested:
		return "MustBeNonNested"
	case MustHaveNamespace:
		return "MustHaveNamespace"
	default:
		return "Unknown"
	}
}

// Diagnostic describes why a type declaration was rejected. It is pinned
// to the offending type's name token and is immutable once created.
type Diagnostic struct {
	Kind     DiagnosticKind
	Span     Span
	TypeName string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Span.File, d.Span.Line, d.Span.Column, d.Message())
}

// Message renders the user-facing rule violation for the offending type.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case MustBePartial:
		return fmt.Sprintf("type %s must be declared partial to generate change notification", d.TypeName)
	case CannotBeFileLocal:
		return fmt.Sprintf("type %s cannot be file-local", d.TypeName)
	case MustBeNonNested:
		return fmt.Sprintf("type %s cannot be nested inside another type", d.TypeName)
	case MustHaveNamespace:
		return fmt.Sprintf("type %s must be declared inside a namespace", d.TypeName)
	default:
		return fmt.Sprintf("type %s is not eligible", d.TypeName)
	}
}
