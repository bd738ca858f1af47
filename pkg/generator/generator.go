// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package generator defines the public interface for notifygen, a
// change-notification boilerplate generator for annotated C# types.
package generator

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/petar-djukic/notifygen/pkg/types"
)

// Error types for the Generator API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrStaleOutput   = errors.New("generated output is out of date")
)

// Config configures a Generator instance.
type Config struct {
	RootDir     string      // Source root to scan (required)
	OutDir      string      // Output directory (default: <RootDir>/Generated)
	Attribute   string      // Trigger attribute name (default: NotifyPropertyChanged)
	LangVersion string      // C# language version (default: 8.0)
	Concurrency int         // Parser goroutines (default: NumCPU)
	Commit      bool        // Commit written files to git after a run
	Logger      *zap.Logger // Structured logger (default: zap.NewNop)
}

// Result holds the outcome of a Generator.Run invocation.
type Result struct {
	Files       []string           // Paths of files written, relative to RootDir
	Diagnostics []types.Diagnostic // Rejections reported during the pass
	Candidates  int                // Annotated types visited
	Generated   int                // Emission units produced
}

// Success reports whether the pass rejected no types.
func (r *Result) Success() bool {
	return len(r.Diagnostics) == 0
}

// Generator runs generation passes against a source tree.
type Generator interface {
	// Run scans for annotated types, validates each, writes one
	// <HintName>.g.cs file per eligible type, and reports rejections in
	// the result. A non-nil error means the pass itself failed (I/O,
	// hint-name collision); rejected types alone never fail the run.
	Run(ctx context.Context) (*Result, error)

	// Preview performs the same pass in memory without touching disk,
	// returning the units that Run would write.
	Preview(ctx context.Context) ([]types.GeneratedUnit, []types.Diagnostic, error)
}
