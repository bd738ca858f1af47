// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package generate drives the generation pass: scan for C# sources, find
// annotated type declarations, validate each one, and hand either a
// diagnostic or a finished emission unit to the caller's sinks. Types are
// processed independently; one rejection never affects another type.
package generate

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/petar-djukic/notifygen/internal/codegen"
	"github.com/petar-djukic/notifygen/internal/frontend"
	"github.com/petar-djukic/notifygen/internal/syntax"
	"github.com/petar-djukic/notifygen/internal/validate"
	"github.com/petar-djukic/notifygen/pkg/types"
)

// DefaultAttribute marks candidate types when no attribute is configured.
const DefaultAttribute = "NotifyPropertyChanged"

// DefaultLangVersion is the assumed C# language version when none is
// configured.
const DefaultLangVersion = "8.0"

// GeneratedSuffix names emitted files; files carrying it are never
// re-scanned as input.
const GeneratedSuffix = ".g.cs"

// skipDirs contains directory names the scanner never descends into.
var skipDirs = map[string]bool{
	".git": true,
	"bin":  true,
	"obj":  true,
}

// DiagnosticSink receives rejection diagnostics. Implementations must be
// safe for concurrent use if the host parallelizes across types.
type DiagnosticSink interface {
	Report(d types.Diagnostic)
}

// OutputSink receives finished emission units.
type OutputSink interface {
	Register(unit types.GeneratedUnit) error
}

// Deps holds the configuration and collaborators of a generation pass.
type Deps struct {
	RootDir     string
	Attribute   string // trigger attribute name; DefaultAttribute when empty
	LangVersion string // C# language version; DefaultLangVersion when empty
	Concurrency int    // parser goroutines; NumCPU when <= 0
	Logger      *zap.Logger
}

// Stats summarizes one generation pass.
type Stats struct {
	FilesScanned int
	Candidates   int
	Generated    int
	Rejected     int
}

// Runner executes generation passes. It holds no state across passes.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner, applying defaults for unset dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Attribute == "" {
		deps.Attribute = DefaultAttribute
	}
	if deps.LangVersion == "" {
		deps.LangVersion = DefaultLangVersion
	}
	if deps.Concurrency <= 0 {
		deps.Concurrency = runtime.NumCPU()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Runner{deps: deps}
}

// Run scans the root directory, parses all C# files, and processes every
// annotated type. Each candidate yields exactly one of {diagnostic,
// emission unit}. Returns an error on I/O failures, sink failures, or
// hint-name collisions within the pass.
func (r *Runner) Run(ctx context.Context, diags DiagnosticSink, out OutputSink) (Stats, error) {
	var stats Stats

	paths, err := r.collectPaths()
	if err != nil {
		return stats, err
	}
	stats.FilesScanned = len(paths)

	units, err := r.parseAll(ctx, paths)
	if err != nil {
		return stats, err
	}

	nullable := codegen.NullableContext(r.deps.LangVersion)
	hintOwners := make(map[string]string)

	for _, unit := range units {
		for _, decl := range candidates(unit, r.deps.Attribute) {
			stats.Candidates++

			gen, diag := r.Process(decl, nullable)
			if diag != nil {
				stats.Rejected++
				r.deps.Logger.Debug("type rejected",
					zap.String("type", decl.Name),
					zap.String("rule", diag.Kind.String()))
				diags.Report(*diag)
				continue
			}

			if owner, dup := hintOwners[gen.HintName]; dup {
				return stats, fmt.Errorf("hint name %s generated for both %s and %s.%s",
					gen.HintName, owner, gen.Namespace, gen.Type.Name)
			}
			hintOwners[gen.HintName] = gen.Namespace + "." + gen.Type.Name

			if err := out.Register(types.GeneratedUnit{
				HintName: gen.HintName,
				Source:   codegen.Render(*gen),
			}); err != nil {
				return stats, fmt.Errorf("registering %s: %w", gen.HintName, err)
			}
			stats.Generated++
			r.deps.Logger.Debug("unit generated", zap.String("hint", gen.HintName))
		}
	}

	return stats, nil
}

// Process runs the per-type pipeline: validate, build the skeleton,
// synthesize members, wrap into an emission unit. Exactly one of the two
// results is non-nil. Synthesis never runs on an ineligible type.
func (r *Runner) Process(decl *syntax.TypeDecl, nullable bool) (*codegen.Unit, *types.Diagnostic) {
	ns, diag := validate.Check(decl)
	if diag != nil {
		return nil, diag
	}

	members := []codegen.Member{codegen.NewSignal(nullable)}
	for _, f := range decl.Fields {
		if !wrappable(f) {
			continue
		}
		members = append(members, codegen.NewPropertyWrapper(f.Type, f.Name))
	}
	members = append(members, codegen.NewSetFieldMethod())

	skel := codegen.NewSkeleton(decl, nullable).WithMembers(members...)
	unit := codegen.NewUnit(ns, withHandlerImport(syntax.Usings(decl)), skel)
	return &unit, nil
}

// wrappable reports whether a field gets a generated property wrapper:
// instance fields with storage, whose derived property name does not
// collide with the field itself.
func wrappable(f *syntax.FieldDecl) bool {
	for _, banned := range []string{"static", "const", "readonly"} {
		if f.HasModifier(banned) {
			return false
		}
	}
	return codegen.PropertyName(f.Name) != f.Name
}

// withHandlerImport ensures the handler namespace is present, preserving
// the source order of existing directives.
func withHandlerImport(usings []string) []string {
	for _, u := range usings {
		if u == codegen.HandlerNamespace {
			return usings
		}
	}
	return append(usings, codegen.HandlerNamespace)
}

// candidates returns every type in the unit carrying the trigger
// attribute, in declaration order, descending into namespaces and nested
// types. Nested candidates are included so they can be rejected with a
// precise diagnostic rather than silently skipped.
func candidates(unit *syntax.CompilationUnit, attribute string) []*syntax.TypeDecl {
	var found []*syntax.TypeDecl

	var visitType func(t *syntax.TypeDecl)
	visitType = func(t *syntax.TypeDecl) {
		if t.HasAttribute(attribute) {
			found = append(found, t)
		}
		for _, nested := range t.Nested {
			visitType(nested)
		}
	}

	var visitNamespace func(ns *syntax.NamespaceDecl)
	visitNamespace = func(ns *syntax.NamespaceDecl) {
		for _, t := range ns.Types {
			visitType(t)
		}
		for _, nested := range ns.Nested {
			visitNamespace(nested)
		}
	}

	for _, t := range unit.Types {
		visitType(t)
	}
	for _, ns := range unit.Namespaces {
		visitNamespace(ns)
	}
	return found
}

// collectPaths walks the root directory for C# sources, skipping build
// output, VCS metadata, and previously generated files.
func (r *Runner) collectPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(r.deps.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && path != r.deps.RootDir {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".cs") || strings.HasSuffix(name, GeneratedSuffix) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", r.deps.RootDir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// parseAll parses the given files with a bounded worker pool and returns
// the units in path order, so downstream processing is deterministic.
func (r *Runner) parseAll(ctx context.Context, paths []string) ([]*syntax.CompilationUnit, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	type parsed struct {
		idx  int
		unit *syntax.CompilationUnit
		err  error
	}

	jobs := make(chan int, len(paths))
	results := make(chan parsed, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < r.deps.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				unit, err := frontend.ParseFile(ctx, paths[idx])
				results <- parsed{idx: idx, unit: unit, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	units := make([]*syntax.CompilationUnit, len(paths))
	for p := range results {
		if p.err != nil {
			return nil, p.err
		}
		units[p.idx] = p.unit
	}
	return units, nil
}
