// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/petar-djukic/notifygen/internal/generate"
	"github.com/petar-djukic/notifygen/internal/gitutil"
	"github.com/petar-djukic/notifygen/pkg/types"
)

// New validates the config and returns a ready-to-use Generator. It does
// not scan the source tree; that happens in Run.
func New(cfg Config) (Generator, error) {
	if cfg.RootDir == "" {
		return nil, fmt.Errorf("%w: RootDir is required", ErrInvalidConfig)
	}
	info, err := os.Stat(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, cfg.RootDir)
	}

	if cfg.OutDir == "" {
		cfg.OutDir = filepath.Join(cfg.RootDir, "Generated")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &generatorAdapter{cfg: cfg}, nil
}

// generatorAdapter adapts internal/generate.Runner to the public
// Generator interface.
type generatorAdapter struct {
	cfg Config
}

func (g *generatorAdapter) runner() *generate.Runner {
	return generate.NewRunner(generate.Deps{
		RootDir:     g.cfg.RootDir,
		Attribute:   g.cfg.Attribute,
		LangVersion: g.cfg.LangVersion,
		Concurrency: g.cfg.Concurrency,
		Logger:      g.cfg.Logger,
	})
}

func (g *generatorAdapter) Run(ctx context.Context) (*Result, error) {
	collect := &collectSink{}
	stats, err := g.runner().Run(ctx, collect, collect)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Diagnostics: collect.diags,
		Candidates:  stats.Candidates,
		Generated:   stats.Generated,
	}

	if len(collect.units) > 0 {
		if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	for _, unit := range collect.units {
		path := filepath.Join(g.cfg.OutDir, unit.HintName+generate.GeneratedSuffix)
		if err := os.WriteFile(path, []byte(unit.Source), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		rel, relErr := filepath.Rel(g.cfg.RootDir, path)
		if relErr != nil {
			rel = path
		}
		result.Files = append(result.Files, rel)
		g.cfg.Logger.Info("wrote generated file", zap.String("path", rel))
	}

	if g.cfg.Commit && len(result.Files) > 0 {
		repo, err := gitutil.Open(g.cfg.RootDir)
		if err != nil {
			return nil, err
		}
		if err := repo.CommitGenerated(result.Files); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (g *generatorAdapter) Preview(ctx context.Context) ([]types.GeneratedUnit, []types.Diagnostic, error) {
	collect := &collectSink{}
	if _, err := g.runner().Run(ctx, collect, collect); err != nil {
		return nil, nil, err
	}
	return collect.units, collect.diags, nil
}

// collectSink gathers sink traffic in memory. The driver may report from
// multiple goroutines in future hosts, so the sink locks.
type collectSink struct {
	mu    sync.Mutex
	diags []types.Diagnostic
	units []types.GeneratedUnit
}

func (s *collectSink) Report(d types.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, d)
}

func (s *collectSink) Register(u types.GeneratedUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = append(s.units, u)
	return nil
}
