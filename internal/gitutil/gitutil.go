// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitutil commits regenerated output files so a generation run
// can land as a single, recognizable commit.
package gitutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	authorName  = "notifygen"
	authorEmail = "noreply@notifygen"
)

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// ErrNothingToCommit is returned when no regenerated files were passed.
var ErrNothingToCommit = errors.New("nothing to commit")

// Repo wraps a go-git repository for the operations the CLI needs.
type Repo struct {
	repo    *gogit.Repository
	workDir string
}

// Open opens an existing git repository at the given directory. Returns
// ErrNoGit when the directory is not under version control.
func Open(workDir string) (*Repo, error) {
	r, err := gogit.PlainOpen(workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r, workDir: workDir}, nil
}

// IsDirty returns true if the working tree has uncommitted changes.
func (r *Repo) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	return !status.IsClean(), nil
}

// CommitGenerated stages the given paths (relative to the repository
// root) and commits them with a message listing the regenerated units.
func (r *Repo) CommitGenerated(paths []string) error {
	if len(paths) == 0 {
		return ErrNothingToCommit
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	// Stage only the files the generator wrote.
	for _, p := range paths {
		if _, err := wt.Add(p); err != nil {
			return fmt.Errorf("staging %s: %w", p, err)
		}
	}

	_, err = wt.Commit(commitMessage(paths), &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

// commitMessage summarizes a regeneration commit: a one-line subject and
// a sorted file list body.
func commitMessage(paths []string) string {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	var b strings.Builder
	fmt.Fprintf(&b, "notifygen: regenerate %d file(s)\n\n", len(sorted))
	for _, p := range sorted {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return b.String()
}
