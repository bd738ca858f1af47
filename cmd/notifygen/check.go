// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/notifygen/pkg/generator"
)

// newCheckCmd creates the "check" command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that generated files are up to date",
		Long:  "Check regenerates all units in memory and compares them against the files on disk, printing a diff per stale or missing file. Exits nonzero when output is out of date.",
		RunE:  runCheck,
	}
}

// runCheck compares an in-memory pass against the on-disk output.
func runCheck(cmd *cobra.Command, args []string) error {
	root := viper.GetString("root")
	outDir := viper.GetString("out")
	if outDir == "" {
		outDir = filepath.Join(root, "Generated")
	}

	gen, err := generator.New(generator.Config{
		RootDir:     root,
		OutDir:      outDir,
		Attribute:   viper.GetString("attribute"),
		LangVersion: viper.GetString("lang-version"),
		Concurrency: viper.GetInt("concurrency"),
		Logger:      newLogger(),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	units, diags, err := gen.Preview(ctx)
	if err != nil {
		return err
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "error: %s\n", d.Error())
	}

	stale := 0
	dmp := diffmatchpatch.New()
	for _, unit := range units {
		path := filepath.Join(outDir, unit.HintName+".g.cs")
		existing, readErr := os.ReadFile(path)
		if readErr != nil {
			stale++
			fmt.Fprintf(os.Stderr, "missing: %s\n", path)
			continue
		}
		if string(existing) == unit.Source {
			continue
		}
		stale++
		fmt.Fprintf(os.Stderr, "stale: %s\n", path)
		diffs := dmp.DiffMain(string(existing), unit.Source, false)
		fmt.Fprint(os.Stderr, dmp.DiffPrettyText(diffs))
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d file(s) need regeneration", generator.ErrStaleOutput, stale)
	}
	if len(diags) > 0 {
		return fmt.Errorf("%d annotated type(s) rejected", len(diags))
	}
	fmt.Printf("%d generated file(s) up to date\n", len(units))
	return nil
}
