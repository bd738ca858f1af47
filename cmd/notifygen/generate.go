// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/notifygen/pkg/generator"
)

// newGenerateCmd creates the "generate" command.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate companion files for annotated types",
		Long:  "Generate scans the source root, validates each annotated type, writes one <HintName>.g.cs file per eligible type, and prints a diagnostic per rejected type.",
		RunE:  runGenerate,
	}

	cmd.Flags().Bool("commit", false, "Commit written files to git")

	return cmd
}

// runGenerate executes a generation pass and reports the outcome.
func runGenerate(cmd *cobra.Command, args []string) error {
	commit, _ := cmd.Flags().GetBool("commit")

	gen, err := generator.New(generator.Config{
		RootDir:     viper.GetString("root"),
		OutDir:      viper.GetString("out"),
		Attribute:   viper.GetString("attribute"),
		LangVersion: viper.GetString("lang-version"),
		Concurrency: viper.GetInt("concurrency"),
		Commit:      commit,
		Logger:      newLogger(),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "error: %s\n", d.Error())
	}
	for _, f := range result.Files {
		fmt.Println(f)
	}

	if !result.Success() {
		return fmt.Errorf("%d of %d annotated type(s) rejected", len(result.Diagnostics), result.Candidates)
	}
	return nil
}

// newLogger builds the CLI logger: debug-level development output when
// --verbose is set, silent otherwise.
func newLogger() *zap.Logger {
	if !viper.GetBool("verbose") {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
