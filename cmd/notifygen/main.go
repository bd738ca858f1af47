// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command notifygen generates change-notification partial-type
// boilerplate for annotated C# type declarations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "notifygen",
		Short: "Change-notification boilerplate generator for C#",
		Long:  "notifygen scans C# sources for types annotated with the trigger attribute and emits a partial-type companion file per type with a PropertyChanged event and a set-field-and-notify helper.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("root", ".", "Source root directory to scan")
	rootCmd.PersistentFlags().String("out", "", "Output directory (default <root>/Generated)")
	rootCmd.PersistentFlags().String("attribute", "NotifyPropertyChanged", "Trigger attribute marking candidate types")
	rootCmd.PersistentFlags().String("lang-version", "8.0", "C# language version of the target project")
	rootCmd.PersistentFlags().Int("concurrency", 0, "Parser goroutines (0 = NumCPU)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	// Bind flags to viper.
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("attribute", rootCmd.PersistentFlags().Lookup("attribute"))
	viper.BindPFlag("lang-version", rootCmd.PersistentFlags().Lookup("lang-version"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: NOTIFYGEN_ATTRIBUTE, NOTIFYGEN_LANG_VERSION, etc.
	viper.SetEnvPrefix("NOTIFYGEN")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".notifygen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print notifygen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("notifygen %s\n", version)
		},
	}
}
