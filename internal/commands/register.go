// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/dacolabs/dartgen/internal/session"
	"github.com/dacolabs/dartgen/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
// getenv supplies environment overrides; nil means os.Getenv.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = os.Getenv
	}

	rootCmd := &cobra.Command{
		Use:   "dartgen",
		Short: "Derive Dart model metadata from OpenAPI documents",
		Long: `dartgen builds the model representation a Dart client generator renders from:
reconciled discriminator mappings and data type identifiers for every
composed schema branch.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerInitCmd(rootCmd)
	registerModelsCmd(rootCmd, getenv)
	registerDiscriminatorsCmd(rootCmd, getenv)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerModelsCmd(parent *cobra.Command, getenv func(string) string) {
	cmd := newModelsCmd()
	cmd.PersistentPreRunE = session.PreRunLoad(getenv)

	cmd.AddCommand(newModelsDescribeCmd())

	parent.AddCommand(cmd)
}

func registerDiscriminatorsCmd(parent *cobra.Command, getenv func(string) string) {
	cmd := newDiscriminatorsCmd()
	cmd.PreRunE = session.PreRunLoad(getenv)
	parent.AddCommand(cmd)
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
