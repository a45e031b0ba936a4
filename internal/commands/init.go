// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dacolabs/dartgen/internal/config"
	"github.com/dacolabs/dartgen/internal/prompts"
	"github.com/dacolabs/dartgen/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	input          string
	output         string
	format         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new dartgen project",
		Long: `Initialize a new dartgen project with a dartgen.yaml configuration file
pointing at an existing OpenAPI document.`,
		Example: `  # Interactive mode
  dartgen init

  # Non-interactive
  dartgen init --input openapi.yaml --non-interactive
  dartgen init --input api/openapi.json --output build/models.json --format json --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			if !opts.nonInteractive {
				if err := prompts.RunInitForm(&opts.input, &opts.output, &opts.format); err != nil {
					return err
				}
			}
			return runInit(cmd.OutOrStdout(), cwd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "openapi.yaml", "Path to the OpenAPI document")
	cmd.Flags().StringVar(&opts.output, "output", "", "File the models are written to (stdout when empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatYAML, "Model output format (yaml or json)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(out io.Writer, dir string, opts *initOptions) error {
	// Check that the directory isn't already initialized
	cfgPath := filepath.Join(dir, session.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("dartgen.yaml already exists; project already initialized")
	}

	if opts.input == "" {
		return errors.New("input document is required")
	}
	inputPath := opts.input
	if !filepath.IsAbs(inputPath) {
		inputPath = filepath.Join(dir, inputPath)
	}
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input document not found: %s", opts.input)
	}

	cfg := config.Config{
		Version:      config.CurrentConfigVersion,
		Input:        opts.input,
		Output:       opts.output,
		OutputFormat: opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	output := opts.output
	if output == "" {
		output = "stdout"
	}
	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Input", Value: opts.input},
		{Label: "Output", Value: output},
		{Label: "Format", Value: opts.format},
	}, "Initialization completed")
	return nil
}
