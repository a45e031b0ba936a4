// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"path/filepath"

	"github.com/dacolabs/dartgen/internal/emit"
	"github.com/dacolabs/dartgen/internal/prompts"
	"github.com/dacolabs/dartgen/internal/session"
	"github.com/spf13/cobra"
)

type modelsOptions struct {
	output string // output format: yaml, json
	out    string // output file
}

func newModelsCmd() *cobra.Command {
	opts := &modelsOptions{}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Generate the model representation of the OpenAPI document",
		Long: `Build one model per component schema, reconcile discriminator mappings and
annotate every composed schema branch with its data type identifiers.
The result is printed, or written to the configured output file.`,
		Example: `  # Print models as configured
  dartgen models

  # Print models as JSON
  dartgen models -o json

  # Write models to a file
  dartgen models --out build/models.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runModels(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format (yaml, json); defaults to outputFormat")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output file; defaults to the configured output, or stdout")

	return cmd
}

func runModels(cmd *cobra.Command, ctx *session.Context, opts *modelsOptions) error {
	format := opts.output
	if format == "" {
		format = ctx.Config.OutputFormat
	}
	writer, err := emit.ForFormat(format)
	if err != nil {
		return err
	}

	models, err := ctx.Models(cmd.Context())
	if err != nil {
		return err
	}
	doc := emit.NewDocument(filepath.Base(ctx.InputPath), models)

	out := opts.out
	if out == "" {
		out = ctx.Config.Output
	}
	if out == "" {
		return writer.Encode(cmd.OutOrStdout(), doc)
	}

	if err := writer.WriteFile(out, doc); err != nil {
		return err
	}
	ctx.Logger.Infow("wrote models", "path", out, "count", len(models))
	prompts.PrintResult(cmd.ErrOrStderr(), []prompts.ResultField{
		{Label: "Models", Value: out},
	}, "")
	return nil
}
