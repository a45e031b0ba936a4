// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dacolabs/dartgen/internal/emit"
	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/prompts"
	"github.com/dacolabs/dartgen/internal/session"
	"github.com/spf13/cobra"
)

type modelsDescribeOptions struct {
	output string // output format: text, json, yaml
}

func newModelsDescribeCmd() *cobra.Command {
	opts := &modelsDescribeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [MODEL]",
		Short: "Show detailed information about a model",
		Long:  `Display a generated model including its discriminator and every composed schema branch with its data type identifiers. If no model name is provided, an interactive selection prompt is shown.`,
		Example: `  # Interactive selection
  dartgen models describe

  # Show a model in human-readable format
  dartgen models describe Pet

  # Show a model as JSON
  dartgen models describe Pet -o json

  # Show a model as YAML
  dartgen models describe Pet -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			models, err := ctx.Models(cmd.Context())
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = prompts.SelectModel(models)
				if err != nil {
					return err
				}
			}
			return runModelsDescribe(cmd.OutOrStdout(), models, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runModelsDescribe(out io.Writer, models ir.Models, name string, opts *modelsDescribeOptions) error {
	m := models.Get(name)
	if m == nil {
		return fmt.Errorf("model %q not found", name)
	}

	switch opts.output {
	case "json":
		return emit.JSONWriter.Encode(out, m)
	case "yaml":
		return emit.YAMLWriter.Encode(out, m)
	case "text", "":
		printModelText(out, m)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected text, json or yaml)", opts.output)
	}
}

func printModelText(out io.Writer, m *ir.Model) {
	_, _ = fmt.Fprintf(out, "Name:        %s\n", m.Name)
	_, _ = fmt.Fprintf(out, "Class:       %s\n", m.ClassName)
	_, _ = fmt.Fprintf(out, "Data type:   %s\n", m.DataType)
	if m.Description != "" {
		_, _ = fmt.Fprintf(out, "Description: %s\n", m.Description)
	}
	if m.Parent != "" {
		_, _ = fmt.Fprintf(out, "Parent:      %s\n", m.Parent)
	}
	if len(m.Interfaces) > 0 {
		_, _ = fmt.Fprintf(out, "Interfaces:  %s\n", strings.Join(m.Interfaces, ", "))
	}
	printExtensions(out, m.Extensions, "")
	_, _ = fmt.Fprintln(out)

	if len(m.Properties) > 0 {
		_, _ = fmt.Fprintln(out, "Properties:")
		for _, p := range m.Properties {
			required := ""
			if p.Required {
				required = " (required)"
			}
			_, _ = fmt.Fprintf(out, "  - %s (%s)%s\n", p.BaseName, p.DataType, required)
		}
	} else {
		_, _ = fmt.Fprintln(out, "Properties:  (none)")
	}
	_, _ = fmt.Fprintln(out)

	if d := m.Discriminator; d != nil {
		_, _ = fmt.Fprintf(out, "Discriminator: %s\n", d.PropertyBaseName)
		for _, key := range d.Keys() {
			_, _ = fmt.Fprintf(out, "  %s -> %s\n", key, d.Mapping[key])
		}
	} else {
		_, _ = fmt.Fprintln(out, "Discriminator: (none)")
	}

	if !m.ComposedSchemas.IsEmpty() {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Composed schemas:")
		printComposedText(out, m.ComposedSchemas, "  ")
	}
}

type branchSet struct {
	name  string
	props []*ir.Property
}

func printComposedText(out io.Writer, cs *ir.ComposedSchemas, indent string) {
	sets := []branchSet{
		{"anyOf", cs.AnyOf},
		{"oneOf", cs.OneOf},
		{"allOf", cs.AllOf},
	}
	if cs.Not != nil {
		sets = append(sets, branchSet{"not", []*ir.Property{cs.Not}})
	}

	for _, set := range sets {
		if len(set.props) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s:\n", indent, set.name)
		for _, p := range set.props {
			if p == nil {
				continue
			}
			_, _ = fmt.Fprintf(out, "%s  - %s\n", indent, p.DataType)
			printExtensions(out, p.Extensions, indent+"    ")
			if !p.ComposedSchemas.IsEmpty() {
				printComposedText(out, p.ComposedSchemas, indent+"    ")
			}
		}
	}
}

func printExtensions(out io.Writer, ext ir.Extensions, indent string) {
	for _, key := range ir.KnownExtensionKeys() {
		if v, ok := ext.Get(key); ok {
			_, _ = fmt.Fprintf(out, "%s%s: %s\n", indent, key, v)
		}
	}
}
