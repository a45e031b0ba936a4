// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/session"
	"github.com/spf13/cobra"
)

func newDiscriminatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discriminators",
		Short: "List reconciled discriminator mappings",
		Long: `List every model with a discriminator and the mapping kept after
reconciliation. When a schema declares an explicit mapping, only its keys remain.`,
		Example: `  # List discriminator mappings
  dartgen discriminators`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			models, err := ctx.Models(cmd.Context())
			if err != nil {
				return err
			}
			return runDiscriminators(cmd.OutOrStdout(), models)
		},
	}

	return cmd
}

func runDiscriminators(out io.Writer, models ir.Models) error {
	var found bool
	for _, m := range models {
		if m.Discriminator != nil {
			found = true
			break
		}
	}
	if !found {
		_, _ = fmt.Fprintln(out, "No discriminators defined.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MODEL\tPROPERTY\tVALUE\tTARGET")

	for _, m := range models {
		d := m.Discriminator
		if d == nil {
			continue
		}
		keys := d.Keys()
		if len(keys) == 0 {
			_, _ = fmt.Fprintf(w, "%s\t%s\t-\t-\n", m.Name, d.PropertyBaseName)
			continue
		}
		for _, key := range keys {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, d.PropertyBaseName, key, d.Mapping[key])
		}
	}

	return w.Flush()
}
