// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/dartgen/internal/ir"
)

// ModelOptions builds one select option per model, labeled with its data type
// and a shortened description.
func ModelOptions(models ir.Models) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(models))
	for _, m := range models {
		label := m.Name
		if m.DataType != "" && m.DataType != m.ClassName {
			label = fmt.Sprintf("%s (%s)", label, m.DataType)
		}
		if desc := m.Description; desc != "" {
			if utf8.RuneCountInString(desc) > 40 {
				desc = string([]rune(desc)[:37]) + "..."
			}
			label = fmt.Sprintf("%s - %s", label, desc)
		}
		options = append(options, huh.NewOption(label, m.Name))
	}
	return options
}

// SelectModel prompts for one of models and returns its schema name.
func SelectModel(models ir.Models) (string, error) {
	if len(models) == 0 {
		return "", errors.New("no models defined")
	}

	var selected string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select model to describe").
				Options(ModelOptions(models)...).
				Filtering(true).
				Value(&selected).
				Height(10),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return "", err
	}

	return selected, nil
}
