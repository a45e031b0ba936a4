// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/naming"
	"go.uber.org/zap"
)

// DeriveFunc computes the extension entries of a single node.
// It must be pure: the same node contents always yield the same entries.
type DeriveFunc func(n ir.Node) ir.Extensions

// DataTypeIdentifiers derives the data type as a Dart identifier, in
// lowerCamelCase and UpperCamelCase.
func DataTypeIdentifiers(n ir.Node) ir.Extensions {
	id := naming.ToVarName(n.GetDataType())
	return ir.Extensions{
		ir.DataTypeAsIdentifier:          id,
		ir.DataTypeAsIdentifierCamelCase: naming.Camelize(id),
	}
}

// WalkComposedSchemas visits anyOf, oneOf, allOf and then not, depth-first.
// apply runs on a branch before its own nested branches are visited.
// A nil set is a leaf.
func WalkComposedSchemas(cs *ir.ComposedSchemas, apply func(*ir.Property)) {
	if cs == nil {
		return
	}

	walkAll := func(branches []*ir.Property) {
		for _, p := range branches {
			if p == nil {
				continue
			}
			apply(p)
			WalkComposedSchemas(p.ComposedSchemas, apply)
		}
	}

	walkAll(cs.AnyOf)
	walkAll(cs.OneOf)
	walkAll(cs.AllOf)

	if cs.Not != nil {
		apply(cs.Not)
		WalkComposedSchemas(cs.Not.ComposedSchemas, apply)
	}
}

// Annotate applies derive to every node of the composed tree below node.
// The node itself is not annotated. It returns the number of nodes visited.
func Annotate(node ir.Node, derive DeriveFunc) int {
	if node == nil {
		return 0
	}
	var visited int
	WalkComposedSchemas(node.GetComposedSchemas(), func(p *ir.Property) {
		p.Extend(derive(p))
		visited++
	})
	return visited
}

// Annotator attaches derived data type metadata to models and their composed branches.
type Annotator struct {
	derive DeriveFunc
	logger *zap.SugaredLogger
}

// NewAnnotator creates an Annotator. A nil derive defaults to DataTypeIdentifiers,
// a nil logger discards output.
func NewAnnotator(derive DeriveFunc, logger *zap.SugaredLogger) *Annotator {
	if derive == nil {
		derive = DataTypeIdentifiers
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Annotator{derive: knownKeysOnly(derive, logger), logger: logger}
}

// knownKeysOnly drops entries outside the closed extension key set.
func knownKeysOnly(derive DeriveFunc, logger *zap.SugaredLogger) DeriveFunc {
	return func(n ir.Node) ir.Extensions {
		ext := derive(n)
		for k := range ext {
			if !k.Known() {
				logger.Debugw("dropping unknown extension key", "key", k, "dataType", n.GetDataType())
				delete(ext, k)
			}
		}
		return ext
	}
}

// AnnotateModel annotates the model's own data type, then every composed branch.
// Running it again on the same model leaves the model unchanged.
func (a *Annotator) AnnotateModel(m *ir.Model) {
	if m == nil {
		return
	}
	m.Extend(a.derive(m))
	visited := Annotate(m, a.derive)
	a.logger.Debugw("annotated model", "model", m.Name, "dataType", m.DataType, "branches", visited)
}
