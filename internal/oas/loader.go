// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package oas provides OpenAPI document loading and schema traversal utilities.
package oas

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("format not supported")

// Loader loads OpenAPI documents from a filesystem.
type Loader struct {
	fsys     fs.FS
	validate bool
}

// NewLoader creates a Loader that reads from the given filesystem.
// External $refs are resolved relative to the referencing file inside fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// WithValidation makes LoadFile validate the document after loading.
func (l *Loader) WithValidation(validate bool) *Loader {
	l.validate = validate
	return l
}

// LoadFile loads and parses an OpenAPI document.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (*openapi3.T, error) {
	if !IsSupportedFile(filePath) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}

	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(_ *openapi3.Loader, location *url.URL) ([]byte, error) {
		return fs.ReadFile(l.fsys, path.Clean(strings.TrimPrefix(location.Path, "/")))
	}

	doc, err := loader.LoadFromDataWithPath(data, &url.URL{Path: filePath})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filePath, err)
	}

	if l.validate {
		if err := doc.Validate(ctx); err != nil {
			return nil, fmt.Errorf("invalid OpenAPI document %s: %w", filePath, err)
		}
	}

	return doc, nil
}

// IsSupportedFile reports whether the file extension is a known document format.
func IsSupportedFile(filePath string) bool {
	switch path.Ext(filePath) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
