// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ir

// ExtensionKey names a piece of derived metadata attached to a node.
// The set of keys is closed; templates read them by these exact names.
type ExtensionKey string

const (
	// DataTypeAsIdentifier holds the data type as a valid Dart identifier,
	// e.g. List<String> => listLessThanStringGreaterThan.
	DataTypeAsIdentifier ExtensionKey = "dataTypeAsIdentifier"

	// DataTypeAsIdentifierCamelCase holds the data type as a valid Dart
	// identifier in CamelCase, e.g. List<String> => ListLessThanStringGreaterThan.
	DataTypeAsIdentifierCamelCase ExtensionKey = "dataTypeAsIdentifierCamelCase"
)

// KnownExtensionKeys returns every key the derivation pass may write.
func KnownExtensionKeys() []ExtensionKey {
	return []ExtensionKey{DataTypeAsIdentifier, DataTypeAsIdentifierCamelCase}
}

// Known reports whether k belongs to the closed key set.
func (k ExtensionKey) Known() bool {
	for _, known := range KnownExtensionKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// Extensions is the typed side-channel of derived metadata on a node.
type Extensions map[ExtensionKey]string

// Get returns the value stored under k, if any.
func (e Extensions) Get(k ExtensionKey) (string, bool) {
	v, ok := e[k]
	return v, ok
}

// Merge writes every entry of other into e, overwriting existing keys.
// A nil receiver is allocated on demand, so callers must use the result.
func (e Extensions) Merge(other Extensions) Extensions {
	if len(other) == 0 {
		return e
	}
	if e == nil {
		e = make(Extensions, len(other))
	}
	for k, v := range other {
		e[k] = v
	}
	return e
}
