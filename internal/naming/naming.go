// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming derives Dart identifiers from names and data type strings.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// specialCharReplacements spells out characters that cannot appear in an identifier.
var specialCharReplacements = map[rune]string{
	'$':  "Dollar",
	'^':  "Caret",
	'|':  "Pipe",
	'=':  "Equal",
	'*':  "Star",
	'&':  "Ampersand",
	'%':  "Percent",
	'#':  "Hash",
	'@':  "At",
	'!':  "Exclamation",
	'+':  "Plus",
	':':  "Colon",
	';':  "Semicolon",
	'>':  "Greater_Than",
	'<':  "Less_Than",
	'.':  "Period",
	'?':  "Question_Mark",
	',':  "Comma",
	'\'': "Quote",
	'"':  "Double_Quote",
	'/':  "Slash",
	'\\': "Back_Slash",
	'(':  "Left_Parenthesis",
	')':  "Right_Parenthesis",
	'{':  "Left_Curly_Bracket",
	'}':  "Right_Curly_Bracket",
	'[':  "Left_Square_Bracket",
	']':  "Right_Square_Bracket",
	'~':  "Tilde",
	'`':  "Backtick",
}

// reservedWords are Dart keywords and built-in identifiers.
var reservedWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`abstract as assert async await base break case catch
		class const continue covariant default deferred do dynamic else enum export extends
		extension external factory false final finally for Function get hide if implements
		import in interface is late library mixin new null on operator part required rethrow
		return sealed set show static super switch sync this throw true try typedef var void
		when while with yield`) {
		reservedWords[w] = struct{}{}
	}
}

// IsReservedWord reports whether s is a Dart keyword.
func IsReservedWord(s string) bool {
	_, ok := reservedWords[s]
	return ok
}

// Sanitize rewrites s into underscore-separated identifier words.
// Special characters become words (e.g. "<" => "_Less_Than_"),
// hyphens and any other rune outside [A-Za-z0-9] become "_".
func Sanitize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			sb.WriteByte('_')
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(r)
		default:
			if word, ok := specialCharReplacements[r]; ok {
				sb.WriteString("_" + word + "_")
			} else {
				sb.WriteByte('_')
			}
		}
	}
	return sb.String()
}

// ToVarName converts a name or data type string into a lowerCamelCase
// Dart identifier, e.g. List<String> => listLessThanStringGreaterThan.
// Names made only of upper-case letters and underscores are kept as is.
func ToVarName(name string) string {
	if name == "" {
		return name
	}

	s := Sanitize(name)
	if isUpperSnake(s) {
		return s
	}

	s = lowerFirst(camelize(s))
	if s == "" {
		return s
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "n" + s
	}
	if IsReservedWord(s) {
		s = "$" + s
	}
	return s
}

// ToClassName converts a schema name into an UpperCamelCase Dart type name.
func ToClassName(name string) string {
	s := Camelize(Sanitize(name))
	if s == "" {
		return s
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "Model" + s
	}
	if IsReservedWord(s) {
		s = "Model" + s
	}
	return s
}

// Camelize joins "_", "-" or space separated words with each word capitalized.
// An identifier without separators only gets its first letter upper-cased.
func Camelize(s string) string {
	return upperFirst(camelize(s))
}

func camelize(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(upperFirst(w))
	}
	return sb.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func isUpperSnake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
