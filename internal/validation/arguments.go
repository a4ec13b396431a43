// Package validation guards user-supplied input before it reaches a command
// invocation.
package validation

import (
	"strings"
	"unicode"

	"pdbctl/internal/errors"
)

// deniedSequences are shell metacharacter sequences associated with command
// injection. The check runs on the raw string before any quote handling, so
// no quoting combination can smuggle one past it.
var deniedSequences = []string{
	";",
	"&&",
	"||",
	"`",
	"$(",
	"|",
	">",
	"<",
}

// Arguments tokenizes a raw argument string, rejecting the whole input when
// any denied sequence appears anywhere in it. Tokenization splits on
// whitespace and honors double-quoted spans; quotes are stripped from the
// resulting tokens. An empty input yields an empty token list.
func Arguments(raw string) ([]string, error) {
	for _, seq := range deniedSequences {
		if strings.Contains(raw, seq) {
			return nil, errors.InvalidCharacter(seq)
		}
	}
	return splitQuoted(raw)
}

// splitQuoted splits s on whitespace, treating double-quoted spans as part of
// a single token. A quoted empty span ("") produces an empty token.
func splitQuoted(s string) ([]string, error) {
	tokens := []string{}
	var current []rune
	inQuote := false
	sawQuote := false

	flush := func() {
		if len(current) > 0 || sawQuote {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
		sawQuote = false
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			sawQuote = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			current = append(current, r)
		}
	}

	if inQuote {
		return nil, errors.InvalidInput("unclosed double quote in arguments")
	}
	flush()
	return tokens, nil
}

// NonEmptyString validates that a string is not empty or only whitespace.
func NonEmptyString(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.ValidationFailed(field, s, "cannot be empty or only whitespace")
	}
	return nil
}
