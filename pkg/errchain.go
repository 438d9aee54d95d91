// Package pkg is a package that provides utilities for cleanrec.
package pkg

import (
	"errors"
	"strings"
)

// ErrorChain splits a wrapped error into one message per wrapping level,
// outermost first. Each message has the text of the error it wraps trimmed
// from its end, so "cleaning directory: permission denied" becomes
// ["cleaning directory", "permission denied"].
//
// A level whose message does not end with its cause's text is kept whole.
func ErrorChain(err error) []string {
	var chain []string

	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)

		if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}

		chain = append(chain, msg)
		err = next
	}

	return chain
}
