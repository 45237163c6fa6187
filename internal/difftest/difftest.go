// Package difftest formats human-readable diffs for test failures,
// shared by package tests that compare long byte or rune sequences.
package difftest

import (
	"regexp"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var leadingWhitespace = regexp.MustCompile(`(?m)^`)

// Bytes returns a pretty-printed diff between expected and actual,
// indented for embedding in a t.Errorf message.
func Bytes(expected, actual []byte) string {
	return Runes(bytesAsRunes(expected), bytesAsRunes(actual))
}

// Runes returns a pretty-printed diff between expected and actual.
func Runes(expected, actual []rune) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(expected, actual, false)
	pretty := dmp.DiffPrettyText(diffs)
	return leadingWhitespace.ReplaceAllLiteralString(pretty, "\t")
}

// Strings returns a pretty-printed diff between expected and actual.
func Strings(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	pretty := dmp.DiffPrettyText(diffs)
	return leadingWhitespace.ReplaceAllLiteralString(pretty, "\t")
}

func bytesAsRunes(in []byte) []rune {
	out := make([]rune, len(in))
	for i, b := range in {
		out[i] = rune(b)
	}
	return out
}
