package script

import (
	"github.com/Prof9/textpet-codec/command"
	"github.com/Prof9/textpet-codec/directive"
)

// Kind discriminates the four alternatives an Element can hold. Only
// the fields documented against each Kind are populated.
type Kind int

const (
	// KindCommand carries Command.
	KindCommand Kind = iota
	// KindText carries Text.
	KindText
	// KindByte carries Byte.
	KindByte
	// KindDirective carries DirectiveKind and DirectiveValue.
	KindDirective
)

// Element is one entry of a Script: a matched Command, a run of
// decoded text, a single raw undecodable byte, or a presentation-only
// directive.
type Element struct {
	Kind Kind

	Command *command.Command
	Text    string
	Byte    byte

	DirectiveKind  directive.Kind
	DirectiveValue string
}

// NewCommandElement wraps cmd as a Command element.
func NewCommandElement(cmd *command.Command) Element {
	return Element{Kind: KindCommand, Command: cmd}
}

// NewTextElement wraps s as a Text element.
func NewTextElement(s string) Element {
	return Element{Kind: KindText, Text: s}
}

// NewByteElement wraps b as a raw Byte element.
func NewByteElement(b byte) Element {
	return Element{Kind: KindByte, Byte: b}
}

// NewDirectiveElement wraps kind (and its optional value) as a
// Directive element.
func NewDirectiveElement(kind directive.Kind, value string) Element {
	return Element{Kind: KindDirective, DirectiveKind: kind, DirectiveValue: value}
}

// Script is an ordered sequence of Elements read from, or destined
// for, a single byte range, together with the name of the
// CommandDatabase it was matched against.
type Script struct {
	Database string
	Elements []Element
}
