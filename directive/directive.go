// Package directive names the presentation-only markers a script may
// carry alongside its commands and text.
package directive

// Kind identifies one of the recognized directive tokens. Directives
// carry no byte-level meaning; the assembler skips them entirely.
type Kind int

const (
	// TextArchive marks the start of a new archive in a flattened
	// multi-archive script stream.
	TextArchive Kind = iota
	// Script marks the start of a new script within an archive.
	Script
	// Mugshot names the speaker portrait associated with the
	// following text, carried in DirectiveElement.Value.
	Mugshot
	// TextBoxSeparator marks a boundary between two text boxes within
	// the same script.
	TextBoxSeparator
	// TextBoxSplit marks a mid-text-box line break.
	TextBoxSplit
	// Command annotates the following command with free-form
	// presentation text, carried in DirectiveElement.Value.
	Command
)

func (k Kind) String() string {
	switch k {
	case TextArchive:
		return "TextArchive"
	case Script:
		return "Script"
	case Mugshot:
		return "Mugshot"
	case TextBoxSeparator:
		return "TextBoxSeparator"
	case TextBoxSplit:
		return "TextBoxSplit"
	case Command:
		return "Command"
	default:
		return "Unknown"
	}
}
