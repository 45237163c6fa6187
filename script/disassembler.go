package script

import (
	"strings"

	"github.com/Prof9/textpet-codec/command"
	"github.com/Prof9/textpet-codec/textcodec"
)

// DisassembleOptions configures a Disassembler: the CommandDatabase it
// matches against and the Codec it decodes text through.
type DisassembleOptions struct {
	Database *command.Database
	Codec    *textcodec.Codec
}

// Disassembler drives the command matcher and text codec over a byte
// buffer to produce a Script. It is short-lived per invocation but
// keeps its matcher (itself immutable once built) across resets, so a
// caller disassembling many scripts against the same database — as
// the text-archive layout reader does, one sub-range per script — only
// pays the matcher construction cost once.
type Disassembler struct {
	matcher *command.Matcher
	codec   *textcodec.Codec
	dbName  string

	buf []byte
	pos int
	end int
}

// NewDisassembler builds a Disassembler from opts. Construction builds
// the command matcher once; Reset is then cheap to call repeatedly.
func NewDisassembler(opts DisassembleOptions) *Disassembler {
	return &Disassembler{
		matcher: command.NewMatcher(opts.Database),
		codec:   opts.Codec,
		dbName:  opts.Database.Name,
	}
}

// Reset points the Disassembler at a new sub-range [pos, end) of buf,
// discarding any state left over from a previous Run.
func (d *Disassembler) Reset(buf []byte, pos, end int) {
	d.buf = buf
	d.pos = pos
	d.end = end
}

// Run disassembles the range given to Reset into a Script. It stops
// when the end-of-script rule fires (see command.ShouldTerminate), at
// the end of the range, or at the end of buf, whichever comes first.
func (d *Disassembler) Run() (*Script, error) {
	s := &Script{Database: d.dbName}
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			s.Elements = append(s.Elements, NewTextElement(text.String()))
			text.Reset()
		}
	}

	limit := d.end
	if limit > len(d.buf) {
		limit = len(d.buf)
	}
	scriptBuf := d.buf[:limit]

	for d.pos < limit {
		if def, ok := d.matcher.Match(scriptBuf, d.pos); ok {
			flushText()
			matchPos := d.pos
			cmd, advance, err := command.Extract(def, scriptBuf, matchPos)
			if err != nil {
				return nil, err
			}
			s.Elements = append(s.Elements, NewCommandElement(cmd))
			d.pos += advance
			if command.ShouldTerminate(def, scriptBuf, matchPos, d.pos, limit) {
				return s, nil
			}
			continue
		}

		if value, consumed, ok := d.codec.DecodeOneCommit(d.buf[d.pos:limit]); ok {
			text.WriteString(value)
			d.pos += consumed
			continue
		}

		flushText()
		s.Elements = append(s.Elements, NewByteElement(d.buf[d.pos]))
		d.pos++
	}

	flushText()
	return s, nil
}
