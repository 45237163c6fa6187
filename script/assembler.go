package script

import (
	"github.com/Prof9/textpet-codec/command"
	"github.com/Prof9/textpet-codec/textcodec"
)

// AssembleOptions configures an Assembler: the Codec it routes
// TextElements through.
type AssembleOptions struct {
	Codec *textcodec.Codec
}

// Assembler re-emits a Script's Elements as bytes. For a Script
// produced by a Disassembler over the same database and codec,
// Run reproduces the original buffer exactly (§8 round-trip
// guarantee).
type Assembler struct {
	codec *textcodec.Codec
	out   []byte
}

// NewAssembler builds an Assembler from opts.
func NewAssembler(opts AssembleOptions) *Assembler {
	return &Assembler{codec: opts.Codec}
}

// Reset discards any bytes accumulated by a previous Run.
func (a *Assembler) Reset() {
	a.out = nil
}

// Run emits s's Elements in order and returns the accumulated bytes.
// DirectiveElements are skipped; they carry no byte-level meaning.
func (a *Assembler) Run(s *Script) ([]byte, error) {
	for _, el := range s.Elements {
		switch el.Kind {
		case KindCommand:
			b, err := assembleCommand(el.Command)
			if err != nil {
				return nil, err
			}
			a.out = append(a.out, b...)
		case KindText:
			b, err := a.codec.Encode(el.Text)
			if err != nil {
				return nil, err
			}
			a.out = append(a.out, b...)
		case KindByte:
			a.out = append(a.out, el.Byte)
		case KindDirective:
			// presentation-only, no byte-level effect.
		}
	}
	return a.out, nil
}

// assembleCommand writes cmd's base bytes and then overlays every
// element's values into the bit positions its parameter definitions
// declare, growing the buffer to cover trailing scalar fields and data
// rows exactly as command.Extract's extendEnd does on the decode side.
func assembleCommand(cmd *command.Command) ([]byte, error) {
	def := cmd.Def
	buf := append([]byte(nil), def.Base...)

	ensureLen := func(n int) {
		for len(buf) < n {
			buf = append(buf, 0)
		}
	}

	for _, el := range def.Elements {
		if !el.HasMultipleDataEntries() {
			if el.Param == nil {
				continue
			}
			value, _ := cmd.Scalar(el.Name)
			end := el.Param.Offset + (el.Param.Shift+el.Param.Bits+7)/8
			ensureLen(end)
			if err := el.Param.Write(buf, value); err != nil {
				return nil, err
			}
			continue
		}

		rows := cmd.Values[el.Name]
		n := len(rows)
		lengthEnd := el.Length.Offset + (el.Length.Shift+el.Length.Bits+7)/8
		ensureLen(lengthEnd)
		if err := el.Length.Write(buf, int64(n)); err != nil {
			return nil, err
		}

		stride := el.RowStride()
		rowsStart := len(buf)
		if lengthEnd > rowsStart {
			rowsStart = lengthEnd
		}
		ensureLen(rowsStart + n*stride)
		for r, row := range rows {
			rowBuf := buf[rowsStart+r*stride:]
			for i, p := range el.DataParams {
				if i >= len(row) {
					continue
				}
				if err := p.Write(rowBuf, row[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	return buf, nil
}
