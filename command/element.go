package command

import "github.com/Prof9/textpet-codec/param"

// CommandElementDef is one named element of a CommandDef: either a
// single scalar Param, or a Length param followed by a repeated block
// of DataParams rows. Exactly one of (Param) or (Length, DataParams)
// is populated.
type CommandElementDef struct {
	Name string

	Param *param.Def

	Length     *param.Def
	DataParams []*param.Def
}

// HasMultipleDataEntries reports whether this element is a data block
// (length-prefixed, repeated rows) rather than a scalar.
func (d *CommandElementDef) HasMultipleDataEntries() bool {
	return len(d.DataParams) > 0
}

// RowStride returns the byte width of one data row: the smallest byte
// count covering the highest bit referenced by any of DataParams.
func (d *CommandElementDef) RowStride() int {
	maxBit := 0
	for _, p := range d.DataParams {
		if bit := p.Offset*8 + p.Shift + p.Bits; bit > maxBit {
			maxBit = bit
		}
	}
	return (maxBit + 7) / 8
}

func (d *CommandElementDef) clone() *CommandElementDef {
	out := &CommandElementDef{Name: d.Name}
	if d.Param != nil {
		out.Param = cloneParam(d.Param)
	}
	if d.Length != nil {
		out.Length = cloneParam(d.Length)
	}
	if len(d.DataParams) > 0 {
		out.DataParams = make([]*param.Def, len(d.DataParams))
		for i, p := range d.DataParams {
			out.DataParams[i] = cloneParam(p)
		}
	}
	return out
}

func cloneParam(p *param.Def) *param.Def {
	cp := *p
	cp.JumpContinueValues = append([]int64(nil), p.JumpContinueValues...)
	return &cp
}

func deepCopyElements(elems []*CommandElementDef) []*CommandElementDef {
	out := make([]*CommandElementDef, len(elems))
	for i, e := range elems {
		out[i] = e.clone()
	}
	return out
}
