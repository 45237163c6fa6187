package param

// Def describes a single bit-packed parameter field within a command's
// byte buffer: which bits carry it, what integer offset ("addend") is
// applied between the wire value and the presented value, and
// (optionally) which named ValueEncoding renders it as text.
type Def struct {
	Name        string
	Description string

	// Offset, Shift, and Bits locate the field: Offset is the starting
	// byte, Shift is the starting bit within that byte (0 = least
	// significant), and Bits is the field's total width. Fields may
	// span multiple bytes.
	Offset int
	Shift  int
	Bits   int

	// Addend is added to the raw wire value to produce the logical
	// value on read, and subtracted back out on write.
	Addend int64

	// IsJump marks a parameter that encodes a script-relative jump
	// target rather than a plain integer; JumpContinueValues lists the
	// raw (pre-addend) values that mean "execution falls through to the
	// next element" rather than "jump to an address".
	IsJump             bool
	JumpContinueValues []int64

	// ValueEncodingName, if non-empty, names a ValueEncoding in the
	// owning registry used to render this field as presentation text
	// instead of a bare decimal integer.
	ValueEncodingName string
}

// MaxValue returns the largest logical value (after Addend) this
// field's bit width can hold.
func (d *Def) MaxValue() int64 {
	return int64(MaxUnsigned(d.Bits)) + d.Addend
}

// ReadRaw extracts the field's raw wire value (before Addend) from buf.
func (d *Def) ReadRaw(buf []byte) (uint64, error) {
	return ReadBits(buf, d.Offset, d.Shift, d.Bits)
}

// Read extracts the field from buf and returns its logical (post-
// Addend) value. If ValueEncodingName is set, it also returns the
// value rendered through that encoding; registry may be nil if
// ValueEncodingName is empty.
func (d *Def) Read(buf []byte, registry *EncodingRegistry) (int64, string, error) {
	raw, err := d.ReadRaw(buf)
	if err != nil {
		return 0, "", err
	}
	value := int64(raw) + d.Addend

	if d.ValueEncodingName == "" {
		return value, "", nil
	}
	enc, err := registry.Lookup(d.ValueEncodingName)
	if err != nil {
		return 0, "", err
	}
	text, err := enc.Encode(value, d.Bits)
	if err != nil {
		return 0, "", err
	}
	return value, text, nil
}

// Write encodes value (logical, post-Addend) into buf's bit field. It
// fails with a *ValueOutOfRange if value minus Addend does not fit in
// Bits bits, or is negative.
func (d *Def) Write(buf []byte, value int64) error {
	raw := value - d.Addend
	if raw < 0 || uint64(raw) > MaxUnsigned(d.Bits) {
		return &ValueOutOfRange{Name: d.Name, Value: value, Max: MaxUnsigned(d.Bits)}
	}
	return WriteBits(buf, d.Offset, d.Shift, d.Bits, uint64(raw))
}

// IsContinueValue reports whether raw (a pre-Addend wire value as
// returned by ReadRaw) is one of this jump parameter's designated
// "fall through, do not jump" sentinels.
func (d *Def) IsContinueValue(raw int64) bool {
	for _, v := range d.JumpContinueValues {
		if v == raw {
			return true
		}
	}
	return false
}
