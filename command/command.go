package command

// Command is an instantiated CommandDef plus its decoded element
// values: element name -> rows -> scalar values. A scalar element has
// exactly one row of one value; a data element has one row per
// repeated entry. Texts mirrors Values with each value's rendered
// ValueEncoding text where the element's parameter declared one.
type Command struct {
	Def    *CommandDef
	Values map[string][][]int64
	Texts  map[string][][]string
}

// NewCommand returns an instance of def with empty value maps.
func NewCommand(def *CommandDef) *Command {
	return &Command{
		Def:    def,
		Values: make(map[string][][]int64),
		Texts:  make(map[string][][]string),
	}
}

// Row returns element's values at the given row index, or nil if out
// of range.
func (c *Command) Row(element string, row int) []int64 {
	rows := c.Values[element]
	if row < 0 || row >= len(rows) {
		return nil
	}
	return rows[row]
}

// Scalar returns element's single value, for elements with exactly
// one row of one value.
func (c *Command) Scalar(element string) (int64, bool) {
	rows := c.Values[element]
	if len(rows) != 1 || len(rows[0]) != 1 {
		return 0, false
	}
	return rows[0][0], true
}
