package archive

// PointerBase selects how a pointer-table entry's offset field is
// interpreted.
type PointerBase int

const (
	// LayoutRelativeToArchive treats a pointer entry's offset as
	// absolute from byte 0 of the archive.
	LayoutRelativeToArchive PointerBase = iota
	// LayoutRelativeToTableEnd treats a pointer entry's offset as
	// relative to the first byte past the last pointer-table entry,
	// i.e. the start of the payload region.
	LayoutRelativeToTableEnd
)

// Options configures the default pointer-table layout reader and
// writer.
type Options struct {
	// PointerBase selects the offset interpretation.
	PointerBase PointerBase

	// PointerCount, if non-zero, gives a known script count instead of
	// relying on the validity-heuristic scan to find where the table
	// ends.
	PointerCount int
}

// DefaultOptions returns Options with archive-relative offsets and no
// externally-supplied script count.
func DefaultOptions() Options {
	return Options{PointerBase: LayoutRelativeToArchive}
}
