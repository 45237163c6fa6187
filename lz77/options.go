package lz77

// DecompressOptions configures Decompress.
type DecompressOptions struct {
	// MaxOutputSize bounds the allocation Decompress will make to hold
	// the declared decompressed size, before any byte of the stream
	// past the header is trusted. 0 means no limit.
	MaxOutputSize int
}

// DefaultDecompressOptions returns options with no output size limit.
func DefaultDecompressOptions() DecompressOptions {
	return DecompressOptions{}
}
