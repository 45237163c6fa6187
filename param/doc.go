// Package param implements the bit-packed parameter extractor:
// reading and writing arbitrary-width integer fields from command byte
// buffers, plus the named ValueEncoding sub-codecs ("bool", "hex")
// that map those integers to presentation strings and back.
package param
