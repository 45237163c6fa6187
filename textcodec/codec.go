package textcodec

import "github.com/Prof9/textpet-codec/trie"

// Pair is one table-file entry: a byte sequence and the string it
// represents.
type Pair struct {
	Bytes []byte
	Text  string
}

// Codec is an immutable byte<->string codec built from a table of
// (bytes, text) pairs. The zero Codec is not usable; construct one
// with New.
type Codec struct {
	byteTrie *trie.LookupTrie[byte, string]
	charTrie *trie.LookupTrie[rune, []byte]
	options  Options
}

// New builds a Codec from pairs, indexing them in both directions: a
// byte-trie for decoding and a rune-trie for encoding. It fails with
// whatever *trie.DuplicateKeyError the first colliding pair produces.
func New(pairs []Pair, options Options) (*Codec, error) {
	byteTrie := trie.New[byte, string]()
	charTrie := trie.New[rune, []byte]()

	for _, p := range pairs {
		if err := byteTrie.Add(p.Bytes, p.Text); err != nil {
			return nil, err
		}
		if err := charTrie.Add([]rune(p.Text), append([]byte(nil), p.Bytes...)); err != nil {
			return nil, err
		}
	}

	return &Codec{byteTrie: byteTrie, charTrie: charTrie, options: options}, nil
}

// Options returns the Codec's configuration.
func (c *Codec) Options() Options {
	return c.options
}
