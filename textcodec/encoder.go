package textcodec

import "github.com/Prof9/textpet-codec/trie"

// encodePath is one alternative interpretation of the input being
// encoded. Two paths are created at every branch point: the pre-
// existing path keeps exploring for a longer match (never advancing
// its own id), and a freshly id'd path commits the value found so far
// and continues independently from there. Ties among equally short
// finished outputs are broken by lowest id, so the continuing-explorer
// lineage — which only commits once nothing longer is found — wins
// over a shortcut sibling of equal length.
type encodePath struct {
	id                      int
	queue                   []rune
	consumed                int
	cursor                  trie.Cursor[rune, []byte]
	output                  []byte
	critical                bool
	usedFallbackSinceCommit bool

	remembered    []byte
	rememberedLen int

	dead     bool
	deathErr error
}

func (p *encodePath) finished() bool {
	return p.consumed == 0 && len(p.queue) == 0
}

// Encode converts text to its byte representation. In branch-exploring
// (non-Greedy) mode it runs a set of alternative paths and selects the
// shortest finished output, breaking ties by path id (see encodePath).
// Greedy mode runs a single path that commits to the first match found
// at every step.
func (c *Codec) Encode(text string) ([]byte, error) {
	runes := []rune(text)
	nextID := 1

	root := &encodePath{id: 0, queue: runes, cursor: c.charTrie.BeginPath()}
	live := []*encodePath{root}

	maxPaths := c.options.maxLivePaths()
	logger := c.options.logger()

	var lastErr error

	for {
		progressed := false
		for _, p := range live {
			if p.dead || p.finished() {
				continue
			}
			progressed = true
			c.stepPath(p, &live, &nextID, maxPaths, logger)
			if p.dead && p.deathErr != nil {
				if ee, ok := p.deathErr.(*EncodeError); ok {
					ee.Offset = len(runes) - len(p.queue)
				}
				lastErr = p.deathErr
			}
		}
		if !progressed {
			break
		}
	}

	var best *encodePath
	for _, p := range live {
		if p.dead || !p.finished() {
			continue
		}
		if best == nil || len(p.output) < len(best.output) || (len(p.output) == len(best.output) && p.id < best.id) {
			best = p
		}
	}

	if best == nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, ErrNoLivePaths
	}
	return best.output, nil
}

// stepPath advances p by a single rune of its queue. It may append a
// new committing path to *live and increment *nextID.
func (c *Codec) stepPath(p *encodePath, live *[]*encodePath, nextID *int, maxPaths int, logger func(string, ...any)) {
	if p.consumed == len(p.queue) {
		c.resolvePath(p, live)
		return
	}

	r := p.queue[p.consumed]
	if p.cursor.Step(r) {
		p.consumed++
		if v, ok := p.cursor.Value(); ok {
			if c.options.Greedy {
				c.commitValue(p, v)
				return
			}
			fork := &encodePath{
				id:       *nextID,
				queue:    append([]rune(nil), p.queue...),
				consumed: p.consumed,
				cursor:   p.cursor,
				output:   append([]byte(nil), p.output...),
				critical: p.critical,
			}
			*nextID++
			c.commitValue(fork, v)
			addPath(live, fork, maxPaths, logger)

			p.remembered = v
			p.rememberedLen = p.consumed
		}
		return
	}

	c.resolvePath(p, live)
}

// commitValue applies value to p in place: appends to output, drops
// the consumed runes from the front of the queue, and resets the
// cursor to root.
func (c *Codec) commitValue(p *encodePath, value []byte) {
	p.output = append(p.output, value...)
	p.queue = p.queue[p.consumed:]
	p.cursor = c.charTrie.BeginPath()
	p.consumed = 0
	p.remembered = nil
	p.rememberedLen = 0
	p.critical = true
	p.usedFallbackSinceCommit = false
}

// resolvePath handles a step failure (or end of queue while a partial
// match is in progress): apply a remembered value if one exists,
// otherwise try the raw-byte escape, otherwise invoke the fallback
// policy once before killing the path.
func (c *Codec) resolvePath(p *encodePath, live *[]*encodePath) {
	if p.remembered != nil {
		p.output = append(p.output, p.remembered...)
		p.queue = p.queue[p.rememberedLen:]
		p.cursor = c.charTrie.BeginPath()
		p.consumed = 0
		p.remembered = nil
		p.rememberedLen = 0
		p.critical = true
		p.usedFallbackSinceCommit = false
		return
	}

	if b, ok := matchRawByteEscape(p.queue); ok {
		p.output = append(p.output, b)
		p.queue = p.queue[5:]
		p.cursor = c.charTrie.BeginPath()
		p.consumed = 0
		p.critical = true
		p.usedFallbackSinceCommit = false
		return
	}

	if len(p.queue) == 0 {
		// nothing left to resolve and nothing was remembered: a clean
		// finish with no trailing obligation.
		return
	}

	if p.usedFallbackSinceCommit {
		p.dead = true
		p.deathErr = &EncodeError{Char: p.queue[0]}
		return
	}

	switch c.options.FallbackPolicy {
	case FallbackIgnore:
		p.queue = p.queue[1:]
	case FallbackError:
		p.dead = true
		p.deathErr = &EncodeError{Char: p.queue[0]}
		return
	default:
		p.output = append(p.output, c.options.UnknownByte)
		p.queue = p.queue[1:]
	}
	p.cursor = c.charTrie.BeginPath()
	p.consumed = 0
	p.critical = false
	p.usedFallbackSinceCommit = true
}

// addPath appends fork to *live, evicting the oldest non-critical path
// first if that would exceed maxPaths; if no non-critical path exists
// to evict, the new path is dropped and that is logged instead.
func addPath(live *[]*encodePath, fork *encodePath, maxPaths int, logger func(string, ...any)) {
	if len(*live) < maxPaths {
		*live = append(*live, fork)
		return
	}
	for i, p := range *live {
		if !p.critical {
			(*live)[i] = fork
			logger("textcodec: path cap %d reached, dismissing oldest non-critical path", maxPaths)
			return
		}
	}
	logger("textcodec: path cap %d reached, every live path is critical, dropping new path %d", maxPaths, fork.id)
}
