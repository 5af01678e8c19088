package trie

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/nihei9/ucdex/log"
)

type CompileOption func(c *compileConfig) error

func EnableLogging(w io.Writer) CompileOption {
	return func(c *compileConfig) error {
		logger, err := log.NewLogger(w)
		if err != nil {
			return err
		}
		c.logger = logger
		return nil
	}
}

type compileConfig struct {
	logger log.Logger
}

// Compile builds a TrieSet whose membership predicate is exactly the union of
// ranges, over a codepoint space of spaceWidth codepoints split into bitmap
// chunks of chunkWidth bits.
//
// The input ranges may be unsorted, duplicated, overlapping, or adjacent;
// Compile sorts and coalesces them before building. UCD data sources
// sometimes emit overlapping aliases, so tolerating them here is deliberate.
// Ranges reaching outside [0, spaceWidth) are rejected, never clamped.
//
// An empty range list compiles to a valid always-false set backed by a single
// canonical all-zero chunk.
func Compile(ranges []Range, spaceWidth, chunkWidth int, opts ...CompileOption) (*TrieSet, error) {
	config := &compileConfig{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		err := opt(config)
		if err != nil {
			return nil, err
		}
	}

	if err := validateWidths(spaceWidth, chunkWidth); err != nil {
		return nil, err
	}
	coalesced, err := coalesce(ranges, spaceWidth)
	if err != nil {
		return nil, err
	}
	config.logger.Log("Compile a codepoint set: %v ranges, %v after coalescing", len(ranges), len(coalesced))

	b := newBuilder(spaceWidth, chunkWidth)
	b.sweepChunks(coalesced)
	for p := len(b.pools) - 1; p >= 0; p-- {
		b.group(p)
	}
	t := b.trieSet()

	config.logger.Log("Levels: %v (root of %v slots)", t.levelCount, len(t.root))
	for i, tab := range t.levels {
		config.logger.Log("  level %v: %v canonical tables", i+1, len(tab)/chunkWidth)
	}
	config.logger.Log("  chunks: %v canonical bitmaps", len(t.chunks)/t.chunkWords)

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// coalesce validates ranges and merges them into a sorted, non-overlapping,
// non-adjacent list.
func coalesce(ranges []Range, spaceWidth int) ([]Range, error) {
	rs := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.From > r.To {
			return nil, fmt.Errorf("%w: %U..%U", ErrInvalidRange, r.From, r.To)
		}
		if r.From < 0 || int(r.To) >= spaceWidth {
			return nil, fmt.Errorf("%w: %U..%U", ErrRangeOutOfBounds, r.From, r.To)
		}
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].From != rs[j].From {
			return rs[i].From < rs[j].From
		}
		return rs[i].To < rs[j].To
	})
	var merged []Range
	for _, r := range rs {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if int(r.From) <= int(last.To)+1 {
				if r.To > last.To {
					last.To = r.To
				}
				continue
			}
		}
		merged = append(merged, r)
	}
	return merged, nil
}

type builder struct {
	spaceWidth int
	chunkWidth int
	levelCount int
	chunkWords int

	chunks *chunkPool
	pools  []*tablePool

	// cur is the index list of the level built most recently. After the last
	// grouping round it is the root table.
	cur []uint32
}

func newBuilder(spaceWidth, chunkWidth int) *builder {
	lc := computeLevelCount(spaceWidth, chunkWidth)
	b := &builder{
		spaceWidth: spaceWidth,
		chunkWidth: chunkWidth,
		levelCount: lc,
		chunkWords: chunkWidth / 64,
		chunks:     newChunkPool(chunkWidth / 64),
	}
	for i := 0; i < lc-2; i++ {
		b.pools = append(b.pools, newTablePool(chunkWidth))
	}
	return b
}

// sweepChunks computes the bitmap of every chunk in one linear pass over the
// coalesced ranges and interns each bitmap into the chunk pool.
func (b *builder) sweepChunks(ranges []Range) {
	w := b.chunkWidth
	chunkCount := ceilDiv(b.spaceWidth, w)
	words := make([]uint64, b.chunkWords)
	ri := 0
	for ci := 0; ci < chunkCount; ci++ {
		base := ci * w
		for i := range words {
			words[i] = 0
		}
		for ri < len(ranges) && int(ranges[ri].To) < base {
			ri++
		}
		for j := ri; j < len(ranges) && int(ranges[j].From) < base+w; j++ {
			lo := int(ranges[j].From)
			if lo < base {
				lo = base
			}
			hi := int(ranges[j].To)
			if hi > base+w-1 {
				hi = base + w - 1
			}
			for cp := lo; cp <= hi; cp++ {
				off := cp - base
				words[off>>6] |= 1 << uint(off&63)
			}
		}
		b.cur = append(b.cur, b.chunks.intern(words))
	}
}

// group collects the current index list into tables of chunkWidth entries and
// interns them into pool p. A trailing partial table is padded with the
// canonical all-zero path so every stored index stays in bounds.
func (b *builder) group(p int) {
	w := b.chunkWidth
	if len(b.cur)%w != 0 {
		pad := b.zeroSlot(p + 1)
		for len(b.cur)%w != 0 {
			b.cur = append(b.cur, pad)
		}
	}
	next := make([]uint32, 0, len(b.cur)/w)
	for i := 0; i < len(b.cur); i += w {
		next = append(next, b.pools[p].intern(b.cur[i:i+w]))
	}
	b.cur = next
}

// zeroSlot returns the canonical slot of the entry at the given level whose
// subtree contains no codepoints. level == len(pools) names the chunk level.
func (b *builder) zeroSlot(level int) uint32 {
	if level == len(b.pools) {
		return b.chunks.intern(make([]uint64, b.chunkWords))
	}
	child := b.zeroSlot(level + 1)
	entry := make([]uint32, b.chunkWidth)
	for i := range entry {
		entry[i] = child
	}
	return b.pools[level].intern(entry)
}

func (b *builder) trieSet() *TrieSet {
	t := &TrieSet{
		spaceWidth: b.spaceWidth,
		chunkWidth: b.chunkWidth,
		levelCount: b.levelCount,
		root:       b.cur,
		chunks:     b.chunks.entries,
	}
	for _, p := range b.pools {
		t.levels = append(t.levels, p.entries)
	}
	t.init()
	return t
}

// tablePool deduplicates interior tables. Lookup is keyed by the exact byte
// image of a table, so identical tables always merge and distinct tables
// never do.
type tablePool struct {
	width   int
	entries []uint32
	slots   map[string]uint32
}

func newTablePool(width int) *tablePool {
	return &tablePool{
		width: width,
		slots: map[string]uint32{},
	}
}

func (p *tablePool) intern(entry []uint32) uint32 {
	key := make([]byte, 4*len(entry))
	for i, v := range entry {
		binary.BigEndian.PutUint32(key[i*4:], v)
	}
	if slot, ok := p.slots[string(key)]; ok {
		return slot
	}
	slot := uint32(len(p.entries) / p.width)
	p.entries = append(p.entries, entry...)
	p.slots[string(key)] = slot
	return slot
}

// chunkPool deduplicates chunk bitmaps the same way tablePool deduplicates
// tables.
type chunkPool struct {
	words   int
	entries []uint64
	slots   map[string]uint32
}

func newChunkPool(words int) *chunkPool {
	return &chunkPool{
		words: words,
		slots: map[string]uint32{},
	}
}

func (p *chunkPool) intern(chunk []uint64) uint32 {
	key := make([]byte, 8*len(chunk))
	for i, v := range chunk {
		binary.BigEndian.PutUint64(key[i*8:], v)
	}
	if slot, ok := p.slots[string(key)]; ok {
		return slot
	}
	slot := uint32(len(p.entries) / p.words)
	p.entries = append(p.entries, chunk...)
	p.slots[string(key)] = slot
	return slot
}
