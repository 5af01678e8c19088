package trie

import (
	"fmt"
	"math/bits"
)

const (
	// MaxCodePoint is the last codepoint of the Unicode codespace.
	MaxCodePoint = rune(0x10FFFF)

	// DefaultSpaceWidth covers the whole Unicode codespace.
	DefaultSpaceWidth = int(MaxCodePoint) + 1

	DefaultChunkWidth = 64

	MinChunkWidth = 64
	MaxChunkWidth = 4096
)

// Range is a closed interval of codepoints. From and To are both members.
type Range struct {
	From rune
	To   rune
}

// TrieSet is a compiled set of codepoints. It answers membership queries in
// constant time via a fixed number of table lookups, one per level.
//
// The structure is a multi-level bitmap trie. The deepest level is a pool of
// fixed-width bitmap chunks, each covering chunkWidth consecutive codepoints.
// Each interior level is a pool of tables of chunkWidth indices into the pool
// below it. The root is a single table of indices sized so that the whole
// codepoint space is covered. Identical chunks and identical tables are
// stored once and shared, which is what keeps real Unicode property data
// small.
//
// A TrieSet is immutable after construction and safe for concurrent readers.
type TrieSet struct {
	spaceWidth int
	chunkWidth int
	levelCount int

	root   []uint32
	levels [][]uint32
	chunks []uint64

	bitsPerLevel uint
	indexMask    uint32
	chunkWords   int
}

func (t *TrieSet) SpaceWidth() int { return t.spaceWidth }
func (t *TrieSet) ChunkWidth() int { return t.chunkWidth }
func (t *TrieSet) LevelCount() int { return t.levelCount }

// Contains reports whether cp is a member of the set. Codepoints outside
// [0, SpaceWidth()) fail with ErrCodePointOutOfRange rather than answering
// false, so callers cannot mistake a bug for a legitimate negative answer.
//
// Contains never allocates.
func (t *TrieSet) Contains(cp rune) (bool, error) {
	if cp < 0 || int(cp) >= t.spaceWidth {
		return false, ErrCodePointOutOfRange
	}
	c := uint32(cp)
	shift := uint(t.levelCount-1) * t.bitsPerLevel
	slot := t.root[c>>shift]
	for _, tab := range t.levels {
		shift -= t.bitsPerLevel
		slot = tab[int(slot)<<t.bitsPerLevel|int((c>>shift)&t.indexMask)]
	}
	low := c & t.indexMask
	word := t.chunks[int(slot)*t.chunkWords+int(low>>6)]
	return word>>(low&63)&1 == 1, nil
}

// Stats describes the size of a compiled trie.
type Stats struct {
	LevelCount   int
	RootEntries  int
	TableCounts  []int
	ChunkCount   int
	EncodedBytes int
}

func (t *TrieSet) Stats() Stats {
	s := Stats{
		LevelCount:  t.levelCount,
		RootEntries: len(t.root),
		ChunkCount:  len(t.chunks) / t.chunkWords,
	}
	for _, tab := range t.levels {
		s.TableCounts = append(s.TableCounts, len(tab)/t.chunkWidth)
	}
	s.EncodedBytes = encodedSize(t)
	return s
}

// Validate checks the structural invariants: consistent widths and level
// count, table sizes that are exact multiples of the chunk width, and every
// stored index within the bounds of the pool it points into. The compiler
// runs it on its own output and the decoder runs it on untrusted input.
func (t *TrieSet) Validate() error {
	if err := validateWidths(t.spaceWidth, t.chunkWidth); err != nil {
		return err
	}
	if t.levelCount != computeLevelCount(t.spaceWidth, t.chunkWidth) {
		return fmt.Errorf("%w: level count %v", ErrWidthMismatch, t.levelCount)
	}
	if len(t.levels) != t.levelCount-2 {
		return fmt.Errorf("%w: %v interior levels, want %v", ErrWidthMismatch, len(t.levels), t.levelCount-2)
	}
	if t.chunkWords <= 0 || len(t.chunks) == 0 || len(t.chunks)%t.chunkWords != 0 {
		return fmt.Errorf("%w: chunk pool holds %v words", ErrWidthMismatch, len(t.chunks))
	}
	for i, tab := range t.levels {
		if len(tab) == 0 || len(tab)%t.chunkWidth != 0 {
			return fmt.Errorf("%w: level %v holds %v entries", ErrWidthMismatch, i+1, len(tab))
		}
	}
	if want := ceilDiv(t.spaceWidth, pow(t.chunkWidth, t.levelCount-1)); len(t.root) != want {
		return fmt.Errorf("%w: root holds %v slots, want %v", ErrWidthMismatch, len(t.root), want)
	}

	childCount := func(level int) int {
		if level == len(t.levels) {
			return len(t.chunks) / t.chunkWords
		}
		return len(t.levels[level]) / t.chunkWidth
	}
	for i, slot := range t.root {
		if int(slot) >= childCount(0) {
			return fmt.Errorf("%w: root[%v] = %v", ErrIndexOutOfBounds, i, slot)
		}
	}
	for lvl, tab := range t.levels {
		limit := childCount(lvl + 1)
		for i, slot := range tab {
			if int(slot) >= limit {
				return fmt.Errorf("%w: level %v entry %v = %v", ErrIndexOutOfBounds, lvl+1, i, slot)
			}
		}
	}
	return nil
}

func (t *TrieSet) init() {
	t.bitsPerLevel = uint(bits.TrailingZeros(uint(t.chunkWidth)))
	t.indexMask = uint32(t.chunkWidth - 1)
	t.chunkWords = t.chunkWidth / 64
}

func validateWidths(spaceWidth, chunkWidth int) error {
	if spaceWidth < 1 || spaceWidth > DefaultSpaceWidth {
		return fmt.Errorf("%w: %v", ErrBadSpaceWidth, spaceWidth)
	}
	if chunkWidth < MinChunkWidth || chunkWidth > MaxChunkWidth || chunkWidth&(chunkWidth-1) != 0 {
		return fmt.Errorf("%w: %v", ErrBadChunkWidth, chunkWidth)
	}
	return nil
}

// computeLevelCount returns the number of levels, root and chunk level
// included. It is the smallest count that lets a root of at most chunkWidth
// slots cover the whole space, and is fully determined by the two widths.
func computeLevelCount(spaceWidth, chunkWidth int) int {
	lc := 2
	span := chunkWidth * chunkWidth
	for span < spaceWidth {
		span *= chunkWidth
		lc++
	}
	return lc
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func pow(base, exp int) int {
	v := 1
	for i := 0; i < exp; i++ {
		v *= base
	}
	return v
}
