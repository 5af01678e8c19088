package trie

import (
	"encoding/binary"
	"fmt"
)

// Serialized layout, all multi-byte integers big-endian:
//
//	magic        4 bytes, "UCST"
//	version      u32
//	space width  u32
//	chunk width  u32
//	level count  u32
//	entry count  u32 per level: root slots, canonical tables per interior
//	             level, canonical chunks
//	root         u32 per slot
//	levels       u32 per entry, chunkWidth entries per table, level order
//	chunks       u64 per word, chunkWidth/64 words per chunk
//
// The layout has no padding, so the buffer length is fully determined by the
// header and a valid buffer ends exactly after the chunk pool.
const (
	codecMagic   = "UCST"
	codecVersion = uint32(1)
)

// MarshalBinary serializes the trie. The output is deterministic: compiling
// the same range list twice yields byte-identical buffers.
func (t *TrieSet) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, encodedSize(t))
	buf = append(buf, codecMagic...)
	buf = appendU32(buf, codecVersion)
	buf = appendU32(buf, uint32(t.spaceWidth))
	buf = appendU32(buf, uint32(t.chunkWidth))
	buf = appendU32(buf, uint32(t.levelCount))
	buf = appendU32(buf, uint32(len(t.root)))
	for _, tab := range t.levels {
		buf = appendU32(buf, uint32(len(tab)/t.chunkWidth))
	}
	buf = appendU32(buf, uint32(len(t.chunks)/t.chunkWords))
	for _, v := range t.root {
		buf = appendU32(buf, v)
	}
	for _, tab := range t.levels {
		for _, v := range tab {
			buf = appendU32(buf, v)
		}
	}
	for _, v := range t.chunks {
		buf = appendU64(buf, v)
	}
	return buf, nil
}

// Decode deserializes a trie produced by MarshalBinary. Every header field
// and every stored index is treated as untrusted: Decode fails with a
// structured error on truncation, trailing bytes, bad magic or version,
// inconsistent widths, or out-of-bounds indices, and never reads outside the
// buffer.
func Decode(data []byte) (*TrieSet, error) {
	if len(data) < len(codecMagic) {
		return nil, fmt.Errorf("%w: %v bytes", ErrTruncated, len(data))
	}
	if string(data[:len(codecMagic)]) != codecMagic {
		return nil, ErrBadMagic
	}
	r := &byteReader{data: data, off: len(codecMagic)}

	version, err := r.u32()
	if err != nil {
		return nil, err
	}
	if version != codecVersion {
		return nil, fmt.Errorf("%w: %v", ErrBadVersion, version)
	}
	spaceWidth, err := r.u32()
	if err != nil {
		return nil, err
	}
	chunkWidth, err := r.u32()
	if err != nil {
		return nil, err
	}
	if err := validateWidths(int(spaceWidth), int(chunkWidth)); err != nil {
		return nil, err
	}
	levelCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	if int(levelCount) != computeLevelCount(int(spaceWidth), int(chunkWidth)) {
		return nil, fmt.Errorf("%w: level count %v", ErrWidthMismatch, levelCount)
	}
	counts := make([]int, levelCount)
	for i := range counts {
		c, err := r.u32()
		if err != nil {
			return nil, err
		}
		counts[i] = int(c)
	}

	// The declared counts fix the total size exactly. Checking it up front
	// defends every read below and bounds the allocations against the buffer
	// that actually arrived.
	w := int(chunkWidth)
	words := w / 64
	need := int64(r.off) + 4*int64(counts[0])
	for _, c := range counts[1 : levelCount-1] {
		need += 4 * int64(c) * int64(w)
	}
	need += 8 * int64(counts[levelCount-1]) * int64(words)
	if need > int64(len(data)) {
		return nil, fmt.Errorf("%w: need %v bytes, have %v", ErrTruncated, need, len(data))
	}
	if need < int64(len(data)) {
		return nil, fmt.Errorf("%w: %v bytes after the chunk pool", ErrTrailingData, int64(len(data))-need)
	}

	t := &TrieSet{
		spaceWidth: int(spaceWidth),
		chunkWidth: int(chunkWidth),
		levelCount: int(levelCount),
		root:       make([]uint32, counts[0]),
	}
	for i := range t.root {
		t.root[i], _ = r.u32()
	}
	for _, c := range counts[1 : levelCount-1] {
		tab := make([]uint32, c*w)
		for i := range tab {
			tab[i], _ = r.u32()
		}
		t.levels = append(t.levels, tab)
	}
	t.chunks = make([]uint64, counts[levelCount-1]*words)
	for i := range t.chunks {
		t.chunks[i], _ = r.u64()
	}
	t.init()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDecode is Decode for trusted buffers, such as the literals the gen
// package embeds in generated source. It panics on any decode error.
func MustDecode(data []byte) *TrieSet {
	t, err := Decode(data)
	if err != nil {
		panic(err)
	}
	return t
}

func encodedSize(t *TrieSet) int {
	size := len(codecMagic) + 4*4 + 4*t.levelCount + 4*len(t.root)
	for _, tab := range t.levels {
		size += 4 * len(tab)
	}
	return size + 8*len(t.chunks)
}

type byteReader struct {
	data []byte
	off  int
}

func (r *byteReader) u32() (uint32, error) {
	if r.off+4 > len(r.data) {
		return 0, fmt.Errorf("%w: at offset %v", ErrTruncated, r.off)
	}
	v := binary.BigEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

func (r *byteReader) u64() (uint64, error) {
	if r.off+8 > len(r.data) {
		return 0, fmt.Errorf("%w: at offset %v", ErrTruncated, r.off)
	}
	v := binary.BigEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v, nil
}

func appendU32(b []byte, v uint32) []byte {
	var w [4]byte
	binary.BigEndian.PutUint32(w[:], v)
	return append(b, w[:]...)
}

func appendU64(b []byte, v uint64) []byte {
	var w [8]byte
	binary.BigEndian.PutUint64(w[:], v)
	return append(b, w[:]...)
}
