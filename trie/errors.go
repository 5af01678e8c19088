package trie

import "errors"

var (
	ErrBadSpaceWidth       = errors.New("trie: space width must be in [1, 0x110000]")
	ErrBadChunkWidth       = errors.New("trie: chunk width must be a power of two in [64, 4096]")
	ErrInvalidRange        = errors.New("trie: range lower bound exceeds upper bound")
	ErrRangeOutOfBounds    = errors.New("trie: range exceeds the codepoint space")
	ErrCodePointOutOfRange = errors.New("trie: codepoint outside the codepoint space")

	ErrTruncated        = errors.New("trie: serialized trie is truncated")
	ErrTrailingData     = errors.New("trie: serialized trie has trailing bytes")
	ErrBadMagic         = errors.New("trie: serialized trie has a bad magic number")
	ErrBadVersion       = errors.New("trie: unsupported serialization format version")
	ErrWidthMismatch    = errors.New("trie: declared sizes are inconsistent")
	ErrIndexOutOfBounds = errors.New("trie: index exceeds the declared table size")
)
