package gen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nihei9/ucdex/trie"
)

func TestGenTrieSet(t *testing.T) {
	set, err := trie.Compile([]trie.Range{{From: 65, To: 90}, {From: 97, To: 122}}, trie.DefaultSpaceWidth, trie.DefaultChunkWidth)
	require.NoError(t, err)

	src, err := GenTrieSet(set, "unicodetables", "ASCIILetters")
	require.NoError(t, err)

	got := string(src)
	require.True(t, strings.HasPrefix(got, "// Code generated by ucdex. DO NOT EDIT."))
	require.Contains(t, got, "package unicodetables")
	require.Contains(t, got, "var ASCIILetters = trie.MustDecode([]byte(")
	require.Contains(t, got, `import "github.com/nihei9/ucdex/trie"`)
}

func TestGenTrieSet_RejectsInvalidIdentifiers(t *testing.T) {
	set, err := trie.Compile(nil, trie.DefaultSpaceWidth, trie.DefaultChunkWidth)
	require.NoError(t, err)

	_, err = GenTrieSet(set, "2pkg", "Table")
	require.Error(t, err)
	_, err = GenTrieSet(set, "pkg", "my-table")
	require.Error(t, err)
}

func TestBytesLiteral_ReproducesBytes(t *testing.T) {
	set, err := trie.Compile([]trie.Range{{From: 0x00E0, To: 0x00FF}}, trie.DefaultSpaceWidth, trie.DefaultChunkWidth)
	require.NoError(t, err)
	data, err := set.MarshalBinary()
	require.NoError(t, err)

	var decoded []byte
	for _, lit := range strings.Split(bytesLiteral(data), " +\n\t") {
		s, err := strconv.Unquote(lit)
		require.NoError(t, err)
		decoded = append(decoded, s...)
	}
	require.Equal(t, data, decoded)

	roundTripped, err := trie.Decode(decoded)
	require.NoError(t, err)
	member, err := roundTripped.Contains(0x00E0)
	require.NoError(t, err)
	require.True(t, member)
}
