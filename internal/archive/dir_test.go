package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgrayson/slamdb/internal/console"
)

func TestParseDirTwoEntries(t *testing.T) {
	// Offset table {0x0C, 0x1C, 0}, then two 16-byte entries with 4-byte
	// names and no padding, as the shipped archives lay them out.
	pc := []byte{
		0x0C, 0x00, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00,
		'a', 'b', 'c', 'd',
		0x04, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00,
		'e', 'f', 'g', 'h',
	}
	gcn := []byte{
		0x00, 0x00, 0x00, 0x0C, 0x00, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x03,
		'a', 'b', 'c', 'd',
		0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x06,
		'e', 'f', 'g', 'h',
	}

	for _, tc := range []struct {
		console console.Console
		data    []byte
	}{
		{console.PC, pc},
		{console.Gamecube, gcn},
	} {
		t.Run(tc.console.String(), func(t *testing.T) {
			dir, err := ParseDir(tc.data, tc.console)
			require.NoError(t, err)
			require.Len(t, dir.Entries, 2)

			assert.Equal(t, Entry{Path: "abcd", Offset: 1, DecompressedSize: 2, CompressedSize: 3}, dir.Entries[0])
			assert.Equal(t, Entry{Path: "efgh", Offset: 4, DecompressedSize: 5, CompressedSize: 6}, dir.Entries[1])
		})
	}
}

func TestParseDirTrimsNameAtNul(t *testing.T) {
	dir := &Dir{Entries: []Entry{
		{Path: "data\\x.bin", Offset: 0, DecompressedSize: 200, CompressedSize: 120},
	}}
	parsed, err := ParseDir(dir.Serialize(console.PC), console.PC)
	require.NoError(t, err)
	require.Len(t, parsed.Entries, 1)
	assert.Equal(t, "data\\x.bin", parsed.Entries[0].Path)
}

func TestDirRoundTrip(t *testing.T) {
	// Path lengths chosen to hit every entry-padding remainder.
	dir := &Dir{Entries: []Entry{
		{Path: "a", Offset: 0, DecompressedSize: 10, CompressedSize: 5},
		{Path: "ab", Offset: 2048, DecompressedSize: 20, CompressedSize: 15},
		{Path: "abc", Offset: 4096, DecompressedSize: 30, CompressedSize: 25},
		{Path: "data\\players\\shrek\\player.db.bin", Offset: 6144, DecompressedSize: 40, CompressedSize: 35},
	}}

	for _, c := range []console.Console{console.PC, console.Gamecube, console.PS2, console.Xbox} {
		t.Run(c.String(), func(t *testing.T) {
			b := dir.Serialize(c)
			parsed, err := ParseDir(b, c)
			require.NoError(t, err)
			assert.Equal(t, dir, parsed)

			// Byte-exact on a second pass through our own writer.
			assert.Equal(t, b, parsed.Serialize(c))
		})
	}
}

func TestDirRoundTripEmpty(t *testing.T) {
	dir := &Dir{}
	parsed, err := ParseDir(dir.Serialize(console.PC), console.PC)
	require.NoError(t, err)
	assert.Empty(t, parsed.Entries)
}

func TestParseDirTruncated(t *testing.T) {
	tests := map[string][]byte{
		"Empty":            {},
		"ShortTable":       {0x01},
		"TableBeyondFile":  {0xFF, 0x00, 0x00, 0x00},
		"EntryBeyondFile":  {0x08, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00},
		"EntryHeaderShort": {0x08, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01, 0x02},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDir(data, console.PC)
			assert.ErrorIs(t, err, ErrTruncatedIndex)
		})
	}
}

func TestParseDirDuplicatePath(t *testing.T) {
	dir := &Dir{Entries: []Entry{
		{Path: "data\\x.bin", CompressedSize: 1, DecompressedSize: 2},
		{Path: "data\\x.bin", CompressedSize: 3, DecompressedSize: 4},
	}}
	_, err := ParseDir(dir.Serialize(console.PC), console.PC)
	assert.ErrorIs(t, err, ErrDuplicatePath)
}

func TestDirLookup(t *testing.T) {
	dir := &Dir{Entries: []Entry{
		{Path: "data\\a.bin"},
		{Path: "data\\b.bin"},
	}}
	e := dir.Lookup("data\\b.bin")
	require.NotNil(t, e)
	assert.Same(t, &dir.Entries[1], e)
	assert.Nil(t, dir.Lookup("data\\c.bin"))
}
