package texpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

// buildPackBytes lays out a single-file PC texpack by hand: header, one
// entry, the fixed filler block, then the payload.
func buildPackBytes(t *testing.T, name string, kind EntryType, data []byte) []byte {
	t.Helper()
	c := console.PC

	buf := append([]byte(nil), "KPXT"...)
	buf = appendUint32(buf, c, 1)
	buf = appendUint32(buf, c, 1)
	buf = appendUint32(buf, c, 0)

	buf = appendUint32(buf, c, classes.Hash(name))
	nameBytes := make([]byte, nameLen)
	copy(nameBytes, name)
	buf = append(buf, nameBytes...)
	buf = appendUint32(buf, c, uint32(headerSize+entrySize+tablePadding))
	buf = appendUint32(buf, c, uint32(len(data)))
	buf = appendUint32(buf, c, uint32(kind))
	buf = appendUint32(buf, c, 0)

	buf = appendFiller(buf, tablePadding)
	return append(buf, data...)
}

func TestParse(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	raw := buildPackBytes(t, "shrek_eyes", Texture, data)

	pack, err := Parse(raw, console.PC)
	require.NoError(t, err)
	require.Len(t, pack.Files, 1)

	f := pack.Files[0]
	assert.Equal(t, "shrek_eyes", f.Name)
	assert.Equal(t, Texture, f.Type)
	assert.Equal(t, data, f.Data)
}

func TestParseMalformed(t *testing.T) {
	good := buildPackBytes(t, "shrek_eyes", Texture, []byte{1, 2, 3, 4})

	tests := map[string][]byte{
		"Empty":       {},
		"ShortHeader": good[:8],
		"BadMagic":    append([]byte("NOPE"), good[4:]...),
		// Entry table claims a file but the buffer ends at the header.
		"TableBeyondEnd": good[:headerSize],
		// Payload extent runs past the end of the buffer.
		"PayloadBeyondEnd": good[:len(good)-2],
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw, console.PC)
			assert.ErrorIs(t, err, ErrMalformedPack)
		})
	}
}

func TestParseUnknownEntryType(t *testing.T) {
	raw := buildPackBytes(t, "shrek_eyes", EntryType(0x07), []byte{1})
	_, err := Parse(raw, console.PC)
	assert.ErrorIs(t, err, ErrMalformedPack)
}

func TestRoundTrip(t *testing.T) {
	consoles := []console.Console{console.PC, console.Gamecube, console.PS2, console.Xbox}
	for _, c := range consoles {
		t.Run(c.String(), func(t *testing.T) {
			pack := &Pack{Console: c}
			pack.Add("shrek_body", Texture, []byte{0x10, 0x20, 0x30})
			pack.Add("shrek_idle", Tga, []byte("shrek_body\n"))

			raw := pack.Serialize()
			got, err := Parse(raw, c)
			require.NoError(t, err)

			require.Len(t, got.Files, 2)
			assert.Equal(t, pack.Files[0].Name, got.Files[0].Name)
			assert.Equal(t, pack.Files[0].Type, got.Files[0].Type)
			assert.Equal(t, pack.Files[0].Data, got.Files[0].Data)
			assert.Equal(t, pack.Files[1].Name, got.Files[1].Name)
			assert.Equal(t, pack.Files[1].Type, got.Files[1].Type)
			assert.Equal(t, pack.Files[1].Data, got.Files[1].Data)
		})
	}
}

func TestSerializeMagic(t *testing.T) {
	pc := (&Pack{Console: console.PC}).Serialize()
	assert.Equal(t, []byte("KPXT"), pc[:4])

	gcn := (&Pack{Console: console.Gamecube}).Serialize()
	assert.Equal(t, []byte("TXPK"), gcn[:4])
}

func TestSerializeLayout(t *testing.T) {
	pack := &Pack{Console: console.PC}
	data := []byte{0xAB, 0xCD}
	pack.Add("shrek_body", Texture, data)
	raw := pack.Serialize()

	// Entry hash is recomputed from the name.
	assert.Equal(t, classes.Hash("shrek_body"), console.PC.Uint32(raw[headerSize:]))

	// The payload sits right after the entry table's filler block, and the
	// remainder of its 2048-byte block carries the filler byte.
	start := headerSize + entrySize + tablePadding
	assert.Equal(t, uint32(start), console.PC.Uint32(raw[headerSize+0x20:]))
	assert.Equal(t, data, raw[start:start+len(data)])
	assert.Equal(t, start+paddedSize(len(data)), len(raw))
	for _, b := range raw[start+len(data):] {
		require.EqualValues(t, filler, b)
	}
}

func TestSerializeTruncatesLongNames(t *testing.T) {
	pack := &Pack{Console: console.PC}
	long := "a_texture_name_well_past_twenty_eight_bytes"
	pack.Add(long, Texture, nil)

	got, err := Parse(pack.Serialize(), console.PC)
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, long[:nameLen], got.Files[0].Name)
}

func TestFilename(t *testing.T) {
	texture := &File{Name: "shrek_body", Type: Texture}
	assert.Equal(t, "shrek_body.dds", texture.Filename(console.PC))
	assert.Equal(t, "shrek_body.dds", texture.Filename(console.Xbox))
	assert.Equal(t, "shrek_body.gct", texture.Filename(console.Gamecube))
	assert.Equal(t, "shrek_body.tm2", texture.Filename(console.PS2))

	tga := &File{Name: "shrek_idle", Type: Tga}
	assert.Equal(t, "shrek_idle.tga", tga.Filename(console.PC))
	assert.Equal(t, "shrek_idle.tga", tga.Filename(console.Gamecube))
}
