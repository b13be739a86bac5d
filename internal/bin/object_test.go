package bin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

// regionBuffer builds a Game::AttackMoveRegion at offset 16 with the given
// field values, surrounded by a 0xAA filler pattern.
func regionBuffer(c console.Console, delay, width, radius float32) []byte {
	buf := make([]byte, 16+0x40+16)
	for i := range buf {
		buf[i] = 0xAA
	}
	c.PutUint32(buf[16:], 0xF2CFE08D)
	c.PutFloat32(buf[16+0x04:], delay)
	c.PutFloat32(buf[16+0x30:], width)
	c.PutFloat32(buf[16+0x38:], radius)
	return buf
}

func regionClass(t *testing.T) *classes.Class {
	t.Helper()
	class, err := classes.ByName("Game::AttackMoveRegion")
	require.NoError(t, err)
	return class
}

func TestReadObject(t *testing.T) {
	for _, c := range []console.Console{console.PC, console.Gamecube} {
		t.Run(c.String(), func(t *testing.T) {
			buf := regionBuffer(c, 0.25, 1.5, 80)

			obj, err := ReadObject(buf, 16, regionClass(t), c)
			require.NoError(t, err)
			assert.Equal(t, float32(0.25), obj.Fields["delay"])
			assert.Equal(t, float32(1.5), obj.Fields["width"])
			assert.Equal(t, float32(80), obj.Fields["radius"])
		})
	}
}

func TestWriteObjectTouchesOnlyFieldBytes(t *testing.T) {
	c := console.Gamecube
	buf := regionBuffer(c, 0.25, 1.5, 80)
	before := append([]byte(nil), buf...)

	obj := &Object{
		Class:  regionClass(t),
		Offset: 16,
		Fields: map[string]any{"width": float32(3.75)},
	}
	require.NoError(t, WriteObject(buf, 16, obj, c))

	// Exactly the four bytes of the width field changed.
	var changed []int
	for i := range buf {
		if buf[i] != before[i] {
			changed = append(changed, i)
		}
	}
	assert.Equal(t, []int{16 + 0x30, 16 + 0x31, 16 + 0x32, 16 + 0x33}, changed)
	assert.Equal(t, float32(3.75), c.Float32(buf[16+0x30:]))
}

func TestReadWriteObjectRoundTrip(t *testing.T) {
	c := console.PC
	buf := regionBuffer(c, 1, 2, 3)
	class := regionClass(t)

	obj, err := ReadObject(buf, 16, class, c)
	require.NoError(t, err)
	obj.Fields["delay"] = float32(9.5)
	obj.Fields["radius"] = float32(0.125)

	require.NoError(t, WriteObject(buf, 16, obj, c))

	again, err := ReadObject(buf, 16, class, c)
	require.NoError(t, err)
	assert.Equal(t, obj.Fields, again.Fields)
}

func TestReadObjectWrongClass(t *testing.T) {
	c := console.PC
	buf := make([]byte, 0x100)
	c.PutUint32(buf[16:], 0xF2CFE08D)

	projectile, err := classes.ByName("Game::ProjectileType")
	require.NoError(t, err)
	_, err = ReadObject(buf, 16, projectile, c)
	assert.ErrorIs(t, err, ErrWrongClass)
}

func TestReadObjectOutOfRange(t *testing.T) {
	c := console.PC
	buf := make([]byte, 0x20)
	c.PutUint32(buf, 0xF2CFE08D)
	_, err := ReadObject(buf, 0, regionClass(t), c)
	assert.ErrorIs(t, err, ErrFieldOutOfRange)
}

// synthetic class exercising the integer, bool and string field paths,
// which the shipped layouts mostly reach through pointers.
var probeClass = classes.Class{
	Name: "test::Probe",
	Hash: 0x0BADF00D,
	Size: 0x20,
	Layout: []classes.Field{
		{Name: "count", Offset: 0x04, Kind: classes.Int, Width: 2},
		{Name: "enabled", Offset: 0x06, Kind: classes.Bool},
		{Name: "label", Offset: 0x08, Kind: classes.String, Width: 8},
		{Name: "link", Offset: 0x10, Kind: classes.Pointer},
	},
}

func TestFieldKinds(t *testing.T) {
	c := console.PC
	buf := make([]byte, 0x20)
	c.PutUint32(buf, probeClass.Hash)

	obj := &Object{
		Class: &probeClass,
		Fields: map[string]any{
			"count":   uint64(0x1234),
			"enabled": true,
			"label":   "swamp",
			"link":    uint64(0x500),
		},
	}
	require.NoError(t, WriteObject(buf, 0, obj, c))

	got, err := ReadObject(buf, 0, &probeClass, c)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234), got.Fields["count"])
	assert.Equal(t, true, got.Fields["enabled"])
	assert.Equal(t, "swamp", got.Fields["label"])
	assert.Equal(t, uint64(0x500), got.Fields["link"])
}

func TestWriteObjectOverflow(t *testing.T) {
	c := console.PC

	t.Run("Int", func(t *testing.T) {
		buf := make([]byte, 0x20)
		c.PutUint32(buf, probeClass.Hash)
		obj := &Object{Class: &probeClass, Fields: map[string]any{"count": uint64(0x10000)}}
		assert.ErrorIs(t, WriteObject(buf, 0, obj, c), ErrEncodingOverflow)
	})

	t.Run("String", func(t *testing.T) {
		buf := make([]byte, 0x20)
		c.PutUint32(buf, probeClass.Hash)
		obj := &Object{Class: &probeClass, Fields: map[string]any{"label": "far too long for eight"}}
		assert.ErrorIs(t, WriteObject(buf, 0, obj, c), ErrEncodingOverflow)
	})

	t.Run("NegativeJSONNumber", func(t *testing.T) {
		buf := make([]byte, 0x20)
		c.PutUint32(buf, probeClass.Hash)
		obj := &Object{Class: &probeClass, Fields: map[string]any{"count": float64(-1)}}
		assert.ErrorIs(t, WriteObject(buf, 0, obj, c), ErrEncodingOverflow)
	})
}

func TestStringEncodingRoundTrip(t *testing.T) {
	// ISO 8859-1 text survives the trip, e.g. the registered trademark
	// sign the games use in character names.
	c := console.PC
	buf := make([]byte, 0x20)
	c.PutUint32(buf, probeClass.Hash)

	obj := &Object{Class: &probeClass, Fields: map[string]any{"label": "Shrek®"}}
	require.NoError(t, WriteObject(buf, 0, obj, c))
	assert.Equal(t, byte(0xAE), buf[0x08+5])

	got, err := ReadObject(buf, 0, &probeClass, c)
	require.NoError(t, err)
	assert.Equal(t, "Shrek®", got.Fields["label"])
}
