package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for name, want := range map[string]Console{
		"pc":       PC,
		"PC":       PC,
		"gamecube": Gamecube,
		"gcn":      Gamecube,
		"ps2":      PS2,
		"Xbox":     Xbox,
	} {
		got, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := Parse("dreamcast")
	assert.ErrorIs(t, err, ErrUnsupportedConsole)
}

func TestUint32(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	assert.Equal(t, uint32(0x04030201), PC.Uint32(data))
	assert.Equal(t, uint32(0x04030201), PS2.Uint32(data))
	assert.Equal(t, uint32(0x04030201), Xbox.Uint32(data))
	assert.Equal(t, uint32(0x01020304), Gamecube.Uint32(data))
}

func TestPutUint32(t *testing.T) {
	buf := make([]byte, 4)

	PC.PutUint32(buf, 0x04030201)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	Gamecube.PutUint32(buf, 0x04030201)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestFloat32(t *testing.T) {
	assert.Equal(t, float32(1.0), PC.Float32([]byte{0x00, 0x00, 0x80, 0x3F}))
	assert.Equal(t, float32(-1.0), PC.Float32([]byte{0x00, 0x00, 0x80, 0xBF}))
	assert.Equal(t, float32(1.0), Gamecube.Float32([]byte{0x3F, 0x80, 0x00, 0x00}))
	assert.Equal(t, float32(-1.0), Gamecube.Float32([]byte{0xBF, 0x80, 0x00, 0x00}))

	buf := make([]byte, 4)
	Gamecube.PutFloat32(buf, 1.0)
	assert.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, buf)
}

func TestStringEncoding(t *testing.T) {
	// $AE is the registered trademark sign in ISO 8859-1.
	dec := PC.StringEncoding().NewDecoder()
	s, err := dec.Bytes([]byte{0xAE})
	require.NoError(t, err)
	assert.Equal(t, "®", string(s))
}
