package bin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

func collectRecords(buf []byte, c console.Console) []Record {
	var out []Record
	for r := range Scan(buf, c) {
		out = append(out, r)
	}
	return out
}

func TestScanFindsAlignedRecord(t *testing.T) {
	// A Game::AttackMoveRegion (64 bytes) at offset 16 of a Gamecube
	// buffer, surrounded by unrecognised filler.
	c := console.Gamecube
	buf := make([]byte, 16+0x40+8)
	c.PutUint32(buf[16:], 0xF2CFE08D)

	records := collectRecords(buf, c)
	require.Len(t, records, 1)
	assert.Equal(t, 16, records[0].Offset)
	assert.Equal(t, uint32(0xF2CFE08D), records[0].Hash)
	assert.Equal(t, "Game::AttackMoveRegion", records[0].Class.Name)
	assert.Equal(t, 0x40, records[0].Class.Size)
}

func TestScanRestartable(t *testing.T) {
	c := console.PC
	buf := make([]byte, 0x100)
	c.PutUint32(buf[0:], 0xF2CFE08D)  // Game::AttackMoveRegion, 0x40 bytes
	c.PutUint32(buf[0x40:], 0x8811292E) // Game::ProjectileType, 0x74 bytes

	first := collectRecords(buf, c)
	second := collectRecords(buf, c)
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestScanSkipsUnrecognisedBytes(t *testing.T) {
	buf := make([]byte, 0x80)
	for i := range buf {
		buf[i] = byte(i)
	}
	assert.Empty(t, collectRecords(buf, console.PC))
}

func TestScanIgnoresTruncatedTrailingObject(t *testing.T) {
	// A valid tag too close to the end of the buffer for its object to
	// fit is treated as unrecognised bytes.
	c := console.PC
	buf := make([]byte, 0x20)
	c.PutUint32(buf[0:], 0xF2CFE08D)
	assert.Empty(t, collectRecords(buf, c))
}

func TestScanAdvancesPastRecords(t *testing.T) {
	// A tag embedded inside a recognised object's body is not reported,
	// because the scan jumps over the whole object.
	c := console.PC
	buf := make([]byte, 0x80)
	c.PutUint32(buf[0:], 0xF2CFE08D)
	c.PutUint32(buf[0x10:], 0xF2CFE08D)

	records := collectRecords(buf, c)
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].Offset)
	assert.Equal(t, 0x40, records[1].Offset)
}

func TestScanEarlyStop(t *testing.T) {
	c := console.PC
	buf := make([]byte, 0x100)
	c.PutUint32(buf[0:], 0xF2CFE08D)
	c.PutUint32(buf[0x40:], 0xF2CFE08D)

	var seen int
	for range Scan(buf, c) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestScanRespectsConsoleByteOrder(t *testing.T) {
	tag, err := classes.ByName("Game::AttackMoveRegion")
	require.NoError(t, err)

	buf := make([]byte, 0x40)
	console.Gamecube.PutUint32(buf, tag.Hash)

	assert.Len(t, collectRecords(buf, console.Gamecube), 1)
	assert.Empty(t, collectRecords(buf, console.PC))
}
