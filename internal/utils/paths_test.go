package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOSPath(t *testing.T) {
	want := filepath.Join("out", "data", "players", "shrek", "player.db.bin")
	assert.Equal(t, want, ToOSPath("out", "data\\players\\shrek\\player.db.bin"))
}

func TestToOSPathStripsNulPadding(t *testing.T) {
	want := filepath.Join("out", "data", "x.bin")
	assert.Equal(t, want, ToOSPath("out", "data\\x.bin\x00\x00"))
}

func TestToArchivePath(t *testing.T) {
	rel := filepath.Join("data", "players", "shrek", "player.db.bin")
	assert.Equal(t, "data\\players\\shrek\\player.db.bin", ToArchivePath(rel))
}

func TestPathRoundTrip(t *testing.T) {
	archive := "data\\gamedata\\stage.db.bin"
	rel, err := filepath.Rel("root", ToOSPath("root", archive))
	assert.NoError(t, err)
	assert.Equal(t, archive, ToArchivePath(rel))
}
