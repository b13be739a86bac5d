package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCaseInsensitive(t *testing.T) {
	assert.Equal(t, Hash("Game::AttackMoveType"), Hash("game::attackmovetype"))
	assert.Equal(t, Hash("Game::AttackMoveType"), Hash("GAME::ATTACKMOVETYPE"))
	assert.NotEqual(t, Hash("Game::AttackMoveType"), Hash("Game::AttackMoveRegion"))
	assert.Equal(t, uint32(0), Hash(""))
}

func TestByHash(t *testing.T) {
	c, ok := ByHash(0xEBF07BB5)
	require.True(t, ok)
	assert.Equal(t, "Game::AttackMoveType", c.Name)
	assert.Equal(t, 0x260, c.Size)

	_, ok = ByHash(0xDEADBEEF)
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	c, err := ByName("gf::DB")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x9B3DDBED), c.Hash)

	_, err = ByName("Game::DoesNotExist")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestNameOf(t *testing.T) {
	// Classes with full layout descriptors resolve through the registry.
	name, ok := NameOf(0xF2CFE08D)
	require.True(t, ok)
	assert.Equal(t, "Game::AttackMoveRegion", name)

	// Name-only classes resolve through the tag table.
	name, ok = NameOf(0xC23DDB26)
	require.True(t, ok)
	assert.Equal(t, "Game::PointsForPickup", name)

	_, ok = NameOf(0x00000001)
	assert.False(t, ok)
}

func TestRegistryConsistent(t *testing.T) {
	seenHash := make(map[uint32]string)
	seenName := make(map[string]bool)
	for _, c := range All() {
		require.NotZero(t, c.Hash, "class %s has no tag", c.Name)
		require.Positive(t, c.Size, "class %s has no size", c.Name)
		if prev, dup := seenHash[c.Hash]; dup {
			t.Fatalf("tag %08X registered for both %s and %s", c.Hash, prev, c.Name)
		}
		seenHash[c.Hash] = c.Name
		require.False(t, seenName[c.Name], "duplicate class name %s", c.Name)
		seenName[c.Name] = true

		for _, f := range c.Layout {
			assert.GreaterOrEqual(t, f.Offset, 0, "%s.%s", c.Name, f.Name)
			assert.Less(t, f.Offset, c.Size, "%s.%s offset past end of object", c.Name, f.Name)
			switch f.Kind {
			case Int, String:
				assert.Positive(t, f.Width, "%s.%s needs an explicit width", c.Name, f.Name)
			}
		}
	}
}
