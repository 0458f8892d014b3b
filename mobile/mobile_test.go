package mobile

import (
	"testing"

	"github.com/agiangrant/devicecheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesShared(t *testing.T) {
	t.Parallel()

	d := devicecheck.Shared()

	assert.Equal(t, d.CurrentPlatform().String(), CurrentPlatform())
	assert.Equal(t, d.IsIPhone(), IsIphone())
	assert.Equal(t, d.IsIPad(), IsIpad())
	assert.Equal(t, d.IsMac(), IsMac())
	assert.Equal(t, d.IsMacCatalyst(), IsMacCatalyst())
	assert.Equal(t, d.IsTV(), IsTV())
	assert.Equal(t, d.IsWatch(), IsWatch())
	assert.Equal(t, d.IsVision(), IsVision())
	assert.Equal(t, d.IsSimulator(), IsSimulator())
}

func TestFlagIndexing(t *testing.T) {
	t.Parallel()

	flags := devicecheck.Flags(devicecheck.Shared())
	require.Equal(t, len(flags), FlagCount())

	for i, f := range flags {
		assert.Equal(t, f.Name, FlagName(i))
		assert.Equal(t, f.Value, FlagValue(i))
	}

	assert.Empty(t, FlagName(-1))
	assert.Empty(t, FlagName(FlagCount()))
	assert.False(t, FlagValue(FlagCount()))
}
