package ascii

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPainter(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		p, err := NewPainter("always", os.Stdout)
		require.NoError(t, err)
		assert.Equal(t, Red+"boom 1"+Reset, p.Paint(p.Theme.Error, "boom %d", 1))
	})

	t.Run("never", func(t *testing.T) {
		p, err := NewPainter("never", os.Stdout)
		require.NoError(t, err)
		assert.Equal(t, "boom 1", p.Paint(p.Theme.Error, "boom %d", 1))
	})

	t.Run("auto doesn't color files", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer f.Close()

		p, err := NewPainter("auto", f)
		require.NoError(t, err)
		assert.False(t, p.Enabled)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := NewPainter("sometimes", os.Stdout)
		require.Error(t, err)
	})
}

func TestPainterWriters(t *testing.T) {
	var out strings.Builder
	p, err := NewPainter("auto", &out)
	require.NoError(t, err)
	assert.False(t, p.Enabled)
	assert.Equal(t, "plain", p.Paint(Red, "plain"))
}
