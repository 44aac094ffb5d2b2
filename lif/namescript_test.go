package lif

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLuaNamer_Format(t *testing.T) {
	namer, err := NewLuaNamer(`
function filename(block, index)
	return string.format("frame_%d_%d.pgm", block, index)
end`)
	require.NoError(t, err)
	defer namer.Close()
	name, err := namer.Name(7, 2)
	require.NoError(t, err)
	require.Equal(t, "frame_7_2.pgm", name)
}

func TestLuaNamer_DefaultName(t *testing.T) {
	namer, err := NewLuaNamer(`function filename(b, i) return "x_" .. default_name(b, i) end`)
	require.NoError(t, err)
	defer namer.Close()
	name, err := namer.Name(7, 2)
	require.NoError(t, err)
	require.Equal(t, "x_MemBlock_0007_002.pgm", name)
}

func TestLuaNamer_Errors(t *testing.T) {
	_, err := NewLuaNamer(`function other() return "a" end`)
	require.Error(t, err, "missing function")
	_, err = NewLuaNamer(`function filename(`)
	require.Error(t, err, "syntax error")

	bad := []string{
		`function filename(b, i) return 5 end`,
		`function filename(b, i) return "  " end`,
		`function filename(b, i) error("nope") end`,
	}
	for _, script := range bad {
		namer, err := NewLuaNamer(script)
		require.NoError(t, err)
		_, err = namer.Name(1, 1)
		require.Error(t, err, script)
		namer.Close()
	}
}

func TestLuaNamer_InExtractor(t *testing.T) {
	namer, err := NewLuaNamer(`function filename(b, i) return "block" .. b .. "-" .. i .. ".pgm" end`)
	require.NoError(t, err)
	defer namer.Close()

	ex := newTestExtractor(t, tinyGeometry())
	ex.Namer = namer.Name
	images, err := ExtractFile(writeTestInput(t, oneMarkerInput()), ex, nil)
	require.Equal(t, ExitRead, ExitCode(err))
	require.Len(t, images, 2)
	require.Equal(t, "block7-1.pgm", filepath.Base(images[0].Filename))
	require.Equal(t, "block7-2.pgm", filepath.Base(images[1].Filename))
}
