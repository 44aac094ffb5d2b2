package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/randomouscrap98/gounlif/lif"
)

func runArgs(t *testing.T, args ...string) int {
	parser, err := kong.New(&cli, kong.Name("unlif"), kong.Vars{"version": AppVersion})
	require.NoError(t, err)
	ctx, err := parser.Parse(append(args, "--quiet"))
	require.NoError(t, err)
	return run(ctx)
}

func writeFakeLif(t *testing.T) string {
	g := lif.Geometry{Width: 4, Height: 5, BytesPerPixel: 2, MaxValue: 4095}
	var buf bytes.Buffer
	_, err := lif.WriteSynthetic(&buf, &g, lif.SyntheticFiller(&g, 2), []lif.SyntheticBlock{{Id: 3, Images: 2}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "fake.lif")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestRun_MissingArgument(t *testing.T) {
	require.Equal(t, lif.ExitArgument, runArgs(t))
}

func TestRun_MissingInput(t *testing.T) {
	out := t.TempDir()
	require.Equal(t, lif.ExitOpenInput, runArgs(t, filepath.Join(out, "nothing.lif"), "-o", out))
}

func TestRun_ExtractsThenEndOfInput(t *testing.T) {
	input := writeFakeLif(t)
	out := filepath.Join(t.TempDir(), "images")
	code := runArgs(t, input, "-o", out, "--width=4", "--height=5")
	require.Equal(t, lif.ExitRead, code)
	for _, name := range []string{"MemBlock_0003_001.pgm", "MemBlock_0003_002.pgm"} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err)
	}
}

func TestRun_EofOk(t *testing.T) {
	input := writeFakeLif(t)
	out := t.TempDir()
	code := runArgs(t, input, "-o", out, "--width=4", "--height=5", "--eof-ok", "--preview=png")
	require.Equal(t, lif.ExitOk, code)
	_, err := os.Stat(filepath.Join(out, "MemBlock_0003_002.png"))
	require.NoError(t, err)
}
