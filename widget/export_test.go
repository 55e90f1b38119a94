package widget

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesTimestampedPNG(t *testing.T) {
	w, _ := newTestWidget(t)
	dir := t.TempDir()

	path, err := w.Export(dir)
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "qr-code-"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestExportCreatesMissingDir(t *testing.T) {
	w, _ := newTestWidget(t)
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	path, err := w.Export(dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportWithUnloadableLogoStillSaves(t *testing.T) {
	w, _ := newTestWidget(t)
	logo, err := w.SetLogo(bytes.NewReader(logoPNG(t, color.RGBA{R: 255, A: 255})), "logo.png")
	require.NoError(t, err)
	require.NoError(t, os.Remove(logo.Path))

	path, err := w.Export(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
