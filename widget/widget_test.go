package widget

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justina18/qr-code-app/store"
)

const testDefaultText = "https://example.com/default"

// newTestWidget returns a widget backed by a throwaway logo store, plus the
// directory its logo files land in.
func newTestWidget(t *testing.T) (*Widget, string) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dataDir := t.TempDir()
	logos, err := store.NewLogoStore(dataDir, log)
	require.NoError(t, err)
	return New(testDefaultText, "https://api.whatsapp.com/send", logos, log),
		filepath.Join(dataDir, "logos")
}

func countLogoFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

// logoPNG returns a solid-colored PNG for use as an uploaded logo.
func logoPNG(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSetSizeClamping(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-50, MinSize},
		{0, MinSize},
		{99, MinSize},
		{100, 100},
		{250, 250},
		{400, 400},
		{401, MaxSize},
		{10000, MaxSize},
	}

	w, _ := newTestWidget(t)
	for _, tc := range cases {
		w.SetSize(tc.in)
		assert.Equal(t, tc.want, w.State().Size, "size %d", tc.in)
	}
}

func TestBackgroundColorSurvivesVisibilityToggle(t *testing.T) {
	w, _ := newTestWidget(t)
	require.NoError(t, w.SetBackground("#ABCDEF"))

	w.SetShowBackground(false)
	assert.False(t, w.State().ShowBackground)
	assert.Equal(t, "#abcdef", w.State().Background)

	w.SetShowBackground(true)
	assert.True(t, w.State().ShowBackground)
	assert.Equal(t, "#abcdef", w.State().Background)
}

func TestColorValidation(t *testing.T) {
	w, _ := newTestWidget(t)

	assert.Error(t, w.SetForeground("not-a-color"))
	assert.Error(t, w.SetForeground("#12345"))
	assert.Error(t, w.SetBackground("#gggggg"))

	require.NoError(t, w.SetForeground("#FA0"))
	assert.Equal(t, "#ffaa00", w.State().Foreground)
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	w, _ := newTestWidget(t)
	assert.Error(t, w.SetLevel(Level("ultra")))
	require.NoError(t, w.SetLevel(LevelHigh))
	assert.Equal(t, LevelHigh, w.State().Level)
}

func TestLogoReplaceReleasesPrevious(t *testing.T) {
	w, logosDir := newTestWidget(t)
	data := logoPNG(t, color.RGBA{R: 255, A: 255})

	for i := 0; i < 5; i++ {
		_, err := w.SetLogo(bytes.NewReader(data), "logo.png")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, countLogoFiles(t, logosDir), "consecutive selections must not leak files")
}

func TestRemoveLogoReleasesFile(t *testing.T) {
	w, logosDir := newTestWidget(t)
	logo, err := w.SetLogo(bytes.NewReader(logoPNG(t, color.RGBA{R: 255, A: 255})), "logo.png")
	require.NoError(t, err)

	w.RemoveLogo()
	assert.Nil(t, w.State().Logo)

	_, err = os.Stat(logo.Path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, countLogoFiles(t, logosDir))
}

func TestReset(t *testing.T) {
	w, logosDir := newTestWidget(t)

	w.SetText("something else")
	w.SetSize(399)
	require.NoError(t, w.SetForeground("#ff0000"))
	require.NoError(t, w.SetBackground("#00ff00"))
	w.SetShowBackground(false)
	require.NoError(t, w.SetLevel(LevelHigh))
	_, err := w.SetLogo(bytes.NewReader(logoPNG(t, color.RGBA{B: 255, A: 255})), "logo.png")
	require.NoError(t, err)

	w.Reset()

	st := w.State()
	assert.Equal(t, testDefaultText, st.Text)
	assert.Equal(t, DefaultSize, st.Size)
	assert.Equal(t, DefaultForeground, st.Foreground)
	assert.Equal(t, DefaultBackground, st.Background)
	assert.True(t, st.ShowBackground)
	assert.Equal(t, LevelMedium, st.Level)
	assert.Nil(t, st.Logo)
	assert.Equal(t, 0, countLogoFiles(t, logosDir))
}

func TestShareTextFallback(t *testing.T) {
	w, _ := newTestWidget(t)

	w.SetText("")
	assert.Equal(t, testDefaultText, w.ShareText())

	w.SetText("   \t ")
	assert.Equal(t, testDefaultText, w.ShareText())

	w.SetText("https://example.com/page")
	assert.Equal(t, "https://example.com/page", w.ShareText())
}

func TestRevisionBumpsOnChange(t *testing.T) {
	w, _ := newTestWidget(t)
	before := w.State().Revision
	w.SetText("changed")
	assert.Greater(t, w.State().Revision, before)
}

func TestCloseReleasesLogo(t *testing.T) {
	w, logosDir := newTestWidget(t)
	_, err := w.SetLogo(bytes.NewReader(logoPNG(t, color.RGBA{G: 255, A: 255})), "logo.png")
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.Equal(t, 0, countLogoFiles(t, logosDir))
}
