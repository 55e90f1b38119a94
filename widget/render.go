package widget

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

// Render produces a PNG of the current configuration: the encoded code in
// the chosen colors, composited with the circular logo overlay when one is
// bound. A logo that fails to load degrades to rendering without the
// overlay rather than failing the whole render.
func (w *Widget) Render() ([]byte, error) {
	return w.RenderState(w.State())
}

// RenderState renders a specific state snapshot, so callers that key work
// off a revision see the exact state that revision describes.
func (w *Widget) RenderState(st State) ([]byte, error) {
	fg, err := parseHexColor(st.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg := color.Color(color.Transparent)
	if st.ShowBackground {
		bg, err = parseHexColor(st.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	// An emptied text field would fail to encode; fall back to the default
	// text, the same way share does.
	text := strings.TrimSpace(st.Text)
	if text == "" {
		text = w.defaultText
	}

	code, err := qrcode.New(text, st.Level.RecoveryLevel())
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg

	dc := gg.NewContext(st.Size, st.Size)
	dc.DrawImage(code.Image(st.Size), 0, 0)

	if st.Logo != nil {
		if err := drawLogo(dc, st.Logo.Path, st.Size); err != nil {
			// Recover locally: the code is still perfectly usable.
			w.log.Warn("logo load failed, rendering without overlay",
				"path", st.Logo.Path, "error", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLogo loads the logo image and draws it centered over the code,
// resized to logoScale of the edge length and clipped to a circle.
func drawLogo(dc *gg.Context, path string, size int) error {
	img, err := gg.LoadImage(path)
	if err != nil {
		return err
	}

	logoSize := int(float64(size) * logoScale)
	resized := resize.Resize(uint(logoSize), uint(logoSize), img, resize.Lanczos3)

	offset := (size - logoSize) / 2
	center := float64(size) / 2

	dc.Push()
	dc.DrawCircle(center, center, float64(logoSize)/2)
	dc.Clip()
	dc.DrawImage(resized, offset, offset)
	dc.ResetClip()
	dc.Pop()
	return nil
}

// parseHexColor parses #rgb and #rrggbb color strings.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// ValidateColor reports whether s is a parseable hex color.
func ValidateColor(s string) error {
	_, err := parseHexColor(s)
	return err
}

// normalizeHexColor validates a hex color and returns its canonical
// lowercase #rrggbb form.
func normalizeHexColor(s string) (string, error) {
	c, err := parseHexColor(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}
