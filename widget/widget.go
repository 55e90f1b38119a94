// Package widget implements the QR generator core: the form state behind
// the UI, the rendering pipeline, and the export/share actions.
package widget

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/Justina18/qr-code-app/store"
)

// Rendering defaults and bounds.
const (
	DefaultSize       = 200
	MinSize           = 100
	MaxSize           = 400
	DefaultForeground = "#000000"
	DefaultBackground = "#ffffff"

	// Logo overlay edge length as a fraction of the code edge length.
	logoScale = 0.20
)

// State is a snapshot of the widget's form fields.
type State struct {
	Text           string      `json:"text"`
	Size           int         `json:"size"`
	Foreground     string      `json:"foreground"`
	Background     string      `json:"background"`
	ShowBackground bool        `json:"show_background"`
	Level          Level       `json:"level"`
	Logo           *store.Logo `json:"logo,omitempty"`
	Revision       uint64      `json:"revision"`
}

// Widget holds the mutable QR configuration and the logo resource it owns.
// It is safe for concurrent use; every operation is independent and
// idempotent.
type Widget struct {
	mu             sync.RWMutex
	text           string
	size           int
	foreground     string
	background     string
	showBackground bool
	level          Level
	logo           *store.Logo
	revision       uint64

	defaultText string
	shareURL    string
	logos       *store.LogoStore
	log         *slog.Logger
}

// New creates a Widget holding the default configuration. defaultText is
// both the initial text value and the fallback for empty share/copy
// actions; shareURL is the base of the outbound messaging deep link.
func New(defaultText, shareURL string, logos *store.LogoStore, log *slog.Logger) *Widget {
	return &Widget{
		text:           defaultText,
		size:           DefaultSize,
		foreground:     DefaultForeground,
		background:     DefaultBackground,
		showBackground: true,
		level:          LevelMedium,
		defaultText:    defaultText,
		shareURL:       shareURL,
		logos:          logos,
		log:            log,
	}
}

// State returns a snapshot of the current configuration.
func (w *Widget) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return State{
		Text:           w.text,
		Size:           w.size,
		Foreground:     w.foreground,
		Background:     w.background,
		ShowBackground: w.showBackground,
		Level:          w.level,
		Logo:           w.logo,
		Revision:       w.revision,
	}
}

// SetText replaces the encoded text.
func (w *Widget) SetText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.text = text
	w.revision++
}

// SetSize stores the requested edge length in pixels, clamped to
// [MinSize, MaxSize]. Out-of-range values are clamped, never rejected.
func (w *Widget) SetSize(size int) {
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = size
	w.revision++
}

// SetForeground sets the module color. Malformed hex values are rejected.
func (w *Widget) SetForeground(hex string) error {
	norm, err := normalizeHexColor(hex)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.foreground = norm
	w.revision++
	return nil
}

// SetBackground sets the background color. The stored value is kept even
// while the background is hidden, so toggling visibility never loses it.
func (w *Widget) SetBackground(hex string) error {
	norm, err := normalizeHexColor(hex)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.background = norm
	w.revision++
	return nil
}

// SetShowBackground toggles background visibility. When hidden the code is
// rendered on a fully transparent background.
func (w *Widget) SetShowBackground(show bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.showBackground = show
	w.revision++
}

// SetLevel sets the error-correction level.
func (w *Widget) SetLevel(level Level) error {
	if _, err := ParseLevel(string(level)); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.level = level
	w.revision++
	return nil
}

// SetLogo stores a new logo image and binds it as the active overlay. Any
// previously held logo is released first, so repeated selections never
// accumulate files.
func (w *Widget) SetLogo(r io.Reader, name string) (*store.Logo, error) {
	logo, err := w.logos.Save(r, name)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	old := w.logo
	w.logo = logo
	w.revision++
	w.mu.Unlock()

	if err := w.logos.Remove(old); err != nil {
		w.log.Warn("failed to release previous logo", "error", err)
	}
	return logo, nil
}

// RemoveLogo releases the held logo, if any, and clears the reference.
func (w *Widget) RemoveLogo() {
	w.mu.Lock()
	old := w.logo
	w.logo = nil
	if old != nil {
		w.revision++
	}
	w.mu.Unlock()

	if err := w.logos.Remove(old); err != nil {
		w.log.Warn("failed to release logo", "error", err)
	}
}

// Reset restores every field to its default value and releases any held
// logo resource.
func (w *Widget) Reset() {
	w.mu.Lock()
	old := w.logo
	w.text = w.defaultText
	w.size = DefaultSize
	w.foreground = DefaultForeground
	w.background = DefaultBackground
	w.showBackground = true
	w.level = LevelMedium
	w.logo = nil
	w.revision++
	w.mu.Unlock()

	if err := w.logos.Remove(old); err != nil {
		w.log.Warn("failed to release logo on reset", "error", err)
	}
}

// Close tears the widget down, releasing the held logo resource.
func (w *Widget) Close() error {
	w.mu.Lock()
	old := w.logo
	w.logo = nil
	w.mu.Unlock()
	return w.logos.Remove(old)
}

// ShareText returns the text that share and copy actions should use: the
// current text, or the configured default when it is empty or
// whitespace-only. It never returns an empty string.
func (w *Widget) ShareText() string {
	w.mu.RLock()
	text := strings.TrimSpace(w.text)
	w.mu.RUnlock()
	if text == "" {
		return w.defaultText
	}
	return text
}
